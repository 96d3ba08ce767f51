package bookings

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"someswar-temple/internal/models"
)

type Repository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (models.Booking, error)
	// UpdateStatus moves a booking from one payment status to another. The
	// filter includes the expected current status so concurrent callbacks
	// cannot overwrite a terminal state.
	UpdateStatus(ctx context.Context, bookingID, from, to string, now time.Time) (models.Booking, error)
	List(ctx context.Context, filter ListFilter, page, limit int64) ([]models.Booking, int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, booking models.Booking) error {
	_, err := r.col.InsertOne(ctx, booking)
	return err
}

func (r *MongoRepository) GetByBookingID(ctx context.Context, bookingID string) (models.Booking, error) {
	var booking models.Booking
	if err := r.col.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, bookingID, from, to string, now time.Time) (models.Booking, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"bookingId": bookingID, "paymentStatus": from}
	update := bson.M{
		"$set": bson.M{
			"paymentStatus": to,
			"updatedAt":     now,
		},
	}

	var updated models.Booking
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return models.Booking{}, err
	}
	return updated, nil
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, page, limit int64) ([]models.Booking, int64, error) {
	query := r.filterToBSON(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Booking, 0)
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, 0, err
		}
		items = append(items, booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *MongoRepository) filterToBSON(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Date != "" {
		query["poojaDate"] = filter.Date
	}
	if filter.Status != "" {
		query["paymentStatus"] = filter.Status
	}
	if filter.Month != 0 && filter.Year != 0 {
		// poojaDate is stored as 2006-01-02, so a month is a string range.
		start := fmt.Sprintf("%04d-%02d-01", filter.Year, filter.Month)
		nextMonth, nextYear := filter.Month+1, filter.Year
		if nextMonth > 12 {
			nextMonth, nextYear = 1, filter.Year+1
		}
		end := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)
		query["poojaDate"] = bson.M{"$gte": start, "$lt": end}
	}
	return query
}
