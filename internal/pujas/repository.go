package pujas

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"someswar-temple/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Puja, error)
	GetByID(ctx context.Context, id string) (models.Puja, error)
	Create(ctx context.Context, puja models.Puja) error
	Update(ctx context.Context, id string, puja models.Puja) (models.Puja, error)
	Delete(ctx context.Context, id string) error
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Puja, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Puja, 0)
	for cursor.Next(ctx) {
		var puja models.Puja
		if err := cursor.Decode(&puja); err != nil {
			return nil, err
		}
		items = append(items, puja)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (models.Puja, error) {
	var puja models.Puja
	if err := r.col.FindOne(ctx, idFilter(id)).Decode(&puja); err != nil {
		return models.Puja{}, err
	}
	return puja, nil
}

func (r *MongoRepository) Create(ctx context.Context, puja models.Puja) error {
	_, err := r.col.InsertOne(ctx, puja)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, puja models.Puja) (models.Puja, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$set": bson.M{
			"name":         puja.Name,
			"nameHindi":    puja.NameHindi,
			"price":        puja.Price,
			"duration":     puja.Duration,
			"description":  puja.Description,
			"benefits":     puja.Benefits,
			"requirements": puja.Requirements,
			"constrains":   puja.Constrains,
			"mode":         puja.Mode,
			"temples":      puja.Temples,
			"image":        puja.Image,
			"updatedAt":    time.Now(),
		},
	}

	var updated models.Puja
	if err := r.col.FindOneAndUpdate(ctx, idFilter(id), update, opts).Decode(&updated); err != nil {
		return models.Puja{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Catalog ids are stored as plain strings (hex of a generated object id).
func idFilter(id string) bson.M {
	return bson.M{"_id": id}
}
