package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"someswar-temple/internal/models"
	"someswar-temple/internal/payment"
)

var (
	ErrNotFound           = errors.New("booking not found")
	ErrPujaNotFound       = errors.New("puja not found")
	ErrInvalidStatus      = errors.New("invalid status filter")
	ErrInvalidMonth       = errors.New("invalid month filter")
	ErrDatePast           = errors.New("pooja date must be after today")
	ErrDateBeyondWindow   = errors.New("pooja date beyond booking window")
	ErrNotPending         = errors.New("booking is not pending")
	ErrBadSignature       = errors.New("payment signature mismatch")
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
)

// CatalogReader is the slice of the puja catalog this package needs: price
// and name resolution for a selected ceremony.
type CatalogReader interface {
	GetByID(ctx context.Context, id string) (models.Puja, error)
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) (string, error)
}

type Service struct {
	repo       Repository
	catalog    CatalogReader
	gateway    payment.Gateway
	notifier   Notifier
	location   *time.Location
	windowDays int
}

func NewService(repo Repository, catalog CatalogReader, gateway payment.Gateway, notifier Notifier, location *time.Location, windowDays int) *Service {
	return &Service{
		repo:       repo,
		catalog:    catalog,
		gateway:    gateway,
		notifier:   notifier,
		location:   location,
		windowDays: windowDays,
	}
}

// CreateOrder validates the requested date, resolves the ceremony from the
// catalog (price is never taken from the client), registers a gateway order
// and stores the booking in Pending state.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (models.Booking, error) {
	if err := s.checkDateWindow(req.PoojaDate, time.Now()); err != nil {
		return models.Booking{}, err
	}

	puja, err := s.catalog.GetByID(ctx, strings.TrimSpace(req.PoojaID))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, ErrPujaNotFound
		}
		return models.Booking{}, err
	}

	if s.gateway == nil {
		return models.Booking{}, ErrGatewayUnavailable
	}

	bookingID := NewBookingID()
	orderID, err := s.gateway.CreateOrder(puja.Price, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	now := time.Now().In(s.location)
	booking := models.Booking{
		ID:            primitive.NewObjectID().Hex(),
		BookingID:     bookingID,
		DevoteeName:   strings.TrimSpace(req.DevoteeName),
		Gotra:         strings.TrimSpace(req.Gotra),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		HomeAddress:   strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		PinCode:       strings.TrimSpace(req.Pincode),
		PoojaID:       puja.ID,
		PoojaType:     puja.Name,
		PoojaDate:     req.PoojaDate,
		PoojaMode:     req.PoojaMode,
		PoojaTemple:   strings.TrimSpace(req.PoojaTemple),
		SpReq:         strings.TrimSpace(req.SpecialRequirements),
		Amount:        puja.Price,
		OrderID:       orderID,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (models.Booking, error) {
	booking, err := s.repo.GetByBookingID(ctx, strings.TrimSpace(bookingID))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}
	return booking, nil
}

// MarkFailed is the best-effort endpoint behind gateway dismissal and failed
// charges. It is idempotent: only Pending bookings transition, a booking
// already in a terminal state is returned untouched.
func (s *Service) MarkFailed(ctx context.Context, bookingID string) (models.Booking, error) {
	updated, err := s.repo.UpdateStatus(ctx, strings.TrimSpace(bookingID),
		models.PaymentStatusPending, models.PaymentStatusFailed, time.Now().In(s.location))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Booking{}, err
	}
	// No pending booking matched: either unknown id or already terminal.
	return s.GetByBookingID(ctx, bookingID)
}

// VerifyPayment is the only path to Completed. The signature must match the
// stored gateway order id; the client-reported outcome alone never flips a
// booking.
func (s *Service) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (models.Booking, error) {
	booking, err := s.GetByBookingID(ctx, req.BookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.PaymentStatus == models.PaymentStatusCompleted {
		return booking, nil
	}
	if booking.PaymentStatus != models.PaymentStatusPending {
		return models.Booking{}, ErrNotPending
	}
	if s.gateway == nil {
		return models.Booking{}, ErrGatewayUnavailable
	}
	if req.RazorpayOrderID != booking.OrderID ||
		!s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return models.Booking{}, ErrBadSignature
	}

	updated, err := s.repo.UpdateStatus(ctx, booking.BookingID,
		models.PaymentStatusPending, models.PaymentStatusCompleted, time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Lost a race with another callback; re-read the winner.
			return s.GetByBookingID(ctx, booking.BookingID)
		}
		return models.Booking{}, err
	}
	return updated, nil
}

func (s *Service) NotifyConfirmation(ctx context.Context, booking models.Booking) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendBookingConfirmation(ctx, booking)
	return err
}

// List returns one page of bookings plus the total count for the filter.
func (s *Service) List(ctx context.Context, filter ListFilter, page, limit int64) ([]models.Booking, int64, error) {
	status, err := normalizeStatus(filter.Status)
	if err != nil {
		return nil, 0, err
	}
	filter.Status = status

	if (filter.Month != 0) != (filter.Year != 0) {
		return nil, 0, ErrInvalidMonth
	}
	if filter.Month < 0 || filter.Month > 12 {
		return nil, 0, ErrInvalidMonth
	}

	return s.repo.List(ctx, filter, page, limit)
}

// normalizeStatus maps the dashboard's lowercase filter values onto the
// stored capitalized statuses. "all" and "" mean no filter.
func normalizeStatus(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return "", nil
	case "pending":
		return models.PaymentStatusPending, nil
	case "completed":
		return models.PaymentStatusCompleted, nil
	case "failed":
		return models.PaymentStatusFailed, nil
	}
	return "", ErrInvalidStatus
}

func (s *Service) checkDateWindow(date string, now time.Time) error {
	d, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		return ErrDatePast
	}
	today := now.In(s.location)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.location)

	if !d.After(today) {
		return ErrDatePast
	}
	if d.After(today.AddDate(0, 0, s.windowDays)) {
		return ErrDateBeyondWindow
	}
	return nil
}
