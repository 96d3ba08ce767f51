// Package confirmation renders the post-payment view. Everything branches on
// the payment status fetched fresh from the backend; nothing carried over
// from the payment flow is trusted.
package confirmation

import (
	"context"
	"log/slog"

	"someswar-temple/internal/models"
	"someswar-temple/internal/pdf"
)

// BookingAPI is the slice of the API client the viewer needs.
type BookingAPI interface {
	GetBooking(ctx context.Context, bookingID string) (models.Booking, error)
	DownloadReceipt(ctx context.Context, bookingID string) ([]byte, error)
}

// View is the render decision for a confirmation page load.
type View struct {
	// Confirmed is true only for a Completed booking; only then is the
	// receipt download offered.
	Confirmed bool
	// Status is the literal backend status shown on the terse branch.
	Status   string
	Booking  models.Booking
	Notice   string
	Redirect string
}

type Viewer struct {
	client BookingAPI
	log    *slog.Logger
}

func New(client BookingAPI, log *slog.Logger) *Viewer {
	return &Viewer{client: client, log: log}
}

// Load fetches the booking and decides the branch. A fetch failure sends
// the user home with a notice; booking ids are short-lived and opaque, so
// there is no retry.
func (v *Viewer) Load(ctx context.Context, bookingID string) View {
	booking, err := v.client.GetBooking(ctx, bookingID)
	if err != nil {
		v.log.Warn("confirmation: booking fetch failed",
			slog.String("booking_id", bookingID),
			slog.String("error", err.Error()),
		)
		return View{Notice: "Could not find your booking", Redirect: "/"}
	}

	if booking.PaymentStatus == models.PaymentStatusCompleted {
		return View{Confirmed: true, Status: booking.PaymentStatus, Booking: booking}
	}
	return View{Confirmed: false, Status: booking.PaymentStatus, Booking: booking}
}

// Receipt downloads the receipt PDF for a completed booking. Repeatable:
// two downloads yield identical bytes and never touch booking state.
func (v *Viewer) Receipt(ctx context.Context, bookingID string) (string, []byte, error) {
	payload, err := v.client.DownloadReceipt(ctx, bookingID)
	if err != nil {
		return "", nil, err
	}
	return pdf.ReceiptFilename(bookingID), payload, nil
}
