// Package paymentflow drives a booking from the form hand-off through the
// external checkout widget. The widget's callbacks only decide where to
// navigate next; the confirmation view always re-fetches the booking, so
// this package never asserts a terminal payment status on its own.
package paymentflow

import (
	"context"
	"log/slog"
	"time"

	"someswar-temple/client/api"
	"someswar-temple/internal/models"
)

type State string

const (
	StateLoading                  State = "Loading"
	StateAwaitingValidityCheck    State = "AwaitingBookingValidityCheck"
	StateDelegatedToGateway       State = "DelegatedToGateway"
	StateNavigatedToConfirmation  State = "NavigatedToConfirmation"
	StateNavigatedBackToForm      State = "NavigatedBackToForm"
	StateNavigatedHome            State = "NavigatedHome"
)

// BookingAPI is the slice of the API client the orchestrator needs.
// FailBooking is fire-and-forget: it returns immediately and its outcome is
// only logged.
type BookingAPI interface {
	GetBooking(ctx context.Context, bookingID string) (models.Booking, error)
	FailBooking(bookingID string)
	VerifyPayment(ctx context.Context, req api.VerifyPaymentRequest) (models.Booking, error)
}

// PaymentResult is what the checkout widget hands back on a successful
// charge.
type PaymentResult struct {
	OrderID   string
	PaymentID string
	Signature string
}

// CheckoutOptions configures the external widget. Exactly one of the three
// callbacks fires before Open returns control to the caller.
type CheckoutOptions struct {
	AmountPaise int
	Currency    string
	OrderID     string
	Name        string
	Description string
	Prefill     Prefill

	OnSuccess func(PaymentResult)
	OnFailure func()
	OnDismiss func()
}

type Prefill struct {
	Name    string
	Email   string
	Contact string
}

// Gateway is the opaque external checkout widget, invoked imperatively.
type Gateway interface {
	Open(opts CheckoutOptions)
}

// Outcome is the terminal navigation the orchestrator lands on.
type Outcome struct {
	State     State
	BookingID string
	Notice    string
}

type Orchestrator struct {
	client  BookingAPI
	gateway Gateway
	log     *slog.Logger

	state State
}

func New(client BookingAPI, gateway Gateway, log *slog.Logger) *Orchestrator {
	return &Orchestrator{client: client, gateway: gateway, log: log, state: StateLoading}
}

func (o *Orchestrator) State() State {
	return o.state
}

// Run takes a booking from route entry to a terminal navigation. The
// pending check always completes before the gateway opens; no payment UI is
// ever shown for a non-pending booking.
func (o *Orchestrator) Run(ctx context.Context, bookingID string) Outcome {
	o.state = StateLoading

	if bookingID == "" {
		return o.finish(Outcome{State: StateNavigatedBackToForm, Notice: "No booking to pay for"})
	}

	o.state = StateAwaitingValidityCheck
	booking, err := o.client.GetBooking(ctx, bookingID)
	if err != nil {
		o.log.Warn("payment: booking fetch failed",
			slog.String("booking_id", bookingID),
			slog.String("error", err.Error()),
		)
		return o.finish(Outcome{State: StateNavigatedBackToForm, Notice: "Could not load your booking"})
	}

	if booking.PaymentStatus != models.PaymentStatusPending {
		o.log.Info("payment: booking not payable",
			slog.String("booking_id", bookingID),
			slog.String("status", booking.PaymentStatus),
		)
		return o.finish(Outcome{State: StateNavigatedHome, Notice: "This booking cannot be paid for"})
	}

	o.state = StateDelegatedToGateway
	var outcome Outcome
	o.gateway.Open(CheckoutOptions{
		AmountPaise: booking.Amount * 100,
		Currency:    "INR",
		OrderID:     booking.OrderID,
		Name:        "Someswar Mahadev Temple",
		Description: booking.PoojaType,
		Prefill: Prefill{
			Name:    booking.DevoteeName,
			Email:   booking.Email,
			Contact: booking.Phone,
		},
		OnSuccess: func(result PaymentResult) {
			o.confirmPayment(booking.BookingID, result)
			outcome = Outcome{
				State:     StateNavigatedToConfirmation,
				BookingID: booking.BookingID,
				Notice:    "Payment successful",
			}
		},
		OnFailure: func() {
			// The confirmation view will show the authoritative failed
			// state fetched fresh.
			o.client.FailBooking(booking.BookingID)
			outcome = Outcome{State: StateNavigatedToConfirmation, BookingID: booking.BookingID}
		},
		OnDismiss: func() {
			o.client.FailBooking(booking.BookingID)
			outcome = Outcome{
				State:  StateNavigatedBackToForm,
				Notice: "Payment cancelled",
			}
		},
	})

	return o.finish(outcome)
}

// confirmPayment reports the gateway's signed result to the backend, which
// is the only party that can move a booking to Completed. A failure here is
// logged and navigation proceeds; the confirmation view renders whatever
// status the backend holds.
func (o *Orchestrator) confirmPayment(bookingID string, result PaymentResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	_, err := o.client.VerifyPayment(ctx, api.VerifyPaymentRequest{
		BookingID:         bookingID,
		RazorpayOrderID:   result.OrderID,
		RazorpayPaymentID: result.PaymentID,
		RazorpaySignature: result.Signature,
	})
	if err != nil {
		o.log.Warn("payment: verify failed",
			slog.String("booking_id", bookingID),
			slog.String("error", err.Error()),
		)
	}
}

func (o *Orchestrator) finish(outcome Outcome) Outcome {
	o.state = outcome.State
	return outcome
}
