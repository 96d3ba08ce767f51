package pdf

import (
	"bytes"
	"testing"

	"someswar-temple/internal/models"
)

func completedBooking() models.Booking {
	return models.Booking{
		BookingID:     "SMB123456789",
		DevoteeName:   "Ramesh Sharma",
		Gotra:         "Bharadwaj",
		Email:         "ramesh@example.com",
		Phone:         "9876543210",
		HomeAddress:   "12 Mandir Marg",
		City:          "Prayagraj",
		PinCode:       "221001",
		PoojaType:     "Rudrabhishek",
		PoojaDate:     "2026-09-15",
		PoojaMode:     models.ModeOnline,
		PoojaTemple:   "Someswar Mahadev Temple",
		SpReq:         "Please include bilva leaves",
		Amount:        1100,
		OrderID:       "order_1",
		PaymentStatus: models.PaymentStatusCompleted,
	}
}

func TestReceiptDeterministic(t *testing.T) {
	booking := completedBooking()
	url := "https://temple.example/confirmation/SMB123456789"

	first, err := Receipt(booking, url)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := Receipt(booking, url)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("receipt must render identically for the same booking")
	}
	if !bytes.HasPrefix(first, []byte("%PDF")) {
		t.Fatalf("expected a PDF payload")
	}
}

func TestReceiptFilename(t *testing.T) {
	if got := ReceiptFilename("SMB123456789"); got != "Someswar_Receipt_SMB123456789.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestScheduleReport(t *testing.T) {
	bookings := []models.Booking{
		completedBooking(),
		{
			BookingID:     "SMB987654321",
			DevoteeName:   "Suresh Gupta",
			PoojaType:     "Ganesh Puja",
			PoojaDate:     "2026-09-15",
			PoojaMode:     models.ModeOffline,
			Phone:         "8876543210",
			PaymentStatus: models.PaymentStatusPending,
		},
	}

	payload, err := ScheduleReport(bookings, "2026-09-15")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Fatalf("expected a PDF payload")
	}
}

func TestScheduleReportEmpty(t *testing.T) {
	payload, err := ScheduleReport(nil, "2026-09-15")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(payload) == 0 {
		t.Fatalf("empty schedule should still render a document")
	}
}

func TestReportFilename(t *testing.T) {
	if got := ReportFilename("2026-09-15"); got != "Pandit_Ji_Schedule_2026-09-15.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}
