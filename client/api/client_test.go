package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"someswar-temple/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetBookingNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"booking not found"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger())
	_, err := client.GetBooking(context.Background(), "SMB000000000")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestGetBookingDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bookings/get-booking/SMB123456789" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"booking":{"bookingId":"SMB123456789","paymentStatus":"Pending"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger())
	booking, err := client.GetBooking(context.Background(), "SMB123456789")
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if booking.BookingID != "SMB123456789" || booking.PaymentStatus != models.PaymentStatusPending {
		t.Fatalf("unexpected booking %+v", booking)
	}
}

func TestListBookingsQueryShape(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bookings":[],"totalPages":0,"currentPage":1,"totalBookings":0}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger())
	_, err := client.ListBookings(context.Background(), 2, ListFilter{Date: "2026-09-15", Status: "all"})
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}

	if got := query["page"]; len(got) != 1 || got[0] != "2" {
		t.Fatalf("expected page=2, got %v", got)
	}
	if got := query["limit"]; len(got) != 1 || got[0] != "10" {
		t.Fatalf("expected limit=10, got %v", got)
	}
	if got := query["date"]; len(got) != 1 || got[0] != "2026-09-15" {
		t.Fatalf("expected date filter, got %v", got)
	}
	if _, ok := query["status"]; ok {
		t.Fatalf("status=all must be omitted from the query")
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pujas":[]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger())
	client.SetToken("tok123")
	if _, err := client.ListPujas(context.Background()); err != nil {
		t.Fatalf("ListPujas: %v", err)
	}
	if header != "Bearer tok123" {
		t.Fatalf("expected bearer header, got %q", header)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger())
	_, err := client.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestStatusErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"booking is not completed"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger())
	_, err := client.DownloadReceipt(context.Background(), "SMB123456789")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusConflict || se.Message != "booking is not completed" {
		t.Fatalf("unexpected status error %+v", se)
	}
}
