package bookings

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"someswar-temple/internal/models"
	"someswar-temple/internal/validation"
)

func testRouter(repo *fakeRepo, gateway *fakeGateway) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(testService(repo, gateway), validation.New(), logger, "https://temple.example")

	r := chi.NewRouter()
	r.Post("/api/v1/bookings/create-order", handler.CreateOrder)
	r.Get("/api/v1/bookings/get-booking/{bookingId}", handler.GetBooking)
	r.Post("/api/v1/bookings/fail/{bookingId}", handler.FailBooking)
	r.Get("/api/v1/bookings/get-all-bookings", handler.ListBookings)
	r.Get("/api/v1/bookings/receipt/{bookingId}", handler.Receipt)
	return r
}

func TestCreateOrderEndpoint(t *testing.T) {
	repo := newFakeRepo()
	router := testRouter(repo, &fakeGateway{})

	body := `{
		"devoteeName": "Ramesh Sharma",
		"email": "ramesh@example.com",
		"phone": "9876543210",
		"address": "12 Mandir Marg",
		"city": "Prayagraj",
		"pincode": "221001",
		"poojaId": "puja-1",
		"poojaName": "Rudrabhishek",
		"poojaDate": "` + tomorrow() + `",
		"poojaMode": "offline",
		"poojaTemple": "Someswar Mahadev Temple",
		"amount": 1100
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/create-order", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp CreateOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || !strings.HasPrefix(resp.BookingID, "SMB") || resp.OrderID == "" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateOrderValidationAnswersInFormShape(t *testing.T) {
	router := testRouter(newFakeRepo(), &fakeGateway{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/create-order", strings.NewReader(`{"devoteeName":""}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Message == "" {
		t.Fatalf("form expects a success=false envelope, got %s", rec.Body.String())
	}
}

func TestGetBookingNotFound(t *testing.T) {
	router := testRouter(newFakeRepo(), &fakeGateway{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/get-booking/SMB000000000", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "booking not found" {
		t.Fatalf("expected \"booking not found\", got %q", resp.Error)
	}
}

func TestListBookingsResponseShape(t *testing.T) {
	repo := newFakeRepo()
	repo.listed = []models.Booking{
		{BookingID: "SMB1", PaymentStatus: models.PaymentStatusPending},
		{BookingID: "SMB2", PaymentStatus: models.PaymentStatusCompleted},
	}
	router := testRouter(repo, &fakeGateway{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/get-all-bookings?page=1&limit=10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Bookings      []models.Booking `json:"bookings"`
		TotalPages    int64            `json:"totalPages"`
		CurrentPage   int64            `json:"currentPage"`
		TotalBookings int64            `json:"totalBookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Bookings) != 2 || resp.TotalBookings != 2 || resp.TotalPages != 1 || resp.CurrentPage != 1 {
		t.Fatalf("unexpected page envelope %+v", resp)
	}
}

func TestReceiptRequiresCompletedBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings["SMB1"] = models.Booking{
		BookingID:     "SMB1",
		DevoteeName:   "Ramesh Sharma",
		PoojaType:     "Rudrabhishek",
		PoojaDate:     "2026-09-15",
		PoojaMode:     models.ModeOffline,
		PaymentStatus: models.PaymentStatusPending,
	}
	router := testRouter(repo, &fakeGateway{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/receipt/SMB1", nil))
	if rec.Code != http.StatusConflict {
		t.Fatalf("pending booking should get 409, got %d", rec.Code)
	}

	repo.bookings["SMB1"] = func() models.Booking {
		b := repo.bookings["SMB1"]
		b.PaymentStatus = models.PaymentStatusCompleted
		return b
	}()

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/receipt/SMB1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("completed booking should get the pdf, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Someswar_Receipt_SMB1.pdf") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatalf("expected a PDF body")
	}
}
