package bookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"someswar-temple/internal/httpx"
	"someswar-temple/internal/middleware"
	"someswar-temple/internal/models"
	"someswar-temple/internal/pdf"
	"someswar-temple/internal/transport"
	"someswar-temple/internal/validation"
)

type Handler struct {
	service       *Service
	val           *validation.Validator
	log           *slog.Logger
	publicBaseURL string
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, publicBaseURL string) *Handler {
	return &Handler{
		service:       service,
		val:           val,
		log:           log,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// CreateOrder serves the booking form. The form branches on the success
// flag and reads bookingId, so failures answer in the same shape instead of
// the generic error envelope.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateOrderRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("bookings create-order: invalid json")
		transport.WriteJSON(w, http.StatusBadRequest, CreateOrderResponse{Success: false, Message: "invalid json"})
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("bookings create-order: validation error")
		transport.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "validation error",
			"details": httpx.ValidationDetails(h.val.ValidationErrors(err)),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	booking, err := h.service.CreateOrder(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPujaNotFound):
			log.Warn("bookings create-order: puja not found", slog.String("pooja_id", req.PoojaID))
			transport.WriteJSON(w, http.StatusBadRequest, CreateOrderResponse{Success: false, Message: "selected pooja is not available"})
		case errors.Is(err, ErrDatePast):
			log.Warn("bookings create-order: date not in future", slog.String("date", req.PoojaDate))
			transport.WriteJSON(w, http.StatusBadRequest, CreateOrderResponse{Success: false, Message: "pooja date must be after today"})
		case errors.Is(err, ErrDateBeyondWindow):
			log.Warn("bookings create-order: date beyond window", slog.String("date", req.PoojaDate))
			transport.WriteJSON(w, http.StatusBadRequest, CreateOrderResponse{Success: false, Message: "pooja date is beyond the booking window"})
		case errors.Is(err, ErrGatewayUnavailable):
			log.Error("bookings create-order: gateway not configured")
			transport.WriteJSON(w, http.StatusServiceUnavailable, CreateOrderResponse{Success: false, Message: "payments are temporarily unavailable"})
		default:
			log.Error("bookings create-order: error", slog.String("error", err.Error()))
			transport.WriteJSON(w, http.StatusInternalServerError, CreateOrderResponse{Success: false, Message: "could not create booking order"})
		}
		return
	}

	log.Info("bookings create-order: ok",
		slog.String("booking_id", booking.BookingID),
		slog.String("order_id", booking.OrderID),
		slog.String("pooja_id", booking.PoojaID),
		slog.String("date", booking.PoojaDate),
	)
	transport.WriteJSON(w, http.StatusCreated, CreateOrderResponse{
		Success:   true,
		BookingID: booking.BookingID,
		OrderID:   booking.OrderID,
		Message:   "booking order created",
	})
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	bookingID := strings.TrimSpace(chi.URLParam(r, "bookingId"))
	if bookingID == "" {
		log.Warn("bookings get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing booking id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := h.service.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("bookings get: not found", slog.String("booking_id", bookingID))
			transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
			return
		}
		log.Error("bookings get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("bookings get: ok", slog.String("booking_id", bookingID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"booking": booking})
}

// FailBooking backs the fire-and-forget call the payment flow makes when the
// gateway reports a failed or dismissed checkout.
func (h *Handler) FailBooking(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	bookingID := strings.TrimSpace(chi.URLParam(r, "bookingId"))
	if bookingID == "" {
		log.Warn("bookings fail: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing booking id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := h.service.MarkFailed(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("bookings fail: not found", slog.String("booking_id", bookingID))
			transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
			return
		}
		log.Error("bookings fail: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("bookings fail: ok",
		slog.String("booking_id", bookingID),
		slog.String("status", booking.PaymentStatus),
	)
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "paymentStatus": booking.PaymentStatus})
}

func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req VerifyPaymentRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("bookings verify-payment: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("bookings verify-payment: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	booking, err := h.service.VerifyPayment(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.Warn("bookings verify-payment: not found", slog.String("booking_id", req.BookingID))
			transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
		case errors.Is(err, ErrNotPending):
			log.Warn("bookings verify-payment: not pending", slog.String("booking_id", req.BookingID))
			transport.WriteError(w, http.StatusConflict, "booking is not pending", nil)
		case errors.Is(err, ErrBadSignature):
			log.Warn("bookings verify-payment: signature mismatch", slog.String("booking_id", req.BookingID))
			transport.WriteError(w, http.StatusBadRequest, "payment verification failed", nil)
		default:
			log.Error("bookings verify-payment: error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	go func(confirmed models.Booking) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.NotifyConfirmation(notifyCtx, confirmed); err != nil {
			h.log.Warn("bookings verify-payment: confirmation email failed",
				slog.String("booking_id", confirmed.BookingID),
				slog.String("email", confirmed.Email),
				slog.String("error", err.Error()),
			)
		}
	}(booking)

	log.Info("bookings verify-payment: ok", slog.String("booking_id", booking.BookingID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "booking": booking})
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	query := r.URL.Query()

	page, limit, err := httpx.ParsePage(query, 10, 100)
	if err != nil {
		log.Warn("bookings list: invalid paging", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Date:   strings.TrimSpace(query.Get("date")),
		Status: strings.TrimSpace(query.Get("status")),
	}
	if filter.Date != "" {
		if _, err := time.Parse("2006-01-02", filter.Date); err != nil {
			log.Warn("bookings list: invalid date", slog.String("date", filter.Date))
			transport.WriteError(w, http.StatusBadRequest, "invalid date", nil)
			return
		}
	}
	if raw := strings.TrimSpace(query.Get("month")); raw != "" {
		filter.Month, err = strconv.Atoi(raw)
		if err != nil {
			transport.WriteError(w, http.StatusBadRequest, "invalid month", nil)
			return
		}
	}
	if raw := strings.TrimSpace(query.Get("year")); raw != "" {
		filter.Year, err = strconv.Atoi(raw)
		if err != nil {
			transport.WriteError(w, http.StatusBadRequest, "invalid year", nil)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, filter, page, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			transport.WriteError(w, http.StatusBadRequest, "invalid status filter", nil)
		case errors.Is(err, ErrInvalidMonth):
			transport.WriteError(w, http.StatusBadRequest, "month and year must be supplied together", nil)
		default:
			log.Error("bookings list: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	log.Info("bookings list: ok", slog.Int("count", len(items)), slog.Int64("total", total))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"bookings":      items,
		"totalPages":    totalPages,
		"currentPage":   page,
		"totalBookings": total,
	})
}

// Receipt renders the booking receipt PDF. Only completed bookings have a
// receipt; the download is repeatable and never mutates the booking.
func (h *Handler) Receipt(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	bookingID := strings.TrimSpace(chi.URLParam(r, "bookingId"))
	if bookingID == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing booking id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := h.service.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("bookings receipt: not found", slog.String("booking_id", bookingID))
			transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
			return
		}
		log.Error("bookings receipt: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if booking.PaymentStatus != models.PaymentStatusCompleted {
		log.Warn("bookings receipt: not completed",
			slog.String("booking_id", bookingID),
			slog.String("status", booking.PaymentStatus),
		)
		transport.WriteError(w, http.StatusConflict, "booking is not completed", nil)
		return
	}

	confirmationURL := h.publicBaseURL + "/confirmation/" + booking.BookingID
	payload, err := pdf.Receipt(booking, confirmationURL)
	if err != nil {
		log.Error("bookings receipt: render error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "could not render receipt", nil)
		return
	}

	log.Info("bookings receipt: ok", slog.String("booking_id", bookingID))
	transport.WritePDF(w, pdf.ReceiptFilename(booking.BookingID), payload)
}

// Report renders the priest-office schedule for the given date/status
// filters as a landscape PDF table.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	query := r.URL.Query()

	date := strings.TrimSpace(query.Get("date"))
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			transport.WriteError(w, http.StatusBadRequest, "invalid date", nil)
			return
		}
	}

	filter := ListFilter{
		Date:   date,
		Status: strings.TrimSpace(query.Get("status")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, _, err := h.service.List(ctx, filter, 1, 200)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "invalid status filter", nil)
			return
		}
		log.Error("bookings report: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	payload, err := pdf.ScheduleReport(items, date)
	if err != nil {
		log.Error("bookings report: render error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "could not render report", nil)
		return
	}

	log.Info("bookings report: ok", slog.Int("count", len(items)), slog.String("date", date))
	transport.WritePDF(w, pdf.ReportFilename(date), payload)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
