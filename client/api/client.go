// Package api is the thin REST client the booking pages and the admin
// dashboard talk through. One function per endpoint, no retries, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"someswar-temple/internal/models"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrPujaNotFound    = errors.New("puja not found")
	ErrUnauthorized    = errors.New("unauthorized")
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	token   string
}

func New(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// SetToken attaches the admin bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

type CreateOrderRequest struct {
	DevoteeName         string `json:"devoteeName"`
	Gotra               string `json:"gotra,omitempty"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	City                string `json:"city"`
	Pincode             string `json:"pincode"`
	PoojaID             string `json:"poojaId"`
	PoojaName           string `json:"poojaName"`
	PoojaDate           string `json:"poojaDate"`
	PoojaMode           string `json:"poojaMode"`
	PoojaTemple         string `json:"poojaTemple,omitempty"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
	Amount              int    `json:"amount"`
}

type CreateOrderResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	OrderID   string `json:"orderId"`
	Message   string `json:"message"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResult, error) {
	var result CreateOrderResult
	err := c.do(ctx, http.MethodPost, "/api/v1/bookings/create-order", req, &result)
	if err != nil {
		return CreateOrderResult{}, err
	}
	return result, nil
}

func (c *Client) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	var envelope struct {
		Booking models.Booking `json:"booking"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/bookings/get-booking/"+url.PathEscape(bookingID), nil, &envelope)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, err
	}
	return envelope.Booking, nil
}

// FailBooking is fire-and-forget: the caller never waits on it and its
// outcome is only logged. Navigation must never block on this call.
func (c *Client) FailBooking(bookingID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer cancel()
		if err := c.failBooking(ctx, bookingID); err != nil {
			c.log.Warn("api fail-booking: error",
				slog.String("booking_id", bookingID),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (c *Client) failBooking(ctx context.Context, bookingID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/bookings/fail/"+url.PathEscape(bookingID), nil, nil)
}

type VerifyPaymentRequest struct {
	BookingID         string `json:"bookingId"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (models.Booking, error) {
	var envelope struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/bookings/verify-payment", req, &envelope); err != nil {
		return models.Booking{}, err
	}
	return envelope.Booking, nil
}

type BookingPage struct {
	Bookings      []models.Booking `json:"bookings"`
	TotalPages    int64            `json:"totalPages"`
	CurrentPage   int64            `json:"currentPage"`
	TotalBookings int64            `json:"totalBookings"`
}

type ListFilter struct {
	Date   string
	Status string
	Month  int
	Year   int
}

// ListBookings fetches one dashboard page. A status of "all" (or empty) is
// omitted from the query entirely.
func (c *Client) ListBookings(ctx context.Context, page int64, filter ListFilter) (BookingPage, error) {
	query := url.Values{}
	query.Set("page", strconv.FormatInt(page, 10))
	query.Set("limit", "10")
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.Status != "" && !strings.EqualFold(filter.Status, "all") {
		query.Set("status", filter.Status)
	}
	if filter.Month != 0 {
		query.Set("month", strconv.Itoa(filter.Month))
	}
	if filter.Year != 0 {
		query.Set("year", strconv.Itoa(filter.Year))
	}

	var result BookingPage
	err := c.do(ctx, http.MethodGet, "/api/v1/bookings/get-all-bookings?"+query.Encode(), nil, &result)
	if err != nil {
		return BookingPage{}, err
	}
	return result, nil
}

// DownloadReceipt fetches the receipt PDF for a completed booking. The
// download is repeatable and leaves the booking untouched.
func (c *Client) DownloadReceipt(ctx context.Context, bookingID string) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "/api/v1/bookings/receipt/"+url.PathEscape(bookingID))
}

// DownloadReport fetches the priest-office schedule PDF.
func (c *Client) DownloadReport(ctx context.Context, date, status string) ([]byte, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	if status != "" && !strings.EqualFold(status, "all") {
		query.Set("status", status)
	}
	path := "/api/v1/bookings/report"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return c.doRaw(ctx, http.MethodGet, path)
}

func (c *Client) ListPujas(ctx context.Context) ([]models.Puja, error) {
	var envelope struct {
		Pujas []models.Puja `json:"pujas"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/pujas", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Pujas, nil
}

func (c *Client) GetPuja(ctx context.Context, id string) (models.Puja, error) {
	var envelope struct {
		Puja models.Puja `json:"puja"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/pujas/"+url.PathEscape(id), nil, &envelope)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return models.Puja{}, ErrPujaNotFound
		}
		return models.Puja{}, err
	}
	return envelope.Puja, nil
}

// PujaUpsert is the admin payload for creating or updating a catalog entry.
type PujaUpsert struct {
	Name         string   `json:"name"`
	NameHindi    string   `json:"nameHindi,omitempty"`
	Price        int      `json:"price"`
	Duration     string   `json:"duration,omitempty"`
	Description  string   `json:"description,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Constrains   []string `json:"constrains,omitempty"`
	Mode         []string `json:"mode,omitempty"`
	Temples      []string `json:"temples,omitempty"`
	Image        string   `json:"image,omitempty"`
}

func (c *Client) CreatePuja(ctx context.Context, puja PujaUpsert) (models.Puja, error) {
	var envelope struct {
		Puja models.Puja `json:"puja"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/pujas", puja, &envelope); err != nil {
		return models.Puja{}, err
	}
	return envelope.Puja, nil
}

func (c *Client) UpdatePuja(ctx context.Context, id string, puja PujaUpsert) (models.Puja, error) {
	var envelope struct {
		Puja models.Puja `json:"puja"`
	}
	err := c.do(ctx, http.MethodPut, "/api/v1/pujas/"+url.PathEscape(id), puja, &envelope)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return models.Puja{}, ErrPujaNotFound
		}
		return models.Puja{}, err
	}
	return envelope.Puja, nil
}

func (c *Client) DeletePuja(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/api/v1/pujas/"+url.PathEscape(id), nil, nil)
	if isStatus(err, http.StatusNotFound) {
		return ErrPujaNotFound
	}
	return err
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/admin/login", body, &result)
	if err != nil {
		if isStatus(err, http.StatusUnauthorized) {
			return LoginResult{}, ErrUnauthorized
		}
		return LoginResult{}, err
	}
	return result, nil
}

// StatusError carries the HTTP status and the server's error message for
// non-2xx responses.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func isStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	return io.ReadAll(resp.Body)
}

func readErrorMessage(body io.Reader) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}
