// Package dashboard holds the admin dashboard's client-side computations:
// page-scoped stats, in-page text search, monthly revenue and the schedule
// report export.
package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"someswar-temple/client/api"
	"someswar-temple/internal/models"
	"someswar-temple/internal/pdf"
)

// ListAPI is the slice of the API client the dashboard needs.
type ListAPI interface {
	ListBookings(ctx context.Context, page int64, filter api.ListFilter) (api.BookingPage, error)
}

type Dashboard struct {
	client ListAPI
	log    *slog.Logger

	page   api.BookingPage
	filter api.ListFilter
	query  string
}

func New(client ListAPI, log *slog.Logger) *Dashboard {
	return &Dashboard{client: client, log: log}
}

// LoadPage fetches one page of bookings for the given filters. The loaded
// page is the only data the stats and search operate on.
func (d *Dashboard) LoadPage(ctx context.Context, page int64, date, status string) error {
	filter := api.ListFilter{Date: date, Status: status}
	loaded, err := d.client.ListBookings(ctx, page, filter)
	if err != nil {
		d.log.Warn("dashboard: page fetch failed", slog.String("error", err.Error()))
		return err
	}
	d.page = loaded
	d.filter = filter
	return nil
}

func (d *Dashboard) CurrentPage() int64 { return d.page.CurrentPage }
func (d *Dashboard) TotalPages() int64  { return d.page.TotalPages }
func (d *Dashboard) TotalBookings() int64 {
	return d.page.TotalBookings
}

// CanPrev/CanNext back the pagination controls: navigating past either end
// is disallowed by disabling the control.
func (d *Dashboard) CanPrev() bool { return d.page.CurrentPage > 1 }
func (d *Dashboard) CanNext() bool { return d.page.CurrentPage < d.page.TotalPages }

// SetSearch narrows the currently loaded page only; it never issues a new
// fetch.
func (d *Dashboard) SetSearch(query string) {
	d.query = strings.TrimSpace(query)
}

// Rows returns the loaded page narrowed by the search query: substring
// match, case-insensitive, over devotee name, booking id and pooja name.
func (d *Dashboard) Rows() []models.Booking {
	if d.query == "" {
		return d.page.Bookings
	}
	needle := strings.ToLower(d.query)
	rows := make([]models.Booking, 0, len(d.page.Bookings))
	for _, b := range d.page.Bookings {
		if strings.Contains(strings.ToLower(b.DevoteeName), needle) ||
			strings.Contains(strings.ToLower(b.BookingID), needle) ||
			strings.Contains(strings.ToLower(b.PoojaType), needle) {
			rows = append(rows, b)
		}
	}
	return rows
}

// Stats are derived purely from the currently loaded page, not a global
// aggregate. The list response's totalBookings carries the global count for
// callers that want one.
type Stats struct {
	Total     int
	Pending   int
	Completed int
	Failed    int
}

func (d *Dashboard) Stats() Stats {
	stats := Stats{Total: len(d.page.Bookings)}
	for _, b := range d.page.Bookings {
		switch b.PaymentStatus {
		case models.PaymentStatusPending:
			stats.Pending++
		case models.PaymentStatusCompleted:
			stats.Completed++
		case models.PaymentStatusFailed:
			stats.Failed++
		}
	}
	return stats
}

// MonthlyRevenue sums the amounts of all Completed bookings for the given
// month, walking every page of the filtered list.
func (d *Dashboard) MonthlyRevenue(ctx context.Context, now time.Time) (int, error) {
	filter := api.ListFilter{
		Status: strings.ToLower(models.PaymentStatusCompleted),
		Month:  int(now.Month()),
		Year:   now.Year(),
	}

	total := 0
	for page := int64(1); ; page++ {
		loaded, err := d.client.ListBookings(ctx, page, filter)
		if err != nil {
			return 0, err
		}
		for _, b := range loaded.Bookings {
			total += b.Amount
		}
		if page >= loaded.TotalPages || len(loaded.Bookings) == 0 {
			break
		}
	}
	return total, nil
}

// ExportReport renders the currently filtered and searched rows as the
// priest-office schedule PDF.
func (d *Dashboard) ExportReport(date string) (string, []byte, error) {
	if date == "" {
		date = d.filter.Date
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	payload, err := pdf.ScheduleReport(d.Rows(), date)
	if err != nil {
		return "", nil, err
	}
	return pdf.ReportFilename(date), payload, nil
}
