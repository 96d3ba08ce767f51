package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"someswar-temple/internal/models"
)

// ReportFilename follows the naming the priest office is used to.
func ReportFilename(date string) string {
	return fmt.Sprintf("Pandit_Ji_Schedule_%s.pdf", date)
}

var reportHeader = []string{
	"S.No", "Devotee Name", "Gotra", "Pooja Type", "Mode",
	"Special Instructions", "Contact", "Payment",
}

// Column widths in mm, landscape A4 (277mm printable).
var reportWidths = []float64{12, 45, 25, 40, 20, 60, 30, 22}

// ScheduleReport renders the filtered booking list as a landscape table for
// handing to the officiant. Online-mode cells are colored so online and
// in-person ceremonies can be told apart at a glance.
func ScheduleReport(bookings []models.Booking, date string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetCreationDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetMargins(14, 15, 14)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(saffronR, saffronG, saffronB)
	pdf.Cell(0, 10, "Pooja Preparation Schedule")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", date))
	pdf.Ln(6)
	pdf.Cell(0, 7, "Prepared for: Pandit Ji / Priest Office")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(saffronR, saffronG, saffronB)
	for i, head := range reportHeader {
		pdf.CellFormat(reportWidths[i], 9, head, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i, b := range bookings {
		gotra := b.Gotra
		if gotra == "" {
			gotra = "N/A"
		}
		spReq := b.SpReq
		if spReq == "" {
			spReq = "None"
		}
		payment := "Unpaid"
		if b.PaymentStatus == models.PaymentStatusCompleted {
			payment = "Paid"
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			b.DevoteeName,
			gotra,
			b.PoojaType,
			b.PoojaMode,
			spReq,
			b.Phone,
			payment,
		}

		for col, cell := range row {
			pdf.SetTextColor(0, 0, 0)
			if col == 4 && b.PoojaMode == models.ModeOnline {
				pdf.SetTextColor(0, 102, 204)
			}
			style := ""
			if col == 1 {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 9)
			pdf.CellFormat(reportWidths[col], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(bookings) == 0 {
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, "No bookings for the selected filters.", "", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("schedule report render: %w", err)
	}
	return buf.Bytes(), nil
}
