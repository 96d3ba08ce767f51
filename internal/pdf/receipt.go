// Package pdf renders the documents the site offers for download: the
// devotee-facing booking receipt and the priest-office schedule report.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"someswar-temple/internal/models"
)

const (
	saffronR, saffronG, saffronB = 210, 105, 30
)

// ReceiptFilename names the download deterministically from the booking
// identifier.
func ReceiptFilename(bookingID string) string {
	return fmt.Sprintf("Someswar_Receipt_%s.pdf", bookingID)
}

// Receipt renders an A4 receipt for a completed booking. The output depends
// only on the booking fields and confirmationURL, so repeated downloads
// produce byte-identical files.
func Receipt(b models.Booking, confirmationURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Pin the document metadata date so repeated downloads are
	// byte-identical.
	pdf.SetCreationDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(saffronR, saffronG, saffronB)
	pdf.Cell(0, 12, "SOMESWAR MAHADEV TEMPLE")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 8, "Pooja Booking Receipt")
	pdf.Ln(12)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 58, "F")

	pdf.SetXY(20, yStart+6)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	summary := []string{
		fmt.Sprintf("Booking ID: %s", b.BookingID),
		fmt.Sprintf("Pooja: %s", b.PoojaType),
		fmt.Sprintf("Date: %s", formatPoojaDate(b.PoojaDate)),
		fmt.Sprintf("Mode: %s", titleMode(b.PoojaMode)),
		fmt.Sprintf("Temple: %s", b.PoojaTemple),
		fmt.Sprintf("Amount Paid: Rs. %d", b.Amount),
	}
	for _, line := range summary {
		pdf.SetX(20)
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	// QR linking back to the confirmation page for this booking.
	qrBytes, err := qrcode.Encode(confirmationURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("receipt qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 148, yStart+8, 42, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 66)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "DEVOTEE DETAILS")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	details := []string{
		fmt.Sprintf("Name: %s", b.DevoteeName),
	}
	if b.Gotra != "" {
		details = append(details, fmt.Sprintf("Gotra: %s", b.Gotra))
	}
	details = append(details,
		fmt.Sprintf("Email: %s", b.Email),
		fmt.Sprintf("Phone: %s", b.Phone),
		fmt.Sprintf("Address: %s, %s - %s", b.HomeAddress, b.City, b.PinCode),
	)
	if b.SpReq != "" {
		details = append(details, fmt.Sprintf("Special Requirements: %s", b.SpReq))
	}
	for _, line := range details {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	if b.PoojaMode == models.ModeOnline {
		pdf.MultiCell(0, 6, "You have chosen the online mode. A video of your pooja will be shared over WhatsApp or email; your presence is not required. Prasad will be delivered to the address above.", "", "L", false)
	} else {
		pdf.MultiCell(0, 6, "Please arrive at the temple at least 30 minutes before your scheduled time and carry this receipt. Prasad will be handed over after the ceremony.", "", "L", false)
	}

	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Someswar Mahadev Temple, Varanasi, Uttar Pradesh 221001")
	pdf.Ln(5)
	pdf.Cell(0, 6, "Om Namah Shivaya")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt render: %w", err)
	}
	return buf.Bytes(), nil
}

func titleMode(mode string) string {
	switch mode {
	case models.ModeOnline:
		return "Online"
	case models.ModeOffline:
		return "Offline"
	}
	return mode
}

func formatPoojaDate(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("Monday, 2 January 2006")
}
