package notifications

import (
	"bytes"
	"html/template"

	"someswar-temple/internal/models"
)

var bookingConfirmationTmpl = template.Must(template.New("bookingConfirmation").Parse(`
<div style="font-family:Georgia,serif;max-width:600px;margin:0 auto">
  <h2 style="color:#d2691e">Someswar Mahadev Temple</h2>
  <p>Namaste {{.DevoteeName}},</p>
  <p>Your pooja booking is confirmed. Om Namah Shivaya.</p>
  <table style="border-collapse:collapse;width:100%">
    <tr><td style="padding:6px;border:1px solid #eee">Booking ID</td><td style="padding:6px;border:1px solid #eee"><strong>{{.BookingID}}</strong></td></tr>
    <tr><td style="padding:6px;border:1px solid #eee">Pooja</td><td style="padding:6px;border:1px solid #eee">{{.PoojaType}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #eee">Date</td><td style="padding:6px;border:1px solid #eee">{{.PoojaDate}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #eee">Mode</td><td style="padding:6px;border:1px solid #eee">{{.PoojaMode}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #eee">Temple</td><td style="padding:6px;border:1px solid #eee">{{.PoojaTemple}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #eee">Amount Paid</td><td style="padding:6px;border:1px solid #eee">Rs. {{.Amount}}</td></tr>
  </table>
  {{if eq .PoojaMode "online"}}
  <p>You have chosen the online mode. A video of your pooja will be shared with you over WhatsApp or email; your presence is not required.</p>
  {{else}}
  <p>Please arrive at the temple at least 30 minutes before the ceremony and carry your receipt.</p>
  {{end}}
  <p>Prasad will be delivered to: {{.HomeAddress}}, {{.City}} - {{.PinCode}}</p>
  <p style="color:#888;font-size:12px">Someswar Mahadev Temple Trust, Varanasi</p>
</div>
`))

func buildBookingConfirmationHTML(booking models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := bookingConfirmationTmpl.Execute(&buf, booking); err != nil {
		return "", err
	}
	return buf.String(), nil
}
