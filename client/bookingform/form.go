// Package bookingform holds the booking form record, its synchronous
// field validation and the submit flow that hands off to the payment stage.
package bookingform

import (
	"context"
	"regexp"
	"strings"
	"time"

	"someswar-temple/client/api"
	"someswar-temple/internal/models"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// WindowDays is how far ahead a pooja can be booked (two months).
const WindowDays = 60

// Form is the booking form record plus the captcha-verified flag the
// captcha widget reports into.
type Form struct {
	DevoteeName         string
	Gotra               string
	Email               string
	Phone               string
	Address             string
	City                string
	Pincode             string
	PoojaID             string
	PoojaName           string
	PoojaPrice          int
	PoojaDate           string
	PoojaMode           string
	PoojaTemple         string
	SpecialRequirements string

	CaptchaVerified bool
}

// Validate runs the synchronous field rules and returns a field → message
// map. An empty map means the form may submit.
func (f *Form) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.DevoteeName) == "" {
		errs["devoteeName"] = "Name is required"
	}
	if !emailRegex.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = "Valid email is required"
	}
	if !phoneRegex.MatchString(strings.TrimSpace(f.Phone)) {
		errs["phone"] = "Valid 10-digit phone number is required"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "City is required"
	}
	if !pincodeRegex.MatchString(strings.TrimSpace(f.Pincode)) {
		errs["pincode"] = "Valid 6-digit pincode is required"
	}
	if strings.TrimSpace(f.PoojaID) == "" {
		errs["pooja"] = "Please select a pooja"
	}
	if strings.TrimSpace(f.PoojaDate) == "" {
		errs["date"] = "Please select a date"
	}

	return errs
}

// DateBounds returns the selectable date range: strictly after today, at
// most WindowDays ahead. The date input itself is constrained to this range
// rather than flagging out-of-range picks after submission.
func DateBounds(now time.Time) (min, max string) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, 1).Format("2006-01-02"),
		today.AddDate(0, 0, WindowDays).Format("2006-01-02")
}

// SelectPuja resolves a catalog entry onto the form (name and price come
// from the catalog, never from user input).
func (f *Form) SelectPuja(puja models.Puja) {
	f.PoojaID = puja.ID
	f.PoojaName = puja.Name
	f.PoojaPrice = puja.Price
	if len(puja.Temples) > 0 && f.PoojaTemple == "" {
		f.PoojaTemple = puja.Temples[0]
	}
}

// ApplyNavigationParam pre-selects a pooja arriving via navigation
// parameters. An id missing from the freshly fetched catalog is rejected:
// the selection stays empty and the caller gets a notice to show.
func (f *Form) ApplyNavigationParam(catalog []models.Puja, poojaID string) (notice string) {
	poojaID = strings.TrimSpace(poojaID)
	if poojaID == "" {
		return ""
	}
	for _, puja := range catalog {
		if puja.ID == poojaID {
			f.SelectPuja(puja)
			return ""
		}
	}
	f.PoojaID = ""
	f.PoojaName = ""
	f.PoojaPrice = 0
	return "The selected pooja is no longer available"
}

// OrderCreator is the slice of the API client the form needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (api.CreateOrderResult, error)
}

// SubmitResult says where the form goes next. When Submitted is false the
// form stays populated for correction: FieldErrors carries per-field
// messages, Notice a non-blocking notification.
type SubmitResult struct {
	Submitted   bool
	BookingID   string
	FieldErrors map[string]string
	Notice      string
}

// Submit validates, checks the captcha gate, then calls create-order once.
// On success the caller navigates to the payment stage for the returned
// booking id.
func (f *Form) Submit(ctx context.Context, client OrderCreator) SubmitResult {
	if errs := f.Validate(); len(errs) > 0 {
		return SubmitResult{FieldErrors: errs}
	}
	if !f.CaptchaVerified {
		return SubmitResult{Notice: "Please verify the captcha before submitting"}
	}

	result, err := client.CreateOrder(ctx, api.CreateOrderRequest{
		DevoteeName:         strings.TrimSpace(f.DevoteeName),
		Gotra:               strings.TrimSpace(f.Gotra),
		Email:               strings.TrimSpace(f.Email),
		Phone:               strings.TrimSpace(f.Phone),
		Address:             strings.TrimSpace(f.Address),
		City:                strings.TrimSpace(f.City),
		Pincode:             strings.TrimSpace(f.Pincode),
		PoojaID:             f.PoojaID,
		PoojaName:           f.PoojaName,
		PoojaDate:           f.PoojaDate,
		PoojaMode:           f.PoojaMode,
		PoojaTemple:         f.PoojaTemple,
		SpecialRequirements: strings.TrimSpace(f.SpecialRequirements),
		Amount:              f.PoojaPrice,
	})
	if err != nil {
		return SubmitResult{Notice: "Could not create your booking, please try again"}
	}
	if !result.Success || result.BookingID == "" {
		notice := result.Message
		if notice == "" {
			notice = "Could not create your booking, please try again"
		}
		return SubmitResult{Notice: notice}
	}

	return SubmitResult{Submitted: true, BookingID: result.BookingID}
}
