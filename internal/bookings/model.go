package bookings

// CreateOrderRequest carries the public booking form payload. Field names
// match what the site has always sent; amount and pooja name are resolved
// server-side from the catalog, the client-sent copies are advisory only.
type CreateOrderRequest struct {
	DevoteeName         string `json:"devoteeName" validate:"required"`
	Gotra               string `json:"gotra"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"required,inphone"`
	Address             string `json:"address" validate:"required"`
	City                string `json:"city" validate:"required"`
	Pincode             string `json:"pincode" validate:"required,pincode"`
	PoojaID             string `json:"poojaId" validate:"required"`
	PoojaName           string `json:"poojaName"`
	PoojaDate           string `json:"poojaDate" validate:"required,date"`
	PoojaMode           string `json:"poojaMode" validate:"required,oneof=online offline"`
	PoojaTemple         string `json:"poojaTemple" validate:"required"`
	SpecialRequirements string `json:"specialRequirements"`
	Amount              int    `json:"amount" validate:"omitempty,gte=0"`
}

// CreateOrderResponse is the shape the booking form consumes: it branches on
// success and reads bookingId to navigate to the payment stage.
type CreateOrderResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// VerifyPaymentRequest carries the checkout callback fields used to prove a
// charge actually happened before the booking is marked Completed.
type VerifyPaymentRequest struct {
	BookingID         string `json:"bookingId" validate:"required"`
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
}

// ListFilter narrows the admin booking list. Status arrives lowercased from
// the dashboard ("pending"/"completed"/"failed"); empty means all. Month and
// year select by pooja date and must be supplied together.
type ListFilter struct {
	Date   string
	Status string
	Month  int
	Year   int
}
