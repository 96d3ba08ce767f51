package models

import "time"

const (
	ModeOnline  = "online"
	ModeOffline = "offline"

	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"

	UserRoleAdmin = "admin"
)

// ValidPaymentStatus reports whether value is one of the three booking
// payment states.
func ValidPaymentStatus(value string) bool {
	switch value {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Booking is the central entity. BookingID is the human-readable identifier
// handed to devotees; ID is the internal record identifier.
type Booking struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	DevoteeName   string    `bson:"devoteeName" json:"devoteeName"`
	Gotra         string    `bson:"gotra,omitempty" json:"gotra,omitempty"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	HomeAddress   string    `bson:"homeAddress" json:"homeAddress"`
	City          string    `bson:"city" json:"city"`
	PinCode       string    `bson:"pinCode" json:"pinCode"`
	PoojaID       string    `bson:"poojaId" json:"poojaId"`
	PoojaType     string    `bson:"poojaType" json:"poojaType"`
	PoojaDate     string    `bson:"poojaDate" json:"poojaDate"`
	PoojaMode     string    `bson:"poojaMode" json:"poojaMode"`
	PoojaTemple   string    `bson:"poojaTemple" json:"poojaTemple"`
	SpReq         string    `bson:"spReq,omitempty" json:"spReq,omitempty"`
	Amount        int       `bson:"amount" json:"amount"`
	OrderID       string    `bson:"orderId" json:"orderId"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Puja is a catalog entry. The "constrains" field keeps the wire spelling
// the frontend has always used.
type Puja struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	NameHindi    string    `bson:"nameHindi" json:"nameHindi"`
	Price        int       `bson:"price" json:"price"`
	Duration     string    `bson:"duration" json:"duration"`
	Description  string    `bson:"description" json:"description"`
	Benefits     []string  `bson:"benefits" json:"benefits"`
	Requirements []string  `bson:"requirements" json:"requirements"`
	Constrains   []string  `bson:"constrains" json:"constrains"`
	Mode         []string  `bson:"mode" json:"mode"`
	Temples      []string  `bson:"temples" json:"temples"`
	Image        string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
