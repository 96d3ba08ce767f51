package bookings

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const bookingIDPrefix = "SMB"

// NewBookingID returns a human-readable identifier like SMB482915307.
// Nine random digits keep collisions unlikely; the unique index on
// bookingId catches the rest.
func NewBookingID() string {
	max := big.NewInt(1_000_000_000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// a zero id and let the unique index reject duplicates.
		return bookingIDPrefix + "000000000"
	}
	return fmt.Sprintf("%s%09d", bookingIDPrefix, n.Int64())
}
