package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway creates payment orders with the external provider and checks the
// signatures it reports back. The rest of the codebase only sees this
// interface; Razorpay stays at the edge.
type Gateway interface {
	CreateOrder(amountRupees int, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpay(keyID, keySecret string) *RazorpayGateway {
	if strings.TrimSpace(keyID) == "" || strings.TrimSpace(keySecret) == "" {
		return nil
	}
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder registers the order with Razorpay and returns the gateway
// order id. Amount is converted to paise; receipt carries our bookingId so
// the two systems can be reconciled.
func (g *RazorpayGateway) CreateOrder(amountRupees int, receipt string) (string, error) {
	if g == nil {
		return "", errors.New("payment gateway not configured")
	}
	if amountRupees <= 0 {
		return "", errors.New("amount must be positive")
	}

	data := map[string]interface{}{
		"amount":   amountRupees * 100,
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", errors.New("razorpay response missing order id")
	}
	return orderID, nil
}

// VerifySignature checks the checkout callback signature:
// HMAC-SHA256(orderId + "|" + paymentId, key secret), hex encoded.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if g == nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
