package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := NewRazorpay("rzp_test_key", "secret123")
	if g == nil {
		t.Fatalf("gateway should construct with both credentials")
	}

	good := sign("secret123", "order_1", "pay_1")
	if !g.VerifySignature("order_1", "pay_1", good) {
		t.Fatalf("matching signature should verify")
	}
	if g.VerifySignature("order_1", "pay_1", good+"00") {
		t.Fatalf("tampered signature should fail")
	}
	if g.VerifySignature("order_2", "pay_1", good) {
		t.Fatalf("signature for another order should fail")
	}
	if g.VerifySignature("order_1", "pay_1", sign("wrong", "order_1", "pay_1")) {
		t.Fatalf("signature under another secret should fail")
	}
}

func TestNewRazorpayRequiresCredentials(t *testing.T) {
	if NewRazorpay("", "secret") != nil {
		t.Fatalf("missing key id should disable the gateway")
	}
	if NewRazorpay("key", " ") != nil {
		t.Fatalf("missing secret should disable the gateway")
	}
}
