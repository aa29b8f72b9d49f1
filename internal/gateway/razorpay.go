package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"

	"travelease/internal/domain"
)

// Client holds the Razorpay key pair. It builds checkout configurations for
// the opaque widget and verifies the signature the gateway sends back; the
// wire format of the widget itself is the gateway's contract, not ours.
type Client struct {
	KeyID  string
	Secret string
}

// CheckoutConfig is the object handed to the checkout widget.
type CheckoutConfig struct {
	Key         string            `json:"key"`
	AmountPaise int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Prefill     Prefill           `json:"prefill"`
	Notes       map[string]string `json:"notes"`
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// Callback is what the gateway posts back after a successful payment. The
// booking id rides along in the notes of the original checkout config.
type Callback struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
	BookingID int64  `json:"booking_id"`
}

// Paise converts a rupee amount to integer paise as the gateway expects.
func Paise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// BuildCheckout assembles the widget configuration for one booking.
func (c Client) BuildCheckout(amount float64, description string, payer Prefill, bookingID string) CheckoutConfig {
	return CheckoutConfig{
		Key:         c.KeyID,
		AmountPaise: Paise(amount),
		Currency:    "INR",
		Name:        "TravelEase",
		Description: description,
		Prefill:     payer,
		Notes:       map[string]string{"booking_id": bookingID},
	}
}

// VerifyCallback checks the HMAC-SHA256 signature over "order_id|payment_id"
// with the key secret, per the gateway's documented scheme.
func (c Client) VerifyCallback(cb Callback) error {
	if cb.PaymentID == "" || cb.OrderID == "" {
		return domain.ValidationError{Field: "callback", Msg: "missing gateway transaction ids"}
	}
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte(cb.OrderID + "|" + cb.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(cb.Signature)) {
		return domain.UnauthorizedError{Msg: "invalid gateway signature"}
	}
	return nil
}

// Sign produces the signature the gateway would send for the given ids.
// Exposed for tests and for local checkout simulation.
func (c Client) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
