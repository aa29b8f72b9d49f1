package models

import "time"

const (
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment records one settled gateway transaction for a booking. The
// gateway payment id is unique: a replayed callback cannot create a second
// row for the same transaction.
type Payment struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"booking_id"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	PaymentMethod    string    `json:"payment_method"`
	GatewayPaymentID string    `json:"gateway_payment_id"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	CreatedAt        time.Time `json:"created_at"`
}
