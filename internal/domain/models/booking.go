package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Booking is created in (pending, pending) by the intent builder and moves
// to (confirmed, paid) only through settlement. Never deleted by this flow.
type Booking struct {
	ID            int64       `json:"id"`
	Reference     string      `json:"reference"`
	UserID        int64       `json:"user_id"`
	Kind          ServiceKind `json:"booking_type"`
	ServiceID     int64       `json:"service_id"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	TotalAmount   float64     `json:"total_amount"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	PaymentRef    string      `json:"payment_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
