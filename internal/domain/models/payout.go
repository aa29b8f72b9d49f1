package models

import "time"

const (
	PayoutPending   = "pending"
	PayoutCompleted = "completed"
)

// Payout is a transfer obligation owed to a provider, net of the platform
// fee. Scheduled as pending by settlement; completed in bulk by the
// provider-triggered withdrawal.
type Payout struct {
	ID         int64     `json:"id"`
	ProviderID int64     `json:"provider_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
