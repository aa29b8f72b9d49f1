package models

import "time"

// Provider is an account authorized to list and manage inventory, linked
// 1:1 to a profile.
type Provider struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProviderService is a flattened view of one listing for the provider
// dashboard, regardless of variant.
type ProviderService struct {
	ID    int64       `json:"id"`
	Kind  ServiceKind `json:"type"`
	Name  string      `json:"name"`
	Extra string      `json:"extra,omitempty"`
}
