package models

import (
	"fmt"

	"travelease/internal/domain"
)

// Cab is a base-plus-per-km inventory item. It has no fixed schedule, so a
// cab booking carries only a start timestamp.
type Cab struct {
	ID          int64   `json:"id"`
	ProviderID  int64   `json:"provider_id"`
	VehicleType string  `json:"vehicle_type"`
	BasePrice   float64 `json:"base_price"`
	PricePerKm  float64 `json:"price_per_km"`
	Available   bool    `json:"available"`
}

func (c Cab) Kind() ServiceKind      { return KindCab }
func (c Cab) ServiceID() int64       { return c.ID }
func (c Cab) OwnerProviderID() int64 { return c.ProviderID }

func (c Cab) Label() string {
	return fmt.Sprintf("%s cab", c.VehicleType)
}

func (c Cab) PriceQuote(p TripParams) (Quote, error) {
	if p.TravelDate.IsZero() {
		return Quote{}, domain.ValidationError{Field: "travel_date", Msg: "travel date is required"}
	}
	if p.DistanceKm <= 0 {
		return Quote{}, domain.ValidationError{Field: "distance", Msg: "distance estimate missing"}
	}
	if !c.Available {
		return Quote{}, domain.ConflictError{Resource: "cab", Msg: "not available"}
	}

	return Quote{
		Start:  p.TravelDate,
		Amount: c.BasePrice + c.PricePerKm*p.DistanceKm,
	}, nil
}
