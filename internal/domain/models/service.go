package models

import (
	"time"

	"travelease/internal/domain"
)

// ServiceKind discriminates the bookable inventory variants.
type ServiceKind string

const (
	KindHotel ServiceKind = "hotel"
	KindBus   ServiceKind = "bus"
	KindCab   ServiceKind = "cab"
)

// ParseServiceKind validates a booking_type value from the outside.
func ParseServiceKind(s string) (ServiceKind, error) {
	switch ServiceKind(s) {
	case KindHotel, KindBus, KindCab:
		return ServiceKind(s), nil
	default:
		return "", domain.ValidationError{Field: "booking_type", Msg: "must be hotel, bus or cab"}
	}
}

// TripParams carries user-supplied trip input for a quote. Only the fields
// relevant to the variant being quoted are consulted.
type TripParams struct {
	CheckIn    time.Time
	CheckOut   time.Time
	TravelDate time.Time
	DistanceKm float64
}

// Quote is the priced outcome of trip parameters applied to one service.
// End is nil for services without a meaningful end timestamp (cabs).
type Quote struct {
	Start  time.Time
	End    *time.Time
	Amount float64
}

// Bookable is the capability every inventory variant exposes: identity,
// ownership and its own pricing rule.
type Bookable interface {
	Kind() ServiceKind
	ServiceID() int64
	OwnerProviderID() int64
	// Label is a short human description used on checkout and invoices.
	Label() string
	PriceQuote(p TripParams) (Quote, error)
}
