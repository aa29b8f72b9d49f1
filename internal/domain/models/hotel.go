package models

import (
	"math"

	"travelease/internal/domain"
)

// Hotel is a nightly-rate inventory item.
type Hotel struct {
	ID            int64    `json:"id"`
	ProviderID    int64    `json:"provider_id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	Rating        float64  `json:"rating"`
	RatingCount   int64    `json:"rating_count"`
}

func (h Hotel) Kind() ServiceKind      { return KindHotel }
func (h Hotel) ServiceID() int64       { return h.ID }
func (h Hotel) OwnerProviderID() int64 { return h.ProviderID }

func (h Hotel) Label() string { return h.Name }

func (h Hotel) PriceQuote(p TripParams) (Quote, error) {
	if p.CheckIn.IsZero() {
		return Quote{}, domain.ValidationError{Field: "check_in", Msg: "check-in date is required"}
	}
	if p.CheckOut.IsZero() {
		return Quote{}, domain.ValidationError{Field: "check_out", Msg: "check-out date is required"}
	}
	if p.CheckOut.Before(p.CheckIn) {
		return Quote{}, domain.ValidationError{Field: "check_out", Msg: "check-out must not be before check-in"}
	}

	nights := int(math.Ceil(p.CheckOut.Sub(p.CheckIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	end := p.CheckOut
	return Quote{
		Start:  p.CheckIn,
		End:    &end,
		Amount: h.PricePerNight * float64(nights),
	}, nil
}
