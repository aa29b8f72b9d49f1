package models

import (
	"fmt"
	"time"

	"travelease/internal/domain"
)

// BusRoute is a flat-fare inventory item with fixed departure and arrival
// clock times; the stored timestamps only matter for their time-of-day.
type BusRoute struct {
	ID             int64     `json:"id"`
	ProviderID     int64     `json:"provider_id"`
	Operator       string    `json:"operator"`
	Source         string    `json:"source"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
	Rating         float64   `json:"rating"`
	RatingCount    int64     `json:"rating_count"`
}

func (b BusRoute) Kind() ServiceKind      { return KindBus }
func (b BusRoute) ServiceID() int64       { return b.ID }
func (b BusRoute) OwnerProviderID() int64 { return b.ProviderID }

func (b BusRoute) Label() string {
	return fmt.Sprintf("%s (%s to %s)", b.Operator, b.Source, b.Destination)
}

// PriceQuote anchors the route's clock times on the chosen travel date.
// When the arrival clock time is earlier than the departure clock time the
// route runs overnight and arrival rolls to the next day.
func (b BusRoute) PriceQuote(p TripParams) (Quote, error) {
	if p.TravelDate.IsZero() {
		return Quote{}, domain.ValidationError{Field: "travel_date", Msg: "travel date is required"}
	}
	if b.AvailableSeats <= 0 {
		return Quote{}, domain.ConflictError{Resource: "bus route", Msg: "no seats available"}
	}

	d := p.TravelDate
	dep := time.Date(d.Year(), d.Month(), d.Day(),
		b.DepartureTime.Hour(), b.DepartureTime.Minute(), 0, 0, d.Location())
	arr := time.Date(d.Year(), d.Month(), d.Day(),
		b.ArrivalTime.Hour(), b.ArrivalTime.Minute(), 0, 0, d.Location())
	if arr.Before(dep) {
		arr = arr.AddDate(0, 0, 1)
	}

	return Quote{
		Start:  dep,
		End:    &arr,
		Amount: b.Price,
	}, nil
}
