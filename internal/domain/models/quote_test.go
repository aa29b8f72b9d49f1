package models

import (
	"testing"
	"time"

	"travelease/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestHotelPriceQuoteNights(t *testing.T) {
	h := Hotel{ID: 1, PricePerNight: 1200}

	q, err := h.PriceQuote(TripParams{
		CheckIn:  day(2026, 3, 10),
		CheckOut: day(2026, 3, 13),
	})
	require.NoError(t, err)
	assert.Equal(t, 3600.0, q.Amount)
	assert.Equal(t, day(2026, 3, 10), q.Start)
	require.NotNil(t, q.End)
	assert.Equal(t, day(2026, 3, 13), *q.End)
}

func TestHotelPriceQuoteSameDayChargesOneNight(t *testing.T) {
	h := Hotel{PricePerNight: 900}

	q, err := h.PriceQuote(TripParams{
		CheckIn:  day(2026, 3, 10),
		CheckOut: day(2026, 3, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, 900.0, q.Amount)
}

func TestHotelPriceQuoteRejectsBadDates(t *testing.T) {
	h := Hotel{PricePerNight: 900}

	_, err := h.PriceQuote(TripParams{CheckOut: day(2026, 3, 10)})
	assert.True(t, domain.IsValidation(err))

	_, err = h.PriceQuote(TripParams{CheckIn: day(2026, 3, 10)})
	assert.True(t, domain.IsValidation(err))

	_, err = h.PriceQuote(TripParams{
		CheckIn:  day(2026, 3, 12),
		CheckOut: day(2026, 3, 10),
	})
	assert.True(t, domain.IsValidation(err))
}

func TestBusPriceQuoteAnchorsClockTimes(t *testing.T) {
	b := BusRoute{
		Price:          450,
		AvailableSeats: 12,
		DepartureTime:  time.Date(2000, 1, 1, 9, 30, 0, 0, time.Local),
		ArrivalTime:    time.Date(2000, 1, 1, 17, 15, 0, 0, time.Local),
	}

	q, err := b.PriceQuote(TripParams{TravelDate: day(2026, 4, 2)})
	require.NoError(t, err)
	assert.Equal(t, 450.0, q.Amount)
	assert.Equal(t, time.Date(2026, 4, 2, 9, 30, 0, 0, time.Local), q.Start)
	require.NotNil(t, q.End)
	assert.Equal(t, time.Date(2026, 4, 2, 17, 15, 0, 0, time.Local), *q.End)
}

func TestBusPriceQuoteOvernightRollsArrival(t *testing.T) {
	b := BusRoute{
		Price:          800,
		AvailableSeats: 3,
		DepartureTime:  time.Date(2000, 1, 1, 22, 0, 0, 0, time.Local),
		ArrivalTime:    time.Date(2000, 1, 1, 6, 0, 0, 0, time.Local),
	}

	q, err := b.PriceQuote(TripParams{TravelDate: day(2026, 4, 2)})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 2, 22, 0, 0, 0, time.Local), q.Start)
	require.NotNil(t, q.End)
	assert.Equal(t, time.Date(2026, 4, 3, 6, 0, 0, 0, time.Local), *q.End)
}

func TestBusPriceQuoteNoSeats(t *testing.T) {
	b := BusRoute{Price: 450, AvailableSeats: 0}
	_, err := b.PriceQuote(TripParams{TravelDate: day(2026, 4, 2)})
	assert.True(t, domain.IsConflict(err))
}

func TestCabPriceQuoteFormula(t *testing.T) {
	c := Cab{BasePrice: 100, PricePerKm: 12, Available: true}

	q, err := c.PriceQuote(TripParams{TravelDate: day(2026, 5, 1), DistanceKm: 25})
	require.NoError(t, err)
	assert.Equal(t, 400.0, q.Amount)
	assert.Nil(t, q.End)
}

func TestCabPriceQuoteUnavailable(t *testing.T) {
	c := Cab{BasePrice: 100, PricePerKm: 12}
	_, err := c.PriceQuote(TripParams{TravelDate: day(2026, 5, 1), DistanceKm: 10})
	assert.True(t, domain.IsConflict(err))
}

func TestParseServiceKind(t *testing.T) {
	for _, s := range []string{"hotel", "bus", "cab"} {
		k, err := ParseServiceKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(k))
	}
	_, err := ParseServiceKind("flight")
	assert.True(t, domain.IsValidation(err))
}
