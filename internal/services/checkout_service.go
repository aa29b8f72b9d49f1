package services

import (
	"fmt"
	"strconv"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/gateway"
	"travelease/internal/repositories"
	"travelease/internal/utils"
)

// TaxRate is the GST applied on top of the booking amount at checkout.
const TaxRate = 0.18

// CheckoutQuote is the priced handoff to the payment widget.
type CheckoutQuote struct {
	BookingID   int64                  `json:"booking_id"`
	Reference   string                 `json:"reference"`
	BaseAmount  float64                `json:"base_amount"`
	TaxAmount   float64                `json:"tax_amount"`
	Payable     float64                `json:"payable"`
	Description string                 `json:"description"`
	Gateway     gateway.CheckoutConfig `json:"gateway"`
}

// CheckoutService turns a pending booking into a gateway checkout config:
// base amount plus tax, payer prefill from the profile, booking id in the
// notes so the callback can find its way back.
type CheckoutService struct {
	Bookings  repositories.BookingRepository
	Profiles  repositories.ProfileRepository
	Hotels    repositories.HotelRepository
	Buses     repositories.BusRepository
	Cabs      repositories.CabRepository
	Gateway   gateway.Client
	RequestID string
}

// Payable computes the tax-inclusive amount for a base booking amount.
func Payable(base float64) float64 {
	return utils.Round2(base * (1 + TaxRate))
}

func (s CheckoutService) Quote(rc domain.RequestContext, bookingID int64) (CheckoutQuote, error) {
	if !rc.Authenticated() {
		return CheckoutQuote{}, domain.UnauthorizedError{Msg: "sign in to check out"}
	}

	booking, err := s.Bookings.GetOwned(bookingID, rc.UserID)
	if err != nil {
		return CheckoutQuote{}, err
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return CheckoutQuote{}, domain.ConflictError{Resource: "booking", Msg: "already paid"}
	}
	if booking.Status == models.BookingCancelled {
		return CheckoutQuote{}, domain.ConflictError{Resource: "booking", Msg: "cancelled"}
	}

	profile, err := s.Profiles.GetByID(rc.UserID)
	if err != nil {
		return CheckoutQuote{}, err
	}
	if profile.PhoneNumber == "" {
		return CheckoutQuote{}, domain.ValidationError{Field: "phone_number", Msg: "update your phone number before making a payment"}
	}

	description, err := s.Describe(booking)
	if err != nil {
		return CheckoutQuote{}, err
	}

	base := booking.TotalAmount
	payable := Payable(base)

	quote := CheckoutQuote{
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		BaseAmount:  base,
		TaxAmount:   utils.Round2(payable - base),
		Payable:     payable,
		Description: description,
		Gateway: s.Gateway.BuildCheckout(payable, description, gateway.Prefill{
			Name:    profile.Name,
			Email:   profile.Email,
			Contact: profile.PhoneNumber,
		}, strconv.FormatInt(booking.ID, 10)),
	}

	utils.LogEvent(s.RequestID, "checkout", "quote",
		fmt.Sprintf("booking_id=%d base=%s payable=%s", booking.ID, utils.FormatMoney(base), utils.FormatMoney(payable)))

	return quote, nil
}

// Describe renders the human-readable line item for a booking, resolving
// the underlying listing's label.
func (s CheckoutService) Describe(b models.Booking) (string, error) {
	var label string
	switch b.Kind {
	case models.KindHotel:
		h, err := s.Hotels.GetByID(b.ServiceID)
		if err != nil {
			return "", err
		}
		label = h.Label()
	case models.KindBus:
		r, err := s.Buses.GetByID(b.ServiceID)
		if err != nil {
			return "", err
		}
		label = r.Label()
	case models.KindCab:
		c, err := s.Cabs.GetByID(b.ServiceID)
		if err != nil {
			return "", err
		}
		label = c.Label()
	default:
		return "", domain.ValidationError{Field: "booking_type", Msg: "unknown service variant"}
	}
	return fmt.Sprintf("%s booking: %s", b.Kind, label), nil
}
