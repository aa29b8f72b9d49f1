package services

import (
	"fmt"
	"time"

	"travelease/internal/distance"
	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/metrics"
	"travelease/internal/repositories"
	"travelease/internal/utils"

	"github.com/google/uuid"
)

// BookingRequest is the user-supplied trip input for a new booking intent.
// Date fields are plain YYYY-MM-DD strings; only those relevant to the
// variant are required.
type BookingRequest struct {
	Type       string `json:"booking_type"`
	ServiceID  int64  `json:"service_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	TravelDate string `json:"travel_date"`
	Pickup     string `json:"pickup"`
	Dropoff    string `json:"dropoff"`
}

// BookingService builds booking intents: it resolves the target inventory
// item, computes the derived fields through the variant's own pricing rule
// and persists the pending booking.
type BookingService struct {
	Bookings  repositories.BookingRepository
	Hotels    repositories.HotelRepository
	Buses     repositories.BusRepository
	Cabs      repositories.CabRepository
	Estimator distance.Estimator
	RequestID string
}

// Create validates the request, prices the trip and inserts the booking in
// state (pending, pending). The returned booking carries the generated id
// and reference the caller hands to checkout.
func (s BookingService) Create(rc domain.RequestContext, req BookingRequest) (models.Booking, error) {
	if !rc.Authenticated() {
		return models.Booking{}, domain.UnauthorizedError{Msg: "sign in to make a booking"}
	}

	kind, err := models.ParseServiceKind(req.Type)
	if err != nil {
		return models.Booking{}, err
	}
	if req.ServiceID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "service_id", Msg: "id is not valid"}
	}

	svc, err := s.resolveService(kind, req.ServiceID)
	if err != nil {
		return models.Booking{}, err
	}

	params, err := s.tripParams(kind, req)
	if err != nil {
		return models.Booking{}, err
	}

	quote, err := svc.PriceQuote(params)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		Reference:     uuid.NewString(),
		UserID:        rc.UserID,
		Kind:          kind,
		ServiceID:     svc.ServiceID(),
		StartDate:     quote.Start,
		EndDate:       quote.End,
		TotalAmount:   utils.Round2(quote.Amount),
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentStatusPending,
	}

	id, err := s.Bookings.Insert(booking)
	if err != nil {
		utils.LogWarn(s.RequestID, "booking", "create", "insert failed: "+err.Error())
		return models.Booking{}, err
	}
	booking.ID = id

	metrics.IncBookingCreated(string(kind))
	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d type=%s service_id=%d total=%s", id, kind, svc.ServiceID(), utils.FormatMoney(booking.TotalAmount)))

	return booking, nil
}

func (s BookingService) resolveService(kind models.ServiceKind, id int64) (models.Bookable, error) {
	switch kind {
	case models.KindHotel:
		h, err := s.Hotels.GetByID(id)
		if err != nil {
			return nil, err
		}
		return h, nil
	case models.KindBus:
		b, err := s.Buses.GetByID(id)
		if err != nil {
			return nil, err
		}
		return b, nil
	case models.KindCab:
		c, err := s.Cabs.GetByID(id)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, domain.ValidationError{Field: "booking_type", Msg: "unknown service variant"}
	}
}

func (s BookingService) tripParams(kind models.ServiceKind, req BookingRequest) (models.TripParams, error) {
	var p models.TripParams

	switch kind {
	case models.KindHotel:
		if req.CheckIn == "" {
			return p, domain.ValidationError{Field: "check_in", Msg: "check-in date is required"}
		}
		if req.CheckOut == "" {
			return p, domain.ValidationError{Field: "check_out", Msg: "check-out date is required"}
		}
		in, err := utils.ParseDate(req.CheckIn)
		if err != nil {
			return p, domain.ValidationError{Field: "check_in", Msg: "invalid date", Err: err}
		}
		out, err := utils.ParseDate(req.CheckOut)
		if err != nil {
			return p, domain.ValidationError{Field: "check_out", Msg: "invalid date", Err: err}
		}
		p.CheckIn, p.CheckOut = in, out

	case models.KindBus:
		if req.TravelDate == "" {
			return p, domain.ValidationError{Field: "travel_date", Msg: "travel date is required"}
		}
		d, err := utils.ParseDate(req.TravelDate)
		if err != nil {
			return p, domain.ValidationError{Field: "travel_date", Msg: "invalid date", Err: err}
		}
		p.TravelDate = d

	case models.KindCab:
		if req.TravelDate == "" {
			return p, domain.ValidationError{Field: "travel_date", Msg: "travel date is required"}
		}
		d, err := utils.ParseDate(req.TravelDate)
		if err != nil {
			return p, domain.ValidationError{Field: "travel_date", Msg: "invalid date", Err: err}
		}
		p.TravelDate = d

		est := s.Estimator
		if est == nil {
			est = distance.NewStub(time.Now().UnixNano())
		}
		km, err := est.EstimateKm(req.Pickup, req.Dropoff)
		if err != nil {
			return p, domain.InternalError{Msg: "distance estimate failed", Err: err}
		}
		p.DistanceKm = km
	}

	return p, nil
}
