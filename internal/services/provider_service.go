package services

import (
	"fmt"
	"strings"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/repositories"
	"travelease/internal/utils"
)

// ProviderService covers the provider side of the marketplace:
// registration, listing management and the earnings view.
type ProviderService struct {
	Providers repositories.ProviderRepository
	Hotels    repositories.HotelRepository
	Buses     repositories.BusRepository
	Cabs      repositories.CabRepository
	Payments  repositories.PaymentRepository
	RequestID string
}

func (s ProviderService) Get(rc domain.RequestContext) (models.Provider, error) {
	if !rc.Authenticated() {
		return models.Provider{}, domain.UnauthorizedError{}
	}
	return s.Providers.GetByProfileID(rc.UserID)
}

// Register creates the provider record for the calling profile. A profile
// can hold at most one provider.
func (s ProviderService) Register(rc domain.RequestContext, companyName string) (models.Provider, error) {
	if !rc.Authenticated() {
		return models.Provider{}, domain.UnauthorizedError{}
	}
	companyName = utils.NormalizeSpace(companyName)
	if companyName == "" {
		return models.Provider{}, domain.ValidationError{Field: "company_name", Msg: "company name is required"}
	}

	if _, err := s.Providers.GetByProfileID(rc.UserID); err == nil {
		return models.Provider{}, domain.ConflictError{Resource: "provider", Msg: "already registered"}
	} else if !domain.IsNotFound(err) {
		return models.Provider{}, err
	}

	p := models.Provider{ProfileID: rc.UserID, CompanyName: companyName}
	id, err := s.Providers.Insert(p)
	if err != nil {
		return models.Provider{}, err
	}
	p.ID = id

	utils.LogEvent(s.RequestID, "provider", "register", fmt.Sprintf("provider_id=%d profile_id=%d", id, rc.UserID))
	return p, nil
}

func (s ProviderService) AddHotel(rc domain.RequestContext, h models.Hotel) (models.Hotel, error) {
	provider, err := s.Get(rc)
	if err != nil {
		return models.Hotel{}, err
	}
	if strings.TrimSpace(h.Name) == "" {
		return models.Hotel{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if strings.TrimSpace(h.Location) == "" {
		return models.Hotel{}, domain.ValidationError{Field: "location", Msg: "location is required"}
	}
	if h.PricePerNight <= 0 {
		return models.Hotel{}, domain.ValidationError{Field: "price_per_night", Msg: "price must be positive"}
	}

	h.ProviderID = provider.ID
	id, err := s.Hotels.Insert(h)
	if err != nil {
		return models.Hotel{}, err
	}
	h.ID = id
	return h, nil
}

func (s ProviderService) AddBus(rc domain.RequestContext, b models.BusRoute) (models.BusRoute, error) {
	provider, err := s.Get(rc)
	if err != nil {
		return models.BusRoute{}, err
	}
	if strings.TrimSpace(b.Operator) == "" {
		return models.BusRoute{}, domain.ValidationError{Field: "operator", Msg: "operator is required"}
	}
	if strings.TrimSpace(b.Source) == "" || strings.TrimSpace(b.Destination) == "" {
		return models.BusRoute{}, domain.ValidationError{Field: "route", Msg: "source and destination are required"}
	}
	if b.Price <= 0 {
		return models.BusRoute{}, domain.ValidationError{Field: "price", Msg: "price must be positive"}
	}
	if b.AvailableSeats < 0 {
		return models.BusRoute{}, domain.ValidationError{Field: "available_seats", Msg: "seats cannot be negative"}
	}
	if b.DepartureTime.IsZero() || b.ArrivalTime.IsZero() {
		return models.BusRoute{}, domain.ValidationError{Field: "schedule", Msg: "departure and arrival times are required"}
	}

	b.ProviderID = provider.ID
	id, err := s.Buses.Insert(b)
	if err != nil {
		return models.BusRoute{}, err
	}
	b.ID = id
	return b, nil
}

func (s ProviderService) AddCab(rc domain.RequestContext, c models.Cab) (models.Cab, error) {
	provider, err := s.Get(rc)
	if err != nil {
		return models.Cab{}, err
	}
	if strings.TrimSpace(c.VehicleType) == "" {
		return models.Cab{}, domain.ValidationError{Field: "vehicle_type", Msg: "vehicle type is required"}
	}
	if c.BasePrice < 0 || c.PricePerKm <= 0 {
		return models.Cab{}, domain.ValidationError{Field: "pricing", Msg: "prices must be positive"}
	}

	c.ProviderID = provider.ID
	c.Available = true
	id, err := s.Cabs.Insert(c)
	if err != nil {
		return models.Cab{}, err
	}
	c.ID = id
	return c, nil
}

func (s ProviderService) UpdateHotel(rc domain.RequestContext, h models.Hotel) error {
	provider, err := s.Get(rc)
	if err != nil {
		return err
	}
	h.ProviderID = provider.ID
	return s.Hotels.Update(h)
}

func (s ProviderService) UpdateBus(rc domain.RequestContext, b models.BusRoute) error {
	provider, err := s.Get(rc)
	if err != nil {
		return err
	}
	b.ProviderID = provider.ID
	return s.Buses.Update(b)
}

func (s ProviderService) UpdateCab(rc domain.RequestContext, c models.Cab) error {
	provider, err := s.Get(rc)
	if err != nil {
		return err
	}
	c.ProviderID = provider.ID
	return s.Cabs.Update(c)
}

// ListServices flattens the provider's listings across all variants.
func (s ProviderService) ListServices(rc domain.RequestContext) ([]models.ProviderService, error) {
	provider, err := s.Get(rc)
	if err != nil {
		return nil, err
	}

	out := []models.ProviderService{}

	hotels, err := s.Hotels.ListByProvider(provider.ID)
	if err != nil {
		return nil, err
	}
	for _, h := range hotels {
		out = append(out, models.ProviderService{ID: h.ID, Kind: models.KindHotel, Name: h.Name, Extra: h.Location})
	}

	buses, err := s.Buses.ListByProvider(provider.ID)
	if err != nil {
		return nil, err
	}
	for _, b := range buses {
		out = append(out, models.ProviderService{ID: b.ID, Kind: models.KindBus, Name: b.Operator, Extra: b.Source + " to " + b.Destination})
	}

	cabs, err := s.Cabs.ListByProvider(provider.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range cabs {
		out = append(out, models.ProviderService{ID: c.ID, Kind: models.KindCab, Name: c.VehicleType})
	}

	return out, nil
}

// Earnings lists the payments collected against the provider's inventory.
func (s ProviderService) Earnings(rc domain.RequestContext) ([]models.Payment, error) {
	provider, err := s.Get(rc)
	if err != nil {
		return nil, err
	}
	return s.Payments.EarningsByProvider(provider.ID)
}
