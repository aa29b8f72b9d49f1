package services

import (
	"fmt"

	"travelease/internal/domain/models"
	"travelease/internal/repositories"
	"travelease/internal/utils"
)

// CatalogService resolves search filters into offerable inventory. Read
// failures propagate as errors so callers can tell "no matches" from
// "query failed".
type CatalogService struct {
	Hotels    repositories.HotelRepository
	Buses     repositories.BusRepository
	Cabs      repositories.CabRepository
	RequestID string
}

func (s CatalogService) SearchHotels(location string) ([]models.Hotel, error) {
	hotels, err := s.Hotels.Search(location)
	if err != nil {
		utils.LogWarn(s.RequestID, "catalog", "search_hotels", "query failed: "+err.Error())
		return nil, err
	}
	utils.LogEvent(s.RequestID, "catalog", "search_hotels", fmt.Sprintf("location=%q matches=%d", location, len(hotels)))
	return hotels, nil
}

func (s CatalogService) SearchBuses(source, destination string) ([]models.BusRoute, error) {
	routes, err := s.Buses.Search(source, destination)
	if err != nil {
		utils.LogWarn(s.RequestID, "catalog", "search_buses", "query failed: "+err.Error())
		return nil, err
	}
	utils.LogEvent(s.RequestID, "catalog", "search_buses", fmt.Sprintf("source=%q destination=%q matches=%d", source, destination, len(routes)))
	return routes, nil
}

func (s CatalogService) ListCabs() ([]models.Cab, error) {
	cabs, err := s.Cabs.ListAvailable()
	if err != nil {
		utils.LogWarn(s.RequestID, "catalog", "list_cabs", "query failed: "+err.Error())
		return nil, err
	}
	return cabs, nil
}
