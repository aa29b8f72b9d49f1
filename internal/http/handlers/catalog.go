package handlers

import (
	"net/http"

	"travelease/internal/http/middleware"
	"travelease/internal/repositories"
	"travelease/internal/services"

	"github.com/gin-gonic/gin"
)

func catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{
		Hotels:    repositories.HotelRepository{DB: db()},
		Buses:     repositories.BusRepository{DB: db()},
		Cabs:      repositories.CabRepository{DB: db()},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/hotels?location=
// The check_in/check_out query params are accepted for the UI's sake but do
// not narrow the match; availability is only fixed at booking time.
func GetHotels(c *gin.Context) {
	hotels, err := catalogService(c).SearchHotels(c.Query("location"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GET /api/buses?source=&destination=
func GetBuses(c *gin.Context) {
	routes, err := catalogService(c).SearchBuses(c.Query("source"), c.Query("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": routes})
}

// GET /api/cabs
func GetCabs(c *gin.Context) {
	cabs, err := catalogService(c).ListCabs()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cabs": cabs})
}

// GET /api/packages
func GetPackages(c *gin.Context) {
	svc := services.PackageService{Packages: repositories.PackageRepository{DB: db()}}
	packages, err := svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}
