package handlers

import (
	"net/http"

	"travelease/internal/domain/models"
	"travelease/internal/http/middleware"
	"travelease/internal/repositories"
	"travelease/internal/services"

	"github.com/gin-gonic/gin"
)

func providerService(c *gin.Context) services.ProviderService {
	return services.ProviderService{
		Providers: repositories.ProviderRepository{DB: db()},
		Hotels:    repositories.HotelRepository{DB: db()},
		Buses:     repositories.BusRepository{DB: db()},
		Cabs:      repositories.CabRepository{DB: db()},
		Payments:  repositories.PaymentRepository{DB: db()},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/provider
func GetProvider(c *gin.Context) {
	provider, err := providerService(c).Get(middleware.GetAuth(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider})
}

type registerProviderRequest struct {
	CompanyName string `json:"company_name"`
}

// POST /api/provider
func RegisterProvider(c *gin.Context) {
	var req registerProviderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	provider, err := providerService(c).Register(middleware.GetAuth(c), req.CompanyName)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"provider": provider})
}

// GET /api/provider/services
func ListProviderServices(c *gin.Context) {
	listings, err := providerService(c).ListServices(middleware.GetAuth(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": listings})
}

// GET /api/provider/earnings
func ProviderEarnings(c *gin.Context) {
	payments, err := providerService(c).Earnings(middleware.GetAuth(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"earnings": payments})
}

// POST /api/provider/hotels
func AddProviderHotel(c *gin.Context) {
	var h models.Hotel
	if !BindJSONOrError(c, &h) {
		return
	}
	created, err := providerService(c).AddHotel(middleware.GetAuth(c), h)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"hotel": created})
}

// PUT /api/provider/hotels/:id
func UpdateProviderHotel(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var h models.Hotel
	if !BindJSONOrError(c, &h) {
		return
	}
	h.ID = id
	if err := providerService(c).UpdateHotel(middleware.GetAuth(c), h); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": h})
}

// POST /api/provider/buses
func AddProviderBus(c *gin.Context) {
	var b models.BusRoute
	if !BindJSONOrError(c, &b) {
		return
	}
	created, err := providerService(c).AddBus(middleware.GetAuth(c), b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bus": created})
}

// PUT /api/provider/buses/:id
func UpdateProviderBus(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var b models.BusRoute
	if !BindJSONOrError(c, &b) {
		return
	}
	b.ID = id
	if err := providerService(c).UpdateBus(middleware.GetAuth(c), b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": b})
}

// POST /api/provider/cabs
func AddProviderCab(c *gin.Context) {
	var cab models.Cab
	if !BindJSONOrError(c, &cab) {
		return
	}
	created, err := providerService(c).AddCab(middleware.GetAuth(c), cab)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cab": created})
}

// PUT /api/provider/cabs/:id
func UpdateProviderCab(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var cab models.Cab
	if !BindJSONOrError(c, &cab) {
		return
	}
	cab.ID = id
	if err := providerService(c).UpdateCab(middleware.GetAuth(c), cab); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cab": cab})
}
