package handlers

import (
	"fmt"
	"net/http"

	"travelease/internal/docs"
	"travelease/internal/domain"
	"travelease/internal/http/middleware"
	"travelease/internal/repositories"
	"travelease/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  repositories.BookingRepository{DB: db()},
		Hotels:    repositories.HotelRepository{DB: db()},
		Buses:     repositories.BusRepository{DB: db()},
		Cabs:      repositories.CabRepository{DB: db()},
		Estimator: getDeps().Estimator,
		RequestID: middleware.GetRequestID(c),
	}
}

func checkoutService(c *gin.Context) services.CheckoutService {
	return services.CheckoutService{
		Bookings:  repositories.BookingRepository{DB: db()},
		Profiles:  repositories.ProfileRepository{DB: db()},
		Hotels:    repositories.HotelRepository{DB: db()},
		Buses:     repositories.BusRepository{DB: db()},
		Cabs:      repositories.CabRepository{DB: db()},
		Gateway:   getDeps().Gateway,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req services.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingService(c).Create(middleware.GetAuth(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GET /api/bookings
func ListBookings(c *gin.Context) {
	rc := middleware.GetAuth(c)
	repo := repositories.BookingRepository{DB: db()}
	bookings, err := repo.ListByUser(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	rc := middleware.GetAuth(c)
	repo := repositories.BookingRepository{DB: db()}
	booking, err := repo.GetOwned(id, rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/bookings/:id/checkout
func GetBookingCheckout(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	quote, err := checkoutService(c).Quote(middleware.GetAuth(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GET /api/bookings/:id/invoice
func GetBookingInvoice(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	rc := middleware.GetAuth(c)

	repo := repositories.BookingRepository{DB: db()}
	booking, err := repo.GetOwned(id, rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	profiles := repositories.ProfileRepository{DB: db()}
	profile, err := profiles.GetByID(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	description, err := checkoutService(c).Describe(booking)
	if err != nil && !domain.IsNotFound(err) {
		RespondDomainError(c, err)
		return
	}

	data, name, err := docs.BuildInvoicePDF(docs.InvoiceData{
		Booking:      booking,
		CustomerName: profile.Name,
		Description:  description,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, "application/pdf", data)
}
