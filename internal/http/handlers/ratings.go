package handlers

import (
	"net/http"

	"travelease/internal/domain/models"
	"travelease/internal/http/middleware"
	"travelease/internal/repositories"
	"travelease/internal/services"

	"github.com/gin-gonic/gin"
)

type rateRequest struct {
	Rating int `json:"rating"`
}

func rate(c *gin.Context, kind models.ServiceKind) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req rateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.RatingService{
		Ratings:   repositories.RatingRepository{DB: db()},
		RequestID: middleware.GetRequestID(c),
	}
	result, err := svc.Rate(middleware.GetAuth(c), kind, id, req.Rating)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/hotels/:id/rating
func RateHotel(c *gin.Context) {
	rate(c, models.KindHotel)
}

// POST /api/buses/:id/rating
func RateBus(c *gin.Context) {
	rate(c, models.KindBus)
}
