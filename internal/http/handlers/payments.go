package handlers

import (
	"net/http"

	"travelease/internal/gateway"
	"travelease/internal/http/middleware"
	"travelease/internal/repositories"
	"travelease/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/payments/callback
//
// The gateway posts here after a successful charge. The route is public:
// authenticity comes from the HMAC signature, not from a session.
func PaymentCallback(c *gin.Context) {
	var cb gateway.Callback
	if !BindJSONOrError(c, &cb) {
		return
	}

	svc := services.SettlementService{
		DB:        db(),
		Payments:  repositories.PaymentRepository{DB: db()},
		Idem:      getDeps().Idem,
		Gateway:   getDeps().Gateway,
		RequestID: middleware.GetRequestID(c),
	}

	result, err := svc.Settle(c.Request.Context(), cb)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settlement": result})
}
