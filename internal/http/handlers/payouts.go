package handlers

import (
	"fmt"
	"net/http"

	"travelease/internal/http/middleware"
	"travelease/internal/repositories"
	"travelease/internal/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func payoutService(c *gin.Context) services.PayoutService {
	return services.PayoutService{
		Payouts:   repositories.PayoutRepository{DB: db()},
		Providers: repositories.ProviderRepository{DB: db()},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/provider/payouts
func ListPayouts(c *gin.Context) {
	payouts, err := payoutService(c).List(middleware.GetAuth(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

// GET /api/provider/payouts/balance
func PayoutBalance(c *gin.Context) {
	balance, err := payoutService(c).PendingBalance(middleware.GetAuth(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending_balance": balance})
}

// POST /api/provider/payouts/settle
func WithdrawPayouts(c *gin.Context) {
	result, err := payoutService(c).Withdraw(middleware.GetAuth(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/provider/payouts/export
func ExportPayouts(c *gin.Context) {
	data, name, err := payoutService(c).ExportXLSX(middleware.GetAuth(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
