package handlers

import (
	"net/http"

	intconfig "travelease/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if db() == nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "database not connected")
		return
	}
	if err := intconfig.EnsureDB(); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "database unreachable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK"})
}
