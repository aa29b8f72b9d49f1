package handlers

import (
	"net/http"
	"strings"

	"travelease/internal/http/middleware"
	"travelease/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/profile
func GetProfile(c *gin.Context) {
	rc := middleware.GetAuth(c)
	repo := repositories.ProfileRepository{DB: db()}
	profile, err := repo.GetByID(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone_number"`
}

// PUT /api/profile
func UpdateProfile(c *gin.Context) {
	rc := middleware.GetAuth(c)
	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "name is required")
		return
	}

	repo := repositories.ProfileRepository{DB: db()}
	if err := repo.UpdateContact(rc.UserID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone)); err != nil {
		RespondDomainError(c, err)
		return
	}
	profile, err := repo.GetByID(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
