package handlers

import (
	"net/http"
	"strings"
	"time"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ProfileRepository{DB: db()}
	profile, hash, err := repo.GetCredentials(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "email or password is incorrect")
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "email or password is incorrect")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": profile.ID,
		"role":    profile.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(getDeps().JWTSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  profile,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(c, http.StatusBadRequest, "validation_error", "valid email is required")
		return
	}
	if len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "validation_error", "password must be at least 8 characters")
		return
	}

	repo := repositories.ProfileRepository{DB: db()}
	exists, err := repo.EmailExists(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		respondError(c, http.StatusConflict, "conflict", "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to hash password")
		return
	}

	profile := models.Profile{
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		PhoneNumber: strings.TrimSpace(req.Phone),
		Role:        "user",
	}
	id, err := repo.Insert(profile, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	profile.ID = id

	c.JSON(http.StatusCreated, gin.H{"user": profile})
}
