package middleware

import (
	"net/http"
	"strings"

	"travelease/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authContextKey = "auth_context"

// Auth parses a Bearer token and stores the request context. With
// required=false the request proceeds unauthenticated; handlers that need
// identity will then reject it through the service layer.
func Auth(secret []byte, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := domain.RequestContext{RequestID: GetRequestID(c)}

		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			claims := jwt.MapClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err == nil && parsed.Valid {
				if id, ok := claims["user_id"].(float64); ok {
					rc.UserID = int64(id)
				}
				if role, ok := claims["role"].(string); ok {
					rc.Role = role
				}
			}
		}

		if required && !rc.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"code":       "unauthorized",
				"request_id": rc.RequestID,
			})
			return
		}

		c.Set(authContextKey, rc)
		c.Next()
	}
}

// GetAuth returns the request context stored by Auth. Zero value when the
// request is unauthenticated.
func GetAuth(c *gin.Context) domain.RequestContext {
	if v, ok := c.Get(authContextKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{RequestID: GetRequestID(c)}
}
