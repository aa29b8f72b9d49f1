package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles by client IP. Used on auth endpoints and the payment
// callback, which external parties can hit repeatedly.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if burst <= 0 {
		burst = 5
	}
	var limiters sync.Map

	getLimiter := func(key string) *rate.Limiter {
		if v, ok := limiters.Load(key); ok {
			if lim, ok := v.(*rate.Limiter); ok {
				return lim
			}
		}
		lim := rate.NewLimiter(rate.Limit(rps), burst)
		actual, loaded := limiters.LoadOrStore(key, lim)
		if loaded {
			if actualLim, ok := actual.(*rate.Limiter); ok {
				return actualLim
			}
		}
		return lim
	}

	return func(c *gin.Context) {
		if !getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests",
				"code":       "rate_limited",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
