package middleware

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
)

// NewLimiter allows perSecond requests per client IP.
func NewLimiter(perSecond float64) *limiter.Limiter {
	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	return lmt
}

// RateLimiter rejects requests over the limiter's budget with 429.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpErr := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpErr != nil {
			c.AbortWithStatusJSON(httpErr.StatusCode, gin.H{"message": httpErr.Message})
			return
		}
		c.Next()
	}
}
