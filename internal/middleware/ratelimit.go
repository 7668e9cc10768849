package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	TooManySubmissionsMessage = "Too many match requests, please wait a moment and try again"

	rateLimitedKey = "rateLimitedResponse"
)

// OnRateLimited sets the response SubmitRateLimit writes when it rejects the
// current request. Without it the rejection is a JSON error body.
func OnRateLimited(c *gin.Context, respond gin.HandlerFunc) {
	c.Set(rateLimitedKey, respond)
}

// SubmitRateLimit limits match submissions per client IP. perMinute <= 0
// disables the limit. Every request that reaches it spends quota, so mount it
// after whatever rejects invalid submissions.
func SubmitRateLimit(perMinute, burst int, log *zap.Logger) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	every := time.Minute / time.Duration(perMinute)
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			// 한 시간 동안 요청이 없으면 limiter 폐기
			return rate.NewLimiter(rate.Every(every), burst), time.Hour
		},
		func(c *gin.Context) {
			log.Warn("SubmitRateLimit(): too many submissions", zap.String("clientIP", c.ClientIP()))
			if v, ok := c.Get(rateLimitedKey); ok {
				if respond, ok := v.(gin.HandlerFunc); ok {
					respond(c)
					c.Abort()
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": TooManySubmissionsMessage})
		},
	)
}
