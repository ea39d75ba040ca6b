package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

const rateLimitMessage = "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요."

// RateLimit allows perMinute requests per client IP, with a burst of the same
// size. perMinute <= 0 disables limiting.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	every := time.Minute / time.Duration(perMinute)

	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			// 마지막 요청 후 10분 지나면 클라이언트 상태 폐기
			return rate.NewLimiter(rate.Every(every), perMinute), 10 * time.Minute
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": rateLimitMessage})
		},
	)
}
