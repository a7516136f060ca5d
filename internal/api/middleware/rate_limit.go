package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/princeprakhar/boardgame-reviews/internal/config"
	"github.com/princeprakhar/boardgame-reviews/internal/utils"
)

// RateLimitMiddleware limits each client IP and path to RateLimitRPS requests
// per second. A non-positive limit disables it.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	if cfg.RateLimitRPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	rate := limiter.Rate{
		Period: time.Second,
		Limit:  int64(cfg.RateLimitRPS),
	}

	store := memory.NewStore()
	instance := limiter.New(store, rate, limiter.WithTrustForwardHeader(true))

	return mgin.NewMiddleware(instance,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return fmt.Sprintf("%s:%s", c.ClientIP(), c.Request.URL.Path)
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.ErrorResponse{Message: "too many requests"})
		}),
	)
}
