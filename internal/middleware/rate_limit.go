package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"quick-task-management/pkg/response"
)

// RateLimit rejects requests over the per-client rate with 429. Clients are
// keyed by c.ClientIP().
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rate <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !m.limiter(key).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", key)
			response.Abort(c, response.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

func (m Middleware) limiter(key string) *rate.Limiter {
	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters.Add(key, limiter)
	}
	return limiter
}
