package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"quick-task-management/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	// RequestsPerMinute is the sustained per-client rate. Zero disables limiting.
	RequestsPerMinute int
	// Burst is the bucket size. Defaults to a tenth of RequestsPerMinute, at least 1.
	Burst int
	// MaxClients bounds the number of tracked clients.
	MaxClients int
	// IdleTTL evicts a client's limiter after this long without requests.
	IdleTTL time.Duration
}

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = 1000
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 5 * time.Minute
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RequestsPerMinute / 10
	}
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, cfg.IdleTTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:    burst,
	}
}
