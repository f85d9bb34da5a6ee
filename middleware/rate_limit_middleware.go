package middleware

import (
	"net/http"
	"sync"
	"time"

	"blog-backend/config"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a per-client token bucket keyed by the
// caller's real IP. Idle clients are evicted after the configured TTL
// so the map stays bounded.
type RateLimitMiddleware struct {
	cfg     config.RateLimitConfig
	clients map[string]*clientLimiter
	mu      sync.Mutex
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		cfg:     cfg,
		clients: make(map[string]*clientLimiter),
	}
	if cfg.Enabled {
		go m.evictLoop()
	}
	return m
}

func (m *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.cfg.Enabled {
				return next(c)
			}

			if !m.limiterFor(c.RealIP()).Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[ip]
	if !ok {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(m.cfg.RequestsPerSec), m.cfg.Burst),
		}
		m.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

func (m *RateLimitMiddleware) evictLoop() {
	ticker := time.NewTicker(m.cfg.ClientTTL)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-m.cfg.ClientTTL)
		m.mu.Lock()
		for ip, client := range m.clients {
			if client.lastSeen.Before(cutoff) {
				delete(m.clients, ip)
			}
		}
		m.mu.Unlock()
	}
}
