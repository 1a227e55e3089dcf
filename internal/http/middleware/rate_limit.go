package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/roomly/roomly-backend/internal/http/response"
	"github.com/roomly/roomly-backend/internal/repository"
	"github.com/roomly/roomly-backend/pkg/logger"
)

// RateLimitConfig defines rate limiting parameters
type RateLimitConfig struct {
	Requests int                            // Max requests per window
	Window   time.Duration                  // Time window duration
	KeyFunc  func(r *http.Request) []string // Function to generate rate limit keys
	SkipFunc func(r *http.Request) bool     // Function to skip rate limiting
}

// RateLimiter throttles requests via the shared rate-limit store.
type RateLimiter struct {
	repo   repository.RateLimitRepository
	config RateLimitConfig
}

func NewRateLimiter(repo repository.RateLimitRepository, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		repo:   repo,
		config: config,
	}
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.config.SkipFunc != nil && rl.config.SkipFunc(r) {
				next.ServeHTTP(w, r)
				return
			}

			for _, key := range rl.config.KeyFunc(r) {
				allowed, err := rl.repo.CheckRateLimit(r.Context(), key, rl.config.Requests, rl.config.Window)
				if err != nil {
					// Fail open
					logger.ErrorContext(r.Context(), "Rate limit check failed", "error", err)
					continue
				}
				if !allowed {
					response.RateLimit(w, "Too many requests. Please try again later.")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ByClientIP keys the limiter on the caller's IP, honoring proxy
// headers.
func ByClientIP(r *http.Request) []string {
	return []string{"ip:" + clientIP(r)}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
