package middlewarectx

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit throttles the credential endpoints (login/signup posts)
// with a shared token bucket.
func RateLimit(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests", slog.String("path", r.URL.Path))
				http.Error(w, "too many requests, try again shortly", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
