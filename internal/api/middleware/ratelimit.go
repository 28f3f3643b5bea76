package middleware

import (
	"net/http"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/api/handlers"
	"golang.org/x/time/rate"
)

// RateLimit applies a shared token bucket, used on the auth routes to
// slow down credential stuffing.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
