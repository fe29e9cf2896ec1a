package api

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/roomease/roomease/internal/utils"
)

// LoggingMiddleware logs each request's method, path and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, utils.SanitizeLogString(r.URL.Path), time.Since(start))
	})
}

// RateLimitMiddleware rejects requests above the configured rate with
// 429 Too Many Requests. The limiter is shared across all clients.
func RateLimitMiddleware(perSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WrapMuxWithMiddleware applies rate limiting and request logging to the mux.
func WrapMuxWithMiddleware(mux *http.ServeMux, perSecond float64, burst int) http.Handler {
	return LoggingMiddleware(RateLimitMiddleware(perSecond, burst)(mux))
}
