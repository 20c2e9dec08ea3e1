package middleware

import (
	"net/http"
	"strings"

	"github.com/sparkwave/sparkwave-login/infrastructure/http/response"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/ratelimit"
)

// RateLimit throttles by client IP. When the limiter itself errors the
// request is let through: availability of signin wins over throttling.
func RateLimit(limiter ratelimit.Limiter, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				log.Warn(r.Context(), "rate limiter unavailable", map[string]interface{}{
					"ip":    ip,
					"error": err.Error(),
				})
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				response.TooManyRequests(w, "Erro: Muitas tentativas. Tente novamente mais tarde.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP resolves the caller's address: the first comma-separated
// X-Forwarded-For value, trimmed, else the connection's remote address
// without the port.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
