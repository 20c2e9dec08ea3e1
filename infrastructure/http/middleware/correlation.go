package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
)

// CorrelationIDHeader carries the request's correlation id end to end.
const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationID assigns every request a correlation id, reusing the
// caller's when present, and echoes it in the response.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(CorrelationIDHeader, id)
		ctx := context.WithValue(r.Context(), logger.CorrelationIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
