package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"saarthi/pkg/requestcontext"
)

// RequestID assigns each request a UUID (or honors an incoming X-Request-ID)
// and stores it in the context for handlers and services to log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
