package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/frahmantamala/shift-scheduling/pkg/logger"
)

const traceHeader = "X-Trace-ID"

// RequestID tags every request with a trace id, minting one when the
// client did not send any, and scopes the request logger to it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set(traceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
