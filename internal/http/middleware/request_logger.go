package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/homeprohq/homepro-platform/pkg/logging"
)

// RequestLogger emits one structured log line per request with the response
// status and size. Requests carrying the anonymous session header (wizard
// steps, helpful votes) are tagged with it so a visitor's flow can be
// followed across endpoints.
func RequestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
				"remote_ip", r.RemoteAddr,
			}
			if sid := r.Header.Get("X-Session-Id"); sid != "" {
				attrs = append(attrs, "session_id", sid)
			}
			logger.Info("request completed", attrs...)
		})
	}
}
