package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/riskframe/secreview-backend/pkg/ctxutil"
)

// statusWriter captures the response code so the access log can report it.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Logger returns access-log middleware. Each request produces one entry with
// method, path, status, duration, and the request id; the reviewer id is
// added when the request carries an authenticated reviewer. Responses of 500
// and above log at ERROR.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if reviewerID, ok := ctxutil.ReviewerIDFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("reviewer_id", reviewerID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}
