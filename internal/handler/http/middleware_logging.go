package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
)

// withLogging writes one access log entry per request: info for success,
// warn for client errors, error for server errors. Bodies are never logged
// since they may hold sensitive customer data.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Logger.WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}
