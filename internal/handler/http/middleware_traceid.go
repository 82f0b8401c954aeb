package http

import (
	"net/http"

	"github.com/MKhiriev/go-sales-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID puts a child logger carrying "trace_id" into the request
// context and echoes the ID in the response. A well-formed X-Trace-ID from
// the caller is reused; anything else is replaced by a fresh ID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !utils.ValidTraceID(traceID) {
			traceID = h.newTraceID()
		}

		l := h.logger.With().Str("trace_id", traceID).Logger()

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
