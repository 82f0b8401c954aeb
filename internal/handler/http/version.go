package http

import (
	"io"
	"net/http"
)

// getServerVersion answers with the bare version string; it is public so
// clients can check compatibility before logging in.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
