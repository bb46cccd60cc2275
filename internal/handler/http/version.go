package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
)

// getServerVersion answers with the plain-text server version. Clients use
// it as the liveness endpoint.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-store")

	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing version failed")
	}
}
