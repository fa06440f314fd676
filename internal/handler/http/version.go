package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-chirpy/internal/utils"
)

// getServerVersion writes the plain version string, or the full build info as
// JSON when the client accepts application/json.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(ctx), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(ctx)))
}
