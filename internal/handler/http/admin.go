package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/logger"
)

const adminMetricsTemplate = `<html>
  <body>
    <h1>Welcome, Chirpy Admin</h1>
    <p>Chirpy has been visited %d times!</p>
  </body>
</html>`

func (h *Handler) adminMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, adminMetricsTemplate, h.services.AdminService.Hits())
}

// adminReset wipes all users and zeroes the hit counter. Only allowed on the
// dev platform.
func (h *Handler) adminReset(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AdminService.Reset(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.adminReset")
		return
	}

	logger.FromRequest(r).Warn().Msg("all users deleted and hits reset")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hits reset to 0 and database reset to initial state."))
}
