package http

import "net/http"

// countHits records one fileserver hit per request before serving it.
func (h *Handler) countHits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.services.AdminService.RecordHit()
		next.ServeHTTP(w, r)
	})
}
