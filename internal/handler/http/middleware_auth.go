package http

import (
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/utils"
)

// auth is an HTTP middleware that enforces access-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.Authenticate] and, on success, stores the user ID
// in the request context with [utils.WithUserID] before delegating to the
// next handler.
//
// Requests are rejected with 401 Unauthorized when the header is absent or
// malformed, or when the token is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, err := auth.GetBearerToken(r.Header)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.Authenticate(ctx, accessToken)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, userID)))
	})
}
