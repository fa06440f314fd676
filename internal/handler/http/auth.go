package http

import (
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/utils"
	"github.com/MKhiriev/go-chirpy/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	response, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", response.ID.String()).Msg("user logged in")
	utils.WriteJSON(w, response, http.StatusOK)
}

// refresh exchanges the refresh token from the Authorization header for a new
// access token.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := auth.GetBearerToken(r.Header)
	if err != nil {
		writeError(w, r, err, "*Handler.refresh")
		return
	}

	accessToken, err := h.services.AuthService.Refresh(r.Context(), refreshToken)
	if err != nil {
		writeError(w, r, err, "*Handler.refresh")
		return
	}

	utils.WriteJSON(w, models.AccessTokenResponse{Token: accessToken}, http.StatusOK)
}

func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := auth.GetBearerToken(r.Header)
	if err != nil {
		writeError(w, r, err, "*Handler.revoke")
		return
	}

	if err = h.services.AuthService.Revoke(r.Context(), refreshToken); err != nil {
		writeError(w, r, err, "*Handler.revoke")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
