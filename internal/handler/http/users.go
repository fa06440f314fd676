package http

import (
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/utils"
	"github.com/MKhiriev/go-chirpy/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID.String()).Msg("user created")
	utils.WriteJSON(w, user, http.StatusCreated)
}

// updateUser replaces the email and password of the authenticated user.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateUser")
		return
	}

	var credentials models.Credentials
	if err = decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err, "*Handler.updateUser")
		return
	}

	user, err := h.services.UserService.UpdateCredentials(r.Context(), userID, credentials)
	if err != nil {
		writeError(w, r, err, "*Handler.updateUser")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
