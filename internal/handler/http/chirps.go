package http

import (
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/utils"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	chirpIDParam     = "chirpID"
	authorIDQueryKey = "author_id"
	sortQueryKey     = "sort"
)

func (h *Handler) createChirp(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createChirp")
		return
	}

	var request models.ChirpRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err, "*Handler.createChirp")
		return
	}

	chirp, err := h.services.ChirpService.CreateChirp(r.Context(), userID, request.Body)
	if err != nil {
		writeError(w, r, err, "*Handler.createChirp")
		return
	}

	utils.WriteJSON(w, chirp, http.StatusCreated)
}

// listChirps returns all chirps, optionally narrowed by ?author_id= and
// ordered by ?sort=asc|desc (ascending by default).
func (h *Handler) listChirps(w http.ResponseWriter, r *http.Request) {
	filter, err := chirpFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listChirps")
		return
	}

	chirps, err := h.services.ChirpService.ListChirps(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listChirps")
		return
	}
	if chirps == nil {
		chirps = []models.Chirp{}
	}

	utils.WriteJSON(w, chirps, http.StatusOK)
}

func (h *Handler) getChirp(w http.ResponseWriter, r *http.Request) {
	chirpID, err := chirpIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getChirp")
		return
	}

	chirp, err := h.services.ChirpService.GetChirp(r.Context(), chirpID)
	if err != nil {
		writeError(w, r, err, "*Handler.getChirp")
		return
	}

	utils.WriteJSON(w, chirp, http.StatusOK)
}

func (h *Handler) deleteChirp(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteChirp")
		return
	}

	chirpID, err := chirpIDFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteChirp")
		return
	}

	if err = h.services.ChirpService.DeleteChirp(r.Context(), userID, chirpID); err != nil {
		writeError(w, r, err, "*Handler.deleteChirp")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func chirpIDFromPath(r *http.Request) (uuid.UUID, error) {
	chirpID, err := uuid.Parse(chi.URLParam(r, chirpIDParam))
	if err != nil {
		return uuid.Nil, ErrInvalidChirpID
	}
	return chirpID, nil
}

func chirpFilterFromQuery(r *http.Request) (models.ChirpFilter, error) {
	query := r.URL.Query()

	var filter models.ChirpFilter
	if raw := query.Get(authorIDQueryKey); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			return models.ChirpFilter{}, ErrInvalidAuthorID
		}
		filter.AuthorID = &authorID
	}

	sort, ok := models.ParseSortOrder(query.Get(sortQueryKey))
	if !ok {
		return models.ChirpFilter{}, ErrInvalidSortOrder
	}
	filter.Sort = sort

	return filter, nil
}
