package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/service"
	"github.com/MKhiriev/go-chirpy/models"
)

// polkaWebhook accepts payment events. The caller authenticates with
// "Authorization: ApiKey <key>". Events chirpy does not act upon are
// acknowledged with 204 like handled ones.
func (h *Handler) polkaWebhook(w http.ResponseWriter, r *http.Request) {
	apiKey, err := auth.GetAPIKey(r.Header)
	if err != nil {
		writeError(w, r, err, "*Handler.polkaWebhook")
		return
	}

	ctx := r.Context()
	if err = h.services.AuthService.AuthorizeWebhook(ctx, apiKey); err != nil {
		writeError(w, r, err, "*Handler.polkaWebhook")
		return
	}

	var event models.PolkaEvent
	if err = decodeJSON(r, &event); err != nil {
		writeError(w, r, err, "*Handler.polkaWebhook")
		return
	}

	err = h.services.WebhookService.HandlePolkaEvent(ctx, event)
	if err != nil && !errors.Is(err, service.ErrUnknownWebhookEvent) {
		writeError(w, r, err, "*Handler.polkaWebhook")
		return
	}

	logger.FromRequest(r).Info().Str("event", event.Event).Msg("webhook processed")
	w.WriteHeader(http.StatusNoContent)
}
