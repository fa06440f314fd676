package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-chirpy/internal/service"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/stretchr/testify/assert"
)

const testPolkaKey = "f271c81ff7084ee5b99a5091b42d486e"

func TestPolkaWebhook(t *testing.T) {
	upgradeBody := `{"event":"user.upgraded","data":{"user_id":"` + testUserID.String() + `"}}`

	tests := []struct {
		name        string
		header      []string
		body        string
		handleErr   error
		wantStatus  int
		wantHandled bool
	}{
		{
			name:        "user upgraded",
			header:      []string{"Authorization", "ApiKey " + testPolkaKey},
			body:        upgradeBody,
			wantStatus:  http.StatusNoContent,
			wantHandled: true,
		},
		{
			name:        "ignored event",
			header:      []string{"Authorization", "ApiKey " + testPolkaKey},
			body:        `{"event":"user.payment_failed","data":{"user_id":"` + testUserID.String() + `"}}`,
			handleErr:   service.ErrUnknownWebhookEvent,
			wantStatus:  http.StatusNoContent,
			wantHandled: true,
		},
		{
			name:        "unknown user",
			header:      []string{"Authorization", "ApiKey " + testPolkaKey},
			body:        upgradeBody,
			handleErr:   store.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantHandled: true,
		},
		{
			name:       "wrong key",
			header:     []string{"Authorization", "ApiKey wrong"},
			body:       upgradeBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer scheme",
			header:     bearer(testPolkaKey),
			body:       upgradeBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no key",
			body:       upgradeBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "broken payload",
			header:     []string{"Authorization", "ApiKey " + testPolkaKey},
			body:       `{"event":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handled := false
			svcs := newTestServices()
			svcs.AuthService = &mockAuthService{
				authorizeWebhookFn: func(_ context.Context, key string) error {
					if key != testPolkaKey {
						return service.ErrInvalidAPIKey
					}
					return nil
				},
			}
			svcs.WebhookService = &mockWebhookService{
				handleFn: func(_ context.Context, event models.PolkaEvent) error {
					handled = true
					assert.Equal(t, testUserID, event.Data.UserID)
					return tt.handleErr
				},
			}

			rec := serve(newTestRouter(t, svcs), http.MethodPost, "/api/polka/webhooks", tt.body, tt.header...)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHandled, handled)
		})
	}
}
