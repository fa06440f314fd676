package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-chirpy/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMetrics(t *testing.T) {
	svcs := newTestServices()
	svcs.AdminService = &mockAdminService{hits: 7}

	rec := serve(newTestRouter(t, svcs), http.MethodGet, "/admin/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<h1>Welcome, Chirpy Admin</h1>")
	assert.Contains(t, rec.Body.String(), "Chirpy has been visited 7 times!")
}

func TestAdminReset(t *testing.T) {
	tests := []struct {
		name       string
		resetErr   error
		wantStatus int
	}{
		{name: "dev platform", wantStatus: http.StatusOK},
		{name: "other platform", resetErr: service.ErrResetNotAllowed, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svcs := newTestServices()
			svcs.AdminService = &mockAdminService{
				resetFn: func(context.Context) error {
					called = true
					return tt.resetErr
				},
			}

			rec := serve(newTestRouter(t, svcs), http.MethodPost, "/admin/reset", "")

			assert.True(t, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.resetErr != nil {
				assert.Equal(t, tt.resetErr.Error(), errorMessage(t, rec))
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	rec := serve(newTestRouter(t, newTestServices()), http.MethodGet, "/api/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "OK", rec.Body.String())
}
