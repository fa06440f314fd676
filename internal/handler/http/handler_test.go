package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/service"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case; Authenticate accepts testAccessToken by default.
type mockAuthService struct {
	loginFn            func(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)
	refreshFn          func(ctx context.Context, refreshToken string) (string, error)
	revokeFn           func(ctx context.Context, refreshToken string) error
	authenticateFn     func(ctx context.Context, accessToken string) (uuid.UUID, error)
	authorizeWebhookFn func(ctx context.Context, apiKey string) error
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) Revoke(ctx context.Context, refreshToken string) error {
	return m.revokeFn(ctx, refreshToken)
}

func (m *mockAuthService) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	if m.authenticateFn == nil {
		if accessToken == testAccessToken {
			return testUserID, nil
		}
		return uuid.Nil, auth.ErrInvalidToken
	}
	return m.authenticateFn(ctx, accessToken)
}

func (m *mockAuthService) AuthorizeWebhook(ctx context.Context, apiKey string) error {
	return m.authorizeWebhookFn(ctx, apiKey)
}

type mockUserService struct {
	createUserFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	updateCredentialsFn func(ctx context.Context, userID uuid.UUID, credentials models.Credentials) (models.User, error)
	upgradeFn           func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserService) CreateUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.createUserFn(ctx, credentials)
}

func (m *mockUserService) UpdateCredentials(ctx context.Context, userID uuid.UUID, credentials models.Credentials) (models.User, error) {
	return m.updateCredentialsFn(ctx, userID, credentials)
}

func (m *mockUserService) UpgradeToChirpyRed(ctx context.Context, userID uuid.UUID) error {
	return m.upgradeFn(ctx, userID)
}

type mockChirpService struct {
	createChirpFn func(ctx context.Context, userID uuid.UUID, body string) (models.Chirp, error)
	getChirpFn    func(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error)
	listChirpsFn  func(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error)
	deleteChirpFn func(ctx context.Context, userID, chirpID uuid.UUID) error
}

func (m *mockChirpService) CreateChirp(ctx context.Context, userID uuid.UUID, body string) (models.Chirp, error) {
	return m.createChirpFn(ctx, userID, body)
}

func (m *mockChirpService) GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error) {
	return m.getChirpFn(ctx, chirpID)
}

func (m *mockChirpService) ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error) {
	return m.listChirpsFn(ctx, filter)
}

func (m *mockChirpService) DeleteChirp(ctx context.Context, userID, chirpID uuid.UUID) error {
	return m.deleteChirpFn(ctx, userID, chirpID)
}

type mockWebhookService struct {
	handleFn func(ctx context.Context, event models.PolkaEvent) error
}

func (m *mockWebhookService) HandlePolkaEvent(ctx context.Context, event models.PolkaEvent) error {
	return m.handleFn(ctx, event)
}

type mockAdminService struct {
	hits    int64
	resetFn func(ctx context.Context) error
}

func (m *mockAdminService) RecordHit() {
	m.hits++
}

func (m *mockAdminService) Hits() int64 {
	return m.hits
}

func (m *mockAdminService) Reset(ctx context.Context) error {
	return m.resetFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.VersionResponse {
	return models.VersionResponse{Version: m.version, BuildDate: "N/A", BuildCommit: "N/A"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testAccessToken = "valid.access.token"

var (
	testUserID  = uuid.MustParse("0195f0a2-7c1e-7000-8000-000000000001")
	testChirpID = uuid.MustParse("0195f0a2-7c1e-7000-8000-0000000000c1")
	testTime    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

// newTestServices fills every service with a mock so the full router can be
// built. Tests replace the fields they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		UserService:    &mockUserService{},
		ChirpService:   &mockChirpService{},
		WebhookService: &mockWebhookService{},
		AdminService:   &mockAdminService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{FilepathRoot: t.TempDir()}, logger.Nop()).Init()
}

// serve sends one request through handler. headers are "key", "value" pairs.
func serve(handler http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeResponse[struct {
		Error string `json:"error"`
	}](t, rec).Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	cfg := config.Server{FilepathRoot: "/srv/www", RequestTimeout: time.Second}
	log := logger.Nop()

	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.metrics)
	assert.NotSame(t, h, NewHandler(svcs, cfg, log))
}

func TestHandler_FilepathRootDefaultsToCurrentDir(t *testing.T) {
	assert.Equal(t, ".", NewHandler(nil, config.Server{}, logger.Nop()).filepathRoot())
	assert.Equal(t, "web", NewHandler(nil, config.Server{FilepathRoot: "web"}, logger.Nop()).filepathRoot())
}
