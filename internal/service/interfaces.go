package service

import (
	"context"

	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// AuthService composes password verification, access tokens and refresh
// tokens into login, refresh, revoke and request authentication.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)
	// Refresh mints a new access token for the owner of an active refresh token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
	// Authenticate validates an access token and returns its subject.
	Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error)
	AuthorizeWebhook(ctx context.Context, apiKey string) error
}

// RefreshTokenService manages the lifecycle of persisted refresh tokens.
type RefreshTokenService interface {
	Issue(ctx context.Context, userID uuid.UUID) (models.RefreshToken, error)
	Redeem(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, token string) (models.RefreshToken, error)
}

type UserService interface {
	CreateUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	UpdateCredentials(ctx context.Context, userID uuid.UUID, credentials models.Credentials) (models.User, error)
	UpgradeToChirpyRed(ctx context.Context, userID uuid.UUID) error
}

type ChirpService interface {
	CreateChirp(ctx context.Context, userID uuid.UUID, body string) (models.Chirp, error)
	GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error)
	ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error)
	// DeleteChirp removes a chirp on behalf of userID, who must be its author.
	DeleteChirp(ctx context.Context, userID, chirpID uuid.UUID) error
}

// ChirpServiceWrapper defines middleware composition for ChirpService.
// Implementations wrap an existing ChirpService to add behavior such as
// validating.
type ChirpServiceWrapper interface {
	Wrap(ChirpService) ChirpService
}

type WebhookService interface {
	HandlePolkaEvent(ctx context.Context, event models.PolkaEvent) error
}

// AdminService backs the admin endpoints: fileserver hit counting and the
// development reset.
type AdminService interface {
	RecordHit()
	Hits() int64
	Reset(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() uuid.UUID
}
