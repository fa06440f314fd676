package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/mock"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey  = "test-sign-key"
	testPolkaKey = "f271c81ff7084ee5b99a5091b42d486e"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:         testSignKey,
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: refreshLifetime,
		PolkaKey:             testPolkaKey,
	}
}

// newTestAuthSvc — wires authService to a real refreshTokenService, both
// backed by mock repositories.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockRefreshTokenRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	refreshSvc, tokens := newTestRefreshTokenSvc(t, ctrl)

	svc := NewAuthService(users, refreshSvc, testAppConfig(), logger.Nop()).(*authService)
	return svc, users, tokens
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	return models.User{
		ID:             uuid.New(),
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
		Email:          "walt@example.com",
		HashedPassword: hash,
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t, "04234")

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil),
		tokens.EXPECT().CreateRefreshToken(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rt models.RefreshToken) (models.RefreshToken, error) {
				assert.Equal(t, user.ID, rt.UserID)
				return rt, nil
			},
		),
	)

	resp, err := svc.Login(ctx, models.Credentials{Email: user.Email, Password: "04234"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, user.Email, resp.Email)
	assert.Regexp(t, hexTokenPattern, resp.RefreshToken)

	subject, err := auth.ValidateJWT(resp.Token, testSignKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestAuthService_Login_Failures(t *testing.T) {
	user := storedUser(t, "04234")
	dbErr := errors.New("db is down")

	tests := []struct {
		name        string
		credentials models.Credentials
		setup       func(users *mock.MockUserRepository)
		wantErr     error
	}{
		{
			name:        "empty email",
			credentials: models.Credentials{Password: "04234"},
			setup:       func(users *mock.MockUserRepository) {},
			wantErr:     ErrInvalidDataProvided,
		},
		{
			name:        "empty password",
			credentials: models.Credentials{Email: user.Email},
			setup:       func(users *mock.MockUserRepository) {},
			wantErr:     ErrInvalidDataProvided,
		},
		{
			name:        "unknown email",
			credentials: models.Credentials{Email: "nobody@example.com", Password: "04234"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "wrong password",
			credentials: models.Credentials{Email: user.Email, Password: "wrong"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "unset password hash",
			credentials: models.Credentials{Email: user.Email, Password: "unset"},
			setup: func(users *mock.MockUserRepository) {
				legacy := user
				legacy.HashedPassword = "unset"
				users.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(legacy, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "storage failure",
			credentials: models.Credentials{Email: user.Email, Password: "04234"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(models.User{}, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestAuthSvc(t, ctrl)
			tt.setup(users)

			_, err := svc.Login(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_RefreshTokenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, tokens := newTestAuthSvc(t, ctrl)
	user := storedUser(t, "04234")

	users.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	tokens.EXPECT().CreateRefreshToken(gomock.Any(), gomock.Any()).Return(models.RefreshToken{}, errors.New("disk full"))

	_, err := svc.Login(context.Background(), models.Credentials{Email: user.Email, Password: "04234"})
	require.Error(t, err)
}

// ── Refresh / Revoke ─────────────────────────────────────────────────────────

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)
	userID := uuid.New()

	tokens.EXPECT().FindActiveRefreshToken(gomock.Any(), testRefreshToken, testNow).
		Return(models.RefreshToken{Token: testRefreshToken, UserID: userID}, nil)

	accessToken, err := svc.Refresh(context.Background(), testRefreshToken)
	require.NoError(t, err)

	subject, err := svc.Authenticate(context.Background(), accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestAuthService_Refresh_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)

	tokens.EXPECT().FindActiveRefreshToken(gomock.Any(), testRefreshToken, testNow).
		Return(models.RefreshToken{}, store.ErrRefreshTokenNotFound)

	token, err := svc.Refresh(context.Background(), testRefreshToken)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredRefreshToken)
	assert.Empty(t, token)
}

func TestAuthService_RevokeThenRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)
	revokedAt := testNow

	gomock.InOrder(
		tokens.EXPECT().SetRefreshTokenRevoked(gomock.Any(), testRefreshToken, testNow).
			Return(models.RefreshToken{Token: testRefreshToken, RevokedAt: &revokedAt}, nil),
		tokens.EXPECT().FindActiveRefreshToken(gomock.Any(), testRefreshToken, testNow).
			Return(models.RefreshToken{}, store.ErrRefreshTokenNotFound),
	)

	require.NoError(t, svc.Revoke(context.Background(), testRefreshToken))

	_, err := svc.Refresh(context.Background(), testRefreshToken)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredRefreshToken)
}

func TestAuthService_Revoke_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)

	tokens.EXPECT().SetRefreshTokenRevoked(gomock.Any(), "missing", testNow).
		Return(models.RefreshToken{}, store.ErrRefreshTokenNotFound)

	assert.ErrorIs(t, svc.Revoke(context.Background(), "missing"), store.ErrRefreshTokenNotFound)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()

	valid, err := auth.MakeJWT(userID, testSignKey, time.Hour)
	require.NoError(t, err)
	expired, err := auth.MakeJWT(userID, testSignKey, 0)
	require.NoError(t, err)
	foreign, err := auth.MakeJWT(userID, "another-key", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		want    uuid.UUID
		wantErr error
	}{
		{name: "valid", token: valid, want: userID},
		{name: "expired", token: expired, wantErr: auth.ErrTokenExpired},
		{name: "signed with another key", token: foreign, wantErr: auth.ErrInvalidToken},
		{name: "garbage", token: "not.a.jwt", wantErr: auth.ErrInvalidToken},
		{name: "empty", token: "", wantErr: auth.ErrInvalidToken},
	}

	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Authenticate(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── AuthorizeWebhook ─────────────────────────────────────────────────────────

func TestAuthService_AuthorizeWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	assert.NoError(t, svc.AuthorizeWebhook(context.Background(), testPolkaKey))
	assert.ErrorIs(t, svc.AuthorizeWebhook(context.Background(), "wrong"), ErrInvalidAPIKey)
	assert.ErrorIs(t, svc.AuthorizeWebhook(context.Background(), ""), ErrInvalidAPIKey)

	svc.polkaKey = ""
	assert.ErrorIs(t, svc.AuthorizeWebhook(context.Background(), ""), ErrInvalidAPIKey)
}
