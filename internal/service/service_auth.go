package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
// Access tokens are stateless JWTs; refresh tokens are delegated to a
// RefreshTokenService.
type authService struct {
	// userRepository is used to look up the account on login.
	userRepository store.UserRepository

	refreshTokenService RefreshTokenService

	// tokenSignKey is the HMAC secret used to sign and verify access tokens.
	tokenSignKey string

	// accessTokenDuration controls how long a newly issued access token
	// remains valid.
	accessTokenDuration time.Duration

	// polkaKey is the API key expected on payment webhooks.
	polkaKey string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. All security parameters are
// copied from cfg; the returned service holds no mutable state.
func NewAuthService(userRepository store.UserRepository, refreshTokenService RefreshTokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:      userRepository,
		refreshTokenService: refreshTokenService,
		tokenSignKey:        cfg.TokenSignKey,
		accessTokenDuration: cfg.AccessTokenDuration,
		polkaKey:            cfg.PolkaKey,
		logger:              logger,
	}
}

// Login authenticates an existing user and opens a session.
//
// Returns the user together with a new access token and a new refresh
// token, or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if there is no such user or the password does
//     not match the stored hash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Debug().Str("func", "*authService.Login").Msg("empty email or password")
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !auth.CheckPasswordHash(credentials.Password, user.HashedPassword) {
		log.Info().Str("func", "*authService.Login").Str("user_id", user.ID.String()).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	accessToken, err := auth.MakeJWT(user.ID, a.tokenSignKey, a.accessTokenDuration)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("access token creation failed")
		return models.LoginResponse{}, fmt.Errorf("access token creation failed: %w", err)
	}

	refreshToken, err := a.refreshTokenService.Issue(ctx, user.ID)
	if err != nil {
		return models.LoginResponse{}, err
	}

	log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID.String()).Msg("user logged in")

	return models.LoginResponse{
		User:         user,
		Token:        accessToken,
		RefreshToken: refreshToken.Token,
	}, nil
}

// Refresh exchanges an active refresh token for a new access token. The
// refresh token itself stays valid.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := a.refreshTokenService.Redeem(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	accessToken, err := auth.MakeJWT(userID, a.tokenSignKey, a.accessTokenDuration)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Refresh").Msg("access token creation failed")
		return "", fmt.Errorf("access token creation failed: %w", err)
	}

	return accessToken, nil
}

func (a *authService) Revoke(ctx context.Context, refreshToken string) error {
	_, err := a.refreshTokenService.Revoke(ctx, refreshToken)
	return err
}

// Authenticate validates an access token and returns the user it was
// issued to. Errors are [auth.ErrInvalidToken] or [auth.ErrTokenExpired].
func (a *authService) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	userID, err := auth.ValidateJWT(accessToken, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.Authenticate").Msg("access token rejected")
		return uuid.Nil, err
	}

	return userID, nil
}

// AuthorizeWebhook compares apiKey with the configured partner key in
// constant time.
func (a *authService) AuthorizeWebhook(ctx context.Context, apiKey string) error {
	if a.polkaKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(a.polkaKey)) != 1 {
		return ErrInvalidAPIKey
	}

	return nil
}
