package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// refreshTokenService issues, redeems and revokes persisted refresh tokens.
//
// Redemption does not rotate the token: the same value can be redeemed until
// it expires or is revoked. Revoking an already revoked token moves its
// revocation time forward instead of failing.
type refreshTokenService struct {
	refreshTokenRepository store.RefreshTokenRepository

	// lifetime is added to the issue time to get the expiry of a new token.
	lifetime time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewRefreshTokenService(refreshTokenRepository store.RefreshTokenRepository, lifetime time.Duration, logger *logger.Logger) RefreshTokenService {
	return &refreshTokenService{
		refreshTokenRepository: refreshTokenRepository,
		lifetime:               lifetime,
		now:                    time.Now,
		logger:                 logger,
	}
}

// Issue generates a fresh token for userID and persists it. Every call
// creates a new record.
func (s *refreshTokenService) Issue(ctx context.Context, userID uuid.UUID) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	token, err := auth.MakeRefreshToken()
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenService.Issue").Msg("error generating refresh token")
		return models.RefreshToken{}, fmt.Errorf("error generating refresh token: %w", err)
	}

	now := s.now().UTC()
	record, err := s.refreshTokenRepository.CreateRefreshToken(ctx, models.RefreshToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.lifetime),
	})
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenService.Issue").Str("user_id", userID.String()).Msg("error saving refresh token")
		return models.RefreshToken{}, fmt.Errorf("error saving refresh token: %w", err)
	}

	return record, nil
}

// Redeem returns the owner of token if it is neither revoked nor expired.
// Any other outcome is [ErrInvalidOrExpiredRefreshToken].
func (s *refreshTokenService) Redeem(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrInvalidOrExpiredRefreshToken
	}

	record, err := s.refreshTokenRepository.FindActiveRefreshToken(ctx, token, s.now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return uuid.Nil, ErrInvalidOrExpiredRefreshToken
		}
		logger.FromContext(ctx).Err(err).Str("func", "*refreshTokenService.Redeem").Msg("error looking up refresh token")
		return uuid.Nil, fmt.Errorf("error looking up refresh token: %w", err)
	}

	return record.UserID, nil
}

// Revoke sets the revocation time of token to now, whatever its current
// state. Unknown tokens yield [store.ErrRefreshTokenNotFound].
func (s *refreshTokenService) Revoke(ctx context.Context, token string) (models.RefreshToken, error) {
	if token == "" {
		return models.RefreshToken{}, store.ErrRefreshTokenNotFound
	}

	record, err := s.refreshTokenRepository.SetRefreshTokenRevoked(ctx, token, s.now().UTC())
	if err != nil {
		if !errors.Is(err, store.ErrRefreshTokenNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*refreshTokenService.Revoke").Msg("error revoking refresh token")
		}
		return models.RefreshToken{}, fmt.Errorf("error revoking refresh token: %w", err)
	}

	return record, nil
}
