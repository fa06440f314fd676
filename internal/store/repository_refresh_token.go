package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/models"
)

// refreshTokenRepository is the SQL implementation of
// [RefreshTokenRepository] over the "refresh_tokens" table.
//
// Token values are secrets and are never logged.
type refreshTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

func scanRefreshToken(row rowScanner) (models.RefreshToken, error) {
	var (
		token     models.RefreshToken
		revokedAt sql.NullTime
	)
	if err := row.Scan(&token.Token, &token.CreatedAt, &token.UpdatedAt, &token.UserID, &token.ExpiresAt, &revokedAt); err != nil {
		return models.RefreshToken{}, err
	}

	token.CreatedAt = token.CreatedAt.UTC()
	token.UpdatedAt = token.UpdatedAt.UTC()
	token.ExpiresAt = token.ExpiresAt.UTC()
	if revokedAt.Valid {
		t := revokedAt.Time.UTC()
		token.RevokedAt = &t
	}

	return token, nil
}

// CreateRefreshToken inserts a new, unrevoked record.
// Returns [ErrUserNotFound] if the owner does not exist.
func (r *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token models.RefreshToken) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.createRefreshToken(token)
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.CreateRefreshToken").Msg("failed to build query")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffected(ctx, r.db, query, args); err != nil {
		if r.db.errorClassificator.IsForeignKeyViolation(err) {
			return models.RefreshToken{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*refreshTokenRepository.CreateRefreshToken").
			Str("user_id", token.UserID.String()).
			Msg("error inserting refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	token.CreatedAt = dbTime(token.CreatedAt)
	token.UpdatedAt = dbTime(token.UpdatedAt)
	token.ExpiresAt = dbTime(token.ExpiresAt)
	token.RevokedAt = nil
	return token, nil
}

// FindActiveRefreshToken returns the record for token only if revoked_at is
// NULL and expires_at is after now. A missing, revoked or expired record
// yields [ErrRefreshTokenNotFound].
func (r *refreshTokenRepository) FindActiveRefreshToken(ctx context.Context, token string, now time.Time) (models.RefreshToken, error) {
	query, args, err := r.db.queries.findActiveRefreshToken(token, now)
	if err != nil {
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*refreshTokenRepository.FindActiveRefreshToken", query, args)
}

// SetRefreshTokenRevoked stamps revoked_at and updated_at with when whether
// or not the record is already revoked or expired, then returns the record.
// Returns [ErrRefreshTokenNotFound] if no record has the token.
func (r *refreshTokenRepository) SetRefreshTokenRevoked(ctx context.Context, token string, when time.Time) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.setRefreshTokenRevoked(token, when)
	if err != nil {
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.SetRefreshTokenRevoked").Msg("error revoking refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}

	query, args, err = r.db.queries.findRefreshToken(token)
	if err != nil {
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*refreshTokenRepository.SetRefreshTokenRevoked", query, args)
}

func (r *refreshTokenRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	var record models.RefreshToken
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		record, scanErr = scanRefreshToken(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RefreshToken{}, ErrRefreshTokenNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}
