package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a fully populated user.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no user has the ID.
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	// UpdateUserCredentials stores user.Email, user.HashedPassword and
	// user.UpdatedAt for user.ID and returns the updated record.
	UpdateUserCredentials(ctx context.Context, user models.User) (models.User, error)
	// UpgradeToChirpyRed sets the membership flag of the user.
	UpgradeToChirpyRed(ctx context.Context, userID uuid.UUID, now time.Time) error
	// DeleteAllUsers removes every user together with their chirps and
	// refresh tokens.
	DeleteAllUsers(ctx context.Context) error
}

// ChirpRepository persists chirps.
type ChirpRepository interface {
	CreateChirp(ctx context.Context, chirp models.Chirp) (models.Chirp, error)
	GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error)
	ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error)
	DeleteChirp(ctx context.Context, chirpID uuid.UUID) error
}

// RefreshTokenRepository persists refresh token records. Records are never
// deleted by the repository; they disappear only with their owner.
type RefreshTokenRepository interface {
	// CreateRefreshToken inserts a new active record.
	CreateRefreshToken(ctx context.Context, token models.RefreshToken) (models.RefreshToken, error)
	// FindActiveRefreshToken returns the record for token if it is not
	// revoked and expires after now, ErrRefreshTokenNotFound otherwise.
	FindActiveRefreshToken(ctx context.Context, token string, now time.Time) (models.RefreshToken, error)
	// SetRefreshTokenRevoked sets the revocation time of token to when,
	// overwriting an earlier revocation, and returns the updated record.
	// Returns ErrRefreshTokenNotFound if no record exists.
	SetRefreshTokenRevoked(ctx context.Context, token string, when time.Time) (models.RefreshToken, error)
}

// ErrorClassificator interprets driver specific errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}
