package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation, lookup and updates against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.HashedPassword, &user.IsChirpyRed); err != nil {
		return models.User{}, err
	}

	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}

// CreateUser persists a new user record. ID and timestamps are set by the
// caller; the stored representation is returned.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.createUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.CreatedAt = dbTime(user.CreatedAt)
	user.UpdatedAt = dbTime(user.UpdatedAt)
	return user, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
// Returns [ErrUserNotFound] when there is no such user.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.db.queries.findUserByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the user with the given ID.
// Returns [ErrUserNotFound] when there is no such user.
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	query, args, err := r.db.queries.findUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUserCredentials replaces email and password hash of user.ID and
// returns the updated record.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - no matching row → [ErrUserNotFound].
func (r *userRepository) UpdateUserCredentials(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.updateUserCredentials(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserCredentials").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateUserCredentials").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.FindUserByID(ctx, user.ID)
}

// UpgradeToChirpyRed marks the user as a Chirpy Red member.
// Returns [ErrUserNotFound] when there is no such user.
func (r *userRepository) UpgradeToChirpyRed(ctx context.Context, userID uuid.UUID, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.upgradeToChirpyRed(userID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpgradeToChirpyRed").Msg("error upgrading user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteAllUsers removes every user. Chirps and refresh tokens go with them
// through ON DELETE CASCADE.
func (r *userRepository) DeleteAllUsers(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.deleteAllUsers()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteAllUsers").Msg("error deleting users")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	log.Info().Str("func", "*userRepository.DeleteAllUsers").Int64("deleted", affected).Msg("all users deleted")

	return nil
}

func (r *userRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	return execAffected(ctx, r.db, query, args)
}
