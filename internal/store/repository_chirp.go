package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// chirpRepository is the SQL implementation of [ChirpRepository].
type chirpRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewChirpRepository(db *DB, logger *logger.Logger) ChirpRepository {
	logger.Debug().Msg("creating chirp repository")
	return &chirpRepository{
		db:     db,
		logger: logger,
	}
}

func scanChirp(row rowScanner) (models.Chirp, error) {
	var chirp models.Chirp
	if err := row.Scan(&chirp.ID, &chirp.CreatedAt, &chirp.UpdatedAt, &chirp.Body, &chirp.UserID); err != nil {
		return models.Chirp{}, err
	}

	chirp.CreatedAt = chirp.CreatedAt.UTC()
	chirp.UpdatedAt = chirp.UpdatedAt.UTC()
	return chirp, nil
}

// CreateChirp persists a chirp. Returns [ErrUserNotFound] if the author does
// not exist.
func (r *chirpRepository) CreateChirp(ctx context.Context, chirp models.Chirp) (models.Chirp, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.createChirp(chirp)
	if err != nil {
		log.Err(err).Str("func", "*chirpRepository.CreateChirp").Msg("failed to build query")
		return models.Chirp{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = execAffected(ctx, r.db, query, args); err != nil {
		if r.db.errorClassificator.IsForeignKeyViolation(err) {
			return models.Chirp{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*chirpRepository.CreateChirp").Msg("error inserting chirp")
		return models.Chirp{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	chirp.CreatedAt = dbTime(chirp.CreatedAt)
	chirp.UpdatedAt = dbTime(chirp.UpdatedAt)
	return chirp, nil
}

// GetChirp returns [ErrChirpNotFound] when no chirp has the ID.
func (r *chirpRepository) GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.getChirp(chirpID)
	if err != nil {
		return models.Chirp{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var chirp models.Chirp
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		chirp, scanErr = scanChirp(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Chirp{}, ErrChirpNotFound
		}
		log.Err(err).Str("func", "*chirpRepository.GetChirp").Str("chirp_id", chirpID.String()).Msg("error selecting chirp")
		return models.Chirp{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return chirp, nil
}

// ListChirps returns the chirps matching filter ordered by creation time.
// An empty result is an empty, non-nil slice.
func (r *chirpRepository) ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.listChirps(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var chirps []models.Chirp
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		chirps = make([]models.Chirp, 0, 16)
		for rows.Next() {
			chirp, scanErr := scanChirp(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			chirps = append(chirps, chirp)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*chirpRepository.ListChirps").Msg("error listing chirps")
		return nil, err
	}

	return chirps, nil
}

// DeleteChirp returns [ErrChirpNotFound] when no chirp has the ID.
func (r *chirpRepository) DeleteChirp(ctx context.Context, chirpID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.deleteChirp(chirpID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execAffected(ctx, r.db, query, args)
	if err != nil {
		log.Err(err).Str("func", "*chirpRepository.DeleteChirp").Str("chirp_id", chirpID.String()).Msg("error deleting chirp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrChirpNotFound
	}

	return nil
}
