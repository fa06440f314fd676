package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// chirpService stores chirps as given. Body rules live in
// [ChirpValidationService].
type chirpService struct {
	chirpRepository store.ChirpRepository
	ids             IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewChirpService(chirpRepository store.ChirpRepository, ids IDGenerator, logger *logger.Logger) ChirpService {
	return &chirpService{
		chirpRepository: chirpRepository,
		ids:             ids,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *chirpService) CreateChirp(ctx context.Context, userID uuid.UUID, body string) (models.Chirp, error) {
	now := s.now().UTC()

	chirp, err := s.chirpRepository.CreateChirp(ctx, models.Chirp{
		ID:        s.ids.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
		Body:      body,
		UserID:    userID,
	})
	if err != nil {
		return models.Chirp{}, fmt.Errorf("chirp creation ended with error: %w", err)
	}

	return chirp, nil
}

func (s *chirpService) GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error) {
	return s.chirpRepository.GetChirp(ctx, chirpID)
}

func (s *chirpService) ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error) {
	return s.chirpRepository.ListChirps(ctx, filter)
}

// DeleteChirp removes chirpID if userID is its author, and returns
// [ErrForbidden] otherwise.
func (s *chirpService) DeleteChirp(ctx context.Context, userID, chirpID uuid.UUID) error {
	log := logger.FromContext(ctx)

	chirp, err := s.chirpRepository.GetChirp(ctx, chirpID)
	if err != nil {
		return err
	}

	if chirp.UserID != userID {
		log.Warn().Str("func", "*chirpService.DeleteChirp").
			Str("user_id", userID.String()).
			Str("chirp_id", chirpID.String()).
			Msg("attempt to delete a chirp of another user")
		return ErrForbidden
	}

	return s.chirpRepository.DeleteChirp(ctx, chirpID)
}
