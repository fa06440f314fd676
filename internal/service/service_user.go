package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

type userService struct {
	userRepository store.UserRepository
	ids            IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateUser registers a new account. The password is stored as an argon2id
// hash; a taken email yields [store.ErrEmailAlreadyExists].
func (s *userService) CreateUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := s.now().UTC()
	user, err := s.userRepository.CreateUser(ctx, models.User{
		ID:             s.ids.Generate(),
		CreatedAt:      now,
		UpdatedAt:      now,
		Email:          credentials.Email,
		HashedPassword: hash,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*userService.CreateUser").Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

// UpdateCredentials replaces email and password of userID.
func (s *userService) UpdateCredentials(ctx context.Context, userID uuid.UUID, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil || credentials.Email == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateCredentials").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.UpdateUserCredentials(ctx, models.User{
		ID:             userID,
		UpdatedAt:      s.now().UTC(),
		Email:          credentials.Email,
		HashedPassword: hash,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("credentials update ended with error: %w", err)
	}

	return user, nil
}

func (s *userService) UpgradeToChirpyRed(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.UpgradeToChirpyRed(ctx, userID, s.now().UTC()); err != nil {
		return fmt.Errorf("upgrade ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.UpgradeToChirpyRed").Str("user_id", userID.String()).Msg("user upgraded to chirpy red")
	return nil
}
