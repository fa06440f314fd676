package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/store"
)

type adminService struct {
	userRepository store.UserRepository
	platform       string

	fileserverHits atomic.Int64

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		platform:       cfg.Platform,
		logger:         logger,
	}
}

func (s *adminService) RecordHit() {
	s.fileserverHits.Add(1)
}

func (s *adminService) Hits() int64 {
	return s.fileserverHits.Load()
}

// Reset zeroes the hit counter and deletes every user. It is refused with
// [ErrResetNotAllowed] unless the platform is dev.
func (s *adminService) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if s.platform != config.PlatformDev {
		log.Warn().Str("func", "*adminService.Reset").Str("platform", s.platform).Msg("reset refused")
		return ErrResetNotAllowed
	}

	if err := s.userRepository.DeleteAllUsers(ctx); err != nil {
		return fmt.Errorf("reset ended with error: %w", err)
	}
	s.fileserverHits.Store(0)

	log.Info().Str("func", "*adminService.Reset").Msg("state reset")
	return nil
}
