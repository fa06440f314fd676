package service

import (
	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/internal/utils"
	"github.com/MKhiriev/go-chirpy/models"
)

type Services struct {
	AuthService         AuthService
	RefreshTokenService RefreshTokenService
	UserService         UserService
	ChirpService        ChirpService
	WebhookService      WebhookService
	AdminService        AdminService
	AppInfoService      AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	refreshTokenService := NewRefreshTokenService(repositories.RefreshTokenRepository, cfg.App.RefreshTokenDuration, logger)
	userService := NewUserService(repositories.UserRepository, ids, logger)
	chirpService := NewChirpValidationService().Wrap(NewChirpService(repositories.ChirpRepository, ids, logger))

	return &Services{
		AuthService:         NewAuthService(repositories.UserRepository, refreshTokenService, cfg.App, logger),
		RefreshTokenService: refreshTokenService,
		UserService:         userService,
		ChirpService:        chirpService,
		WebhookService:      NewWebhookService(userService, logger),
		AdminService:        NewAdminService(repositories.UserRepository, cfg.App, logger),
		AppInfoService:      appInfoService,
	}, nil
}
