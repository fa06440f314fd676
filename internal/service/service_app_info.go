package service

import (
	"context"

	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/models"
)

// appInfoService reports the version of the running server.
type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService takes the version from cfg and falls back to the build
// version baked in by the linker. It fails when neither is set.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" && build.BuildVersion() != "N/A" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.VersionResponse{
			Version:     version,
			BuildDate:   build.BuildDate(),
			BuildCommit: build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return s.info
}
