package http

import (
	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newHTTPMetrics(),
		logger:   logger,
	}
}
