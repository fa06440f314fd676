package handler

import (
	"github.com/MKhiriev/go-chirpy/internal/config"
	"github.com/MKhiriev/go-chirpy/internal/handler/http"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
