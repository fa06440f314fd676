package service

import (
	"context"

	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// webhookService reacts to payment provider events.
type webhookService struct {
	userService UserService

	logger *logger.Logger
}

func NewWebhookService(userService UserService, logger *logger.Logger) WebhookService {
	return &webhookService{
		userService: userService,
		logger:      logger,
	}
}

// HandlePolkaEvent upgrades the user named in a user.upgraded event. Other
// events return [ErrUnknownWebhookEvent] and change nothing.
func (s *webhookService) HandlePolkaEvent(ctx context.Context, event models.PolkaEvent) error {
	log := logger.FromContext(ctx)

	if event.Event != models.EventUserUpgraded {
		log.Debug().Str("func", "*webhookService.HandlePolkaEvent").Str("event", event.Event).Msg("ignoring event")
		return ErrUnknownWebhookEvent
	}

	if event.Data.UserID == uuid.Nil {
		return ErrInvalidDataProvided
	}

	return s.userService.UpgradeToChirpyRed(ctx, event.Data.UserID)
}
