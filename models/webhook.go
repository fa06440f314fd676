package models

import "github.com/google/uuid"

// EventUserUpgraded is the payment provider event that grants Chirpy Red.
const EventUserUpgraded = "user.upgraded"

// PolkaEvent is the body of a payment provider webhook call.
type PolkaEvent struct {
	Event string         `json:"event"`
	Data  PolkaEventData `json:"data"`
}

type PolkaEventData struct {
	UserID uuid.UUID `json:"user_id"`
}
