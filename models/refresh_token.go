package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a persisted opaque credential that can be exchanged for new
// access tokens until it expires or is revoked.
type RefreshToken struct {
	// Token is the 64-character lowercase hex credential. Primary key.
	Token string `json:"-"`

	// UserID is the owner of the token.
	UserID uuid.UUID `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ExpiresAt is the instant from which the token can no longer be redeemed.
	ExpiresAt time.Time `json:"expires_at"`

	// RevokedAt is set when the token has been revoked; nil means active.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the RefreshToken model.
func (t RefreshToken) TableName() string {
	return "refresh_tokens"
}

// IsActive reports whether the token can be redeemed at now: it has not been
// revoked and now is strictly before its expiry.
func (t RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
