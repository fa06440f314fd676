package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a chirpy account.
// HashedPassword is an argon2id PHC digest and never leaves the server.
type User struct {
	// ID is the unique identifier of the user. It is the subject of every
	// access token and the owner key of chirps and refresh tokens.
	ID uuid.UUID `json:"id"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last change to the account.
	UpdatedAt time.Time `json:"updated_at"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// HashedPassword stores the user's password digest.
	// It is excluded from JSON serialization.
	HashedPassword string `json:"-"`

	// IsChirpyRed reports whether the user has the paid membership.
	IsChirpyRed bool `json:"is_chirpy_red"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body of registration, login and credential
// update calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
