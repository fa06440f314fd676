// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the chirpy REST API.
//
// [ChirpyClient] mirrors the server endpoints and keeps the access and
// refresh tokens obtained by Login, attaching them to the calls that need
// them. Non-2xx responses are mapped to the sentinel errors in errors.go, so
// callers can branch with [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// ChirpyClient is a client of the chirpy API. Implementations are safe for
// concurrent use.
type ChirpyClient interface {
	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates and stores the returned access and refresh tokens.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// Refresh exchanges the stored refresh token for a new access token,
	// which replaces the stored one.
	Refresh(ctx context.Context) (string, error)

	// Revoke revokes the stored refresh token and forgets both tokens.
	Revoke(ctx context.Context) error

	UpdateCredentials(ctx context.Context, credentials models.Credentials) (models.User, error)

	CreateChirp(ctx context.Context, body string) (models.Chirp, error)
	ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error)
	GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error)
	DeleteChirp(ctx context.Context, chirpID uuid.UUID) error

	// SetTokens replaces the stored tokens, e.g. with ones persisted from an
	// earlier session.
	SetTokens(accessToken, refreshToken string)
	Tokens() (accessToken, refreshToken string)

	// UserID reads the subject of the stored access token without verifying
	// its signature.
	UserID() (uuid.UUID, error)
}
