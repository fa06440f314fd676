// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer.
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidChirpID is returned when the {chirpID} path parameter is not
	// a UUID.
	ErrInvalidChirpID = errors.New("invalid chirp id")

	// ErrInvalidAuthorID is returned when the author_id query parameter is
	// not a UUID.
	ErrInvalidAuthorID = errors.New("invalid author_id")

	// ErrInvalidSortOrder is returned when the sort query parameter is
	// neither "asc" nor "desc".
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware having stored a user id.
	ErrNoUserInContext = errors.New("no authenticated user in context")
)
