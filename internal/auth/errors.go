// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

// Sentinel errors returned by the authentication primitives. Callers match
// them with [errors.Is]; the HTTP layer maps all of them to 401.
var (
	// ErrMissingAuthorization is returned when the "Authorization" header is
	// absent or contains only whitespace.
	ErrMissingAuthorization = errors.New("missing `Authorization` header")

	// ErrMalformedAuthorization is returned when the "Authorization" header
	// does not start with the expected scheme prefix.
	ErrMalformedAuthorization = errors.New("malformed `Authorization` header")

	// ErrInvalidToken is returned for access tokens with a bad format, a bad
	// signature, an unexpected signing method, a foreign issuer or a missing subject.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for correctly signed access tokens whose
	// expiry time has been reached.
	ErrTokenExpired = errors.New("token is expired")
)
