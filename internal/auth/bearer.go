// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"net/http"
	"strings"
)

const (
	authorizationHeader = "Authorization"

	bearerPrefix = "Bearer "
	apiKeyPrefix = "ApiKey "
)

// GetBearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
//
// The header value is trimmed before inspection and the token is trimmed
// after the prefix is removed, so "  Bearer   abc  " yields "abc".
//
// It returns:
//   - [ErrMissingAuthorization] if the header is absent or blank;
//   - [ErrMalformedAuthorization] if the value does not start with "Bearer "
//     (case-sensitive) or carries no token after it, e.g. "Bearer".
func GetBearerToken(headers http.Header) (string, error) {
	return getAuthorizationCredential(headers, bearerPrefix)
}

// GetAPIKey extracts the key from an "Authorization: ApiKey <key>" header.
// It follows the same rules and returns the same errors as [GetBearerToken].
func GetAPIKey(headers http.Header) (string, error) {
	return getAuthorizationCredential(headers, apiKeyPrefix)
}

func getAuthorizationCredential(headers http.Header, prefix string) (string, error) {
	value := strings.TrimSpace(headers.Get(authorizationHeader))
	if value == "" {
		return "", ErrMissingAuthorization
	}

	if !strings.HasPrefix(value, prefix) {
		return "", ErrMalformedAuthorization
	}

	credential := strings.TrimSpace(strings.TrimPrefix(value, prefix))
	if credential == "" {
		return "", ErrMalformedAuthorization
	}

	return credential, nil
}
