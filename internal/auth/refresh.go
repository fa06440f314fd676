// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// refreshTokenSize is the amount of random data in a refresh token (256 bits).
const refreshTokenSize = 32

// MakeRefreshToken returns a new opaque refresh token: 32 bytes from the
// operating system CSPRNG encoded as 64 lowercase hex characters.
func MakeRefreshToken() (string, error) {
	b := make([]byte, refreshTokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating refresh token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
