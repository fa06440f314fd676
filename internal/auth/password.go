// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters recommended by OWASP for credential storage.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16

	// upper bounds accepted when verifying foreign digests
	maxArgonMemory uint32 = 1024 * 1024
	maxArgonTime   uint32 = 16
)

// HashPassword derives an argon2id digest from password using a fresh random
// salt and returns it in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// Salt and hash are encoded with unpadded standard base64. Hashing the same
// password twice yields two different digests.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// CheckPasswordHash reports whether password matches the PHC-formatted
// argon2id digest hash.
//
// Structurally invalid digests, digests produced by other algorithms and
// plain mismatches all return false. The parameters encoded in the digest are
// used for recomputation, so digests created with different costs keep
// verifying.
func CheckPasswordHash(password, hash string) bool {
	params, salt, key, ok := decodeHash(hash)
	if !ok {
		return false
	}

	otherKey := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, otherKey) == 1
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodeHash splits "$argon2id$v=19$m=..,t=..,p=..$salt$hash" into its parts.
func decodeHash(hash string) (argonParams, []byte, []byte, bool) {
	var params argonParams

	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, false
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 ||
		params.memory > maxArgonMemory || params.time > maxArgonTime {
		return params, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, false
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, false
	}

	return params, salt, key, true
}
