// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer is the "iss" claim carried by every access token issued by
// chirpy. Tokens with any other issuer are rejected.
const TokenIssuer = "chirpy"

// MakeJWT creates an HS256-signed access token asserting userID.
//
// The token carries the following registered claims:
//   - Issuer    (iss): [TokenIssuer]
//   - Subject   (sub): userID in canonical UUID form
//   - IssuedAt  (iat): current Unix time in whole seconds
//   - ExpiresAt (exp): iat + expiresIn, with expiresIn truncated to whole seconds
//
// A zero expiresIn produces a token that is already expired. Negative
// durations and empty secrets are rejected.
//
// Example usage:
//
//	token, err := auth.MakeJWT(user.ID, cfg.TokenSignKey, time.Hour)
func MakeJWT(userID uuid.UUID, tokenSecret string, expiresIn time.Duration) (string, error) {
	return makeJWT(userID, tokenSecret, expiresIn, time.Now())
}

func makeJWT(userID uuid.UUID, tokenSecret string, expiresIn time.Duration, now time.Time) (string, error) {
	if tokenSecret == "" || expiresIn < 0 {
		return "", errors.New("invalid params for generating JWT token")
	}

	issuedAt := time.Unix(now.Unix(), 0)
	claims := &jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(expiresIn.Truncate(time.Second))),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(tokenSecret))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateJWT verifies tokenString against tokenSecret and returns the user
// ID stored in its subject claim.
//
// Validation includes:
//   - structure and base64url decoding of all three segments;
//   - signing method, only HS256 is accepted;
//   - signature verification with tokenSecret;
//   - issuer check against [TokenIssuer];
//   - expiry check, the token is valid while the current Unix second is
//     strictly before exp;
//   - presence of a UUID subject.
//
// Returns [ErrTokenExpired] for correctly signed tokens past their expiry and
// [ErrInvalidToken] for every other failure. The underlying jwt error is
// wrapped for logging.
func ValidateJWT(tokenString, tokenSecret string) (uuid.UUID, error) {
	return validateJWT(tokenString, tokenSecret, time.Now)
}

func validateJWT(tokenString, tokenSecret string, now func() time.Time) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return []byte(tokenSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time {
			return time.Unix(now().Unix(), 0)
		}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return uuid.Nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user ID: %w", ErrInvalidToken, err)
	}

	return userID, nil
}
