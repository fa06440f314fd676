// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the authentication primitives of the chirpy API.
//
// It contains four independent building blocks:
//   - password hashing and verification with argon2id ([HashPassword], [CheckPasswordHash]);
//   - signed, time-bound access tokens (JWT, HS256) ([MakeJWT], [ValidateJWT]);
//   - extraction of credentials from the "Authorization" header
//     ([GetBearerToken], [GetAPIKey]);
//   - generation of opaque refresh tokens ([MakeRefreshToken]).
//
// None of these functions keep state between calls; secrets and lifetimes are
// passed in explicitly by the caller, so every function is safe for
// concurrent use.
package auth
