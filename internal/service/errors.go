package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrInvalidOrExpiredRefreshToken = errors.New("invalid or expired refresh token")
	ErrInvalidAPIKey                = errors.New("invalid api key")

	ErrForbidden = errors.New("forbidden")

	ErrChirpTooLong = errors.New("chirp is too long")

	// ErrUnknownWebhookEvent is returned for webhook events chirpy does not
	// act upon. Such events are acknowledged without side effects.
	ErrUnknownWebhookEvent = errors.New("unknown webhook event")

	ErrResetNotAllowed = errors.New("reset is only allowed in dev environment")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
