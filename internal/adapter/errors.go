package adapter

import "errors"

// Errors mapped from HTTP status codes returned by the chirpy API.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrNotLoggedIn is returned by calls that need a token the client does
	// not hold yet.
	ErrNotLoggedIn = errors.New("client is not logged in")

	ErrInvalidBaseURL = errors.New("invalid base url")
)
