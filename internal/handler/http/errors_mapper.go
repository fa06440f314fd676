package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/auth"
	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/service"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/internal/utils"
)

var errorStatusMap = map[error]int{
	auth.ErrMissingAuthorization:   http.StatusUnauthorized,
	auth.ErrMalformedAuthorization: http.StatusUnauthorized,
	auth.ErrInvalidToken:           http.StatusUnauthorized,
	auth.ErrTokenExpired:           http.StatusUnauthorized,

	service.ErrInvalidDataProvided:          http.StatusBadRequest,
	service.ErrChirpTooLong:                 http.StatusBadRequest,
	service.ErrInvalidCredentials:           http.StatusUnauthorized,
	service.ErrInvalidOrExpiredRefreshToken: http.StatusUnauthorized,
	service.ErrInvalidAPIKey:                http.StatusUnauthorized,
	service.ErrForbidden:                    http.StatusForbidden,
	service.ErrResetNotAllowed:              http.StatusForbidden,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrUserNotFound:         http.StatusNotFound,
	store.ErrChirpNotFound:        http.StatusNotFound,
	store.ErrRefreshTokenNotFound: http.StatusNotFound,

	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidChirpID:   http.StatusBadRequest,
	ErrInvalidAuthorID:  http.StatusBadRequest,
	ErrInvalidSortOrder: http.StatusBadRequest,
	ErrNoUserInContext:  http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// classifyError returns the HTTP status for err and the message that is safe
// to show to the client. Unknown errors become 500 with a generic message.
func classifyError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if status != http.StatusInternalServerError && errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// writeError logs err with the request-scoped logger and writes the JSON
// error body for it.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status, message := classifyError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	utils.WriteError(w, message, status)
}
