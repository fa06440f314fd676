package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-chirpy/internal/utils"
	"github.com/google/uuid"
)

// decodeJSON reads the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// userIDFromRequest returns the user stored by the auth middleware.
func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, ErrNoUserInContext
	}
	return userID, nil
}
