package models

import (
	"time"

	"github.com/google/uuid"
)

// Chirp is a short text post.
type Chirp struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Body      string    `json:"body"`
	// UserID is the author of the chirp.
	UserID uuid.UUID `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Chirp model.
func (c Chirp) TableName() string {
	return "chirps"
}

// ChirpRequest is the request body of chirp creation.
type ChirpRequest struct {
	Body string `json:"body"`
}

// SortOrder is the order of chirps by creation time.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder converts a query value into a SortOrder. An empty value
// means ascending. The second result is false for unknown values.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case "", SortAsc:
		return SortAsc, true
	case SortDesc:
		return SortDesc, true
	default:
		return "", false
	}
}

// ChirpFilter narrows a chirp listing.
type ChirpFilter struct {
	// AuthorID restricts the result to chirps of one user when not nil.
	AuthorID *uuid.UUID
	// Sort orders the result by created_at. The zero value sorts ascending.
	Sort SortOrder
}
