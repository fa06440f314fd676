package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for new rows.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a version 7 UUID, falling back to a random version 4 UUID
// if the clock sequence cannot be read.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
