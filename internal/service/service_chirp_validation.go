package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
)

// MaxChirpLength is the maximum number of characters in a chirp body.
const MaxChirpLength = 140

const profanityMask = "****"

var profaneWords = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

// ChirpValidationService checks and cleans chirp bodies before they reach
// the wrapped ChirpService.
type ChirpValidationService struct {
	inner ChirpService
}

func NewChirpValidationService() ChirpServiceWrapper {
	return &ChirpValidationService{}
}

func (v *ChirpValidationService) CreateChirp(ctx context.Context, userID uuid.UUID, body string) (models.Chirp, error) {
	if userID == uuid.Nil || strings.TrimSpace(body) == "" {
		return models.Chirp{}, ErrInvalidDataProvided
	}
	if utf8.RuneCountInString(body) > MaxChirpLength {
		return models.Chirp{}, ErrChirpTooLong
	}

	return v.inner.CreateChirp(ctx, userID, cleanBody(body))
}

func (v *ChirpValidationService) GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error) {
	return v.inner.GetChirp(ctx, chirpID)
}

func (v *ChirpValidationService) ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error) {
	if filter.Sort == "" {
		filter.Sort = models.SortAsc
	}
	if filter.Sort != models.SortAsc && filter.Sort != models.SortDesc {
		return nil, ErrInvalidDataProvided
	}

	return v.inner.ListChirps(ctx, filter)
}

func (v *ChirpValidationService) DeleteChirp(ctx context.Context, userID, chirpID uuid.UUID) error {
	return v.inner.DeleteChirp(ctx, userID, chirpID)
}

func (v *ChirpValidationService) Wrap(wrapped ChirpService) ChirpService {
	v.inner = wrapped
	return v
}

// cleanBody masks profane words. Only whole space-separated words are
// matched, case-insensitively; a word with punctuation attached is kept.
func cleanBody(body string) string {
	words := strings.Split(body, " ")
	for i, word := range words {
		if _, ok := profaneWords[strings.ToLower(word)]; ok {
			words[i] = profanityMask
		}
	}

	return strings.Join(words, " ")
}
