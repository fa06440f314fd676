package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/service"
	"github.com/MKhiriev/go-chirpy/internal/store"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChirpRouter(t *testing.T, chirpSvc *mockChirpService) http.Handler {
	t.Helper()
	svcs := newTestServices()
	svcs.ChirpService = chirpSvc
	return newTestRouter(t, svcs)
}

func testChirp(id uuid.UUID, body string, createdAt time.Time) models.Chirp {
	return models.Chirp{ID: id, CreatedAt: createdAt, UpdatedAt: createdAt, Body: body, UserID: testUserID}
}

// ─────────────────────────────────────────────
// createChirp
// ─────────────────────────────────────────────

func TestCreateChirp(t *testing.T) {
	tests := []struct {
		name       string
		header     []string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "created",
			header:     bearer(testAccessToken),
			body:       `{"body":"I had something interesting for breakfast"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "too long",
			header:     bearer(testAccessToken),
			body:       `{"body":"long"}`,
			serviceErr: service.ErrChirpTooLong,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "author no longer exists",
			header:     bearer(testAccessToken),
			body:       `{"body":"hi"}`,
			serviceErr: store.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "no access token",
			body:       `{"body":"hi"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			header:     bearer(testAccessToken),
			body:       `"body"`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chirpSvc := &mockChirpService{
				createChirpFn: func(_ context.Context, userID uuid.UUID, body string) (models.Chirp, error) {
					assert.Equal(t, testUserID, userID)
					if tt.serviceErr != nil {
						return models.Chirp{}, tt.serviceErr
					}
					return testChirp(testChirpID, body, testTime), nil
				},
			}

			rec := serve(newChirpRouter(t, chirpSvc), http.MethodPost, "/api/chirps", tt.body, tt.header...)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				chirp := decodeResponse[models.Chirp](t, rec)
				assert.Equal(t, testChirpID, chirp.ID)
				assert.Equal(t, testUserID, chirp.UserID)
				assert.Equal(t, "I had something interesting for breakfast", chirp.Body)
				assert.True(t, testTime.Equal(chirp.CreatedAt))
			}
		})
	}
}

// ─────────────────────────────────────────────
// listChirps
// ─────────────────────────────────────────────

func TestListChirps_Filter(t *testing.T) {
	authorID := uuid.MustParse("0195f0a2-7c1e-7000-8000-0000000000a1")

	tests := []struct {
		name       string
		query      string
		wantFilter models.ChirpFilter
		wantStatus int
	}{
		{
			name:       "defaults",
			query:      "",
			wantFilter: models.ChirpFilter{Sort: models.SortAsc},
			wantStatus: http.StatusOK,
		},
		{
			name:       "descending",
			query:      "?sort=desc",
			wantFilter: models.ChirpFilter{Sort: models.SortDesc},
			wantStatus: http.StatusOK,
		},
		{
			name:       "by author ascending",
			query:      "?author_id=" + authorID.String() + "&sort=asc",
			wantFilter: models.ChirpFilter{AuthorID: &authorID, Sort: models.SortAsc},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad author id",
			query:      "?author_id=42",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad sort",
			query:      "?sort=random",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter models.ChirpFilter
			chirpSvc := &mockChirpService{
				listChirpsFn: func(_ context.Context, filter models.ChirpFilter) ([]models.Chirp, error) {
					gotFilter = filter
					return []models.Chirp{}, nil
				},
			}

			rec := serve(newChirpRouter(t, chirpSvc), http.MethodGet, "/api/chirps"+tt.query, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantFilter, gotFilter)
			}
		})
	}
}

func TestListChirps_Body(t *testing.T) {
	t.Run("chirps in service order", func(t *testing.T) {
		first := testChirp(uuid.MustParse("0195f0a2-7c1e-7000-8000-000000000101"), "first", testTime)
		second := testChirp(uuid.MustParse("0195f0a2-7c1e-7000-8000-000000000102"), "second", testTime.Add(time.Minute))
		chirpSvc := &mockChirpService{
			listChirpsFn: func(context.Context, models.ChirpFilter) ([]models.Chirp, error) {
				return []models.Chirp{first, second}, nil
			},
		}

		rec := serve(newChirpRouter(t, chirpSvc), http.MethodGet, "/api/chirps", "")

		require.Equal(t, http.StatusOK, rec.Code)
		chirps := decodeResponse[[]models.Chirp](t, rec)
		require.Len(t, chirps, 2)
		assert.Equal(t, "first", chirps[0].Body)
		assert.Equal(t, "second", chirps[1].Body)
	})

	t.Run("nil result is an empty array", func(t *testing.T) {
		chirpSvc := &mockChirpService{
			listChirpsFn: func(context.Context, models.ChirpFilter) ([]models.Chirp, error) {
				return nil, nil
			},
		}

		rec := serve(newChirpRouter(t, chirpSvc), http.MethodGet, "/api/chirps", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		chirpSvc := &mockChirpService{
			listChirpsFn: func(context.Context, models.ChirpFilter) ([]models.Chirp, error) {
				return nil, store.ErrScanningRows
			},
		}

		rec := serve(newChirpRouter(t, chirpSvc), http.MethodGet, "/api/chirps", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

// ─────────────────────────────────────────────
// getChirp
// ─────────────────────────────────────────────

func TestGetChirp(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "found", path: "/api/chirps/" + testChirpID.String(), wantStatus: http.StatusOK},
		{name: "not found", path: "/api/chirps/" + testChirpID.String(), serviceErr: store.ErrChirpNotFound, wantStatus: http.StatusNotFound},
		{name: "not a uuid", path: "/api/chirps/123", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chirpSvc := &mockChirpService{
				getChirpFn: func(_ context.Context, chirpID uuid.UUID) (models.Chirp, error) {
					assert.Equal(t, testChirpID, chirpID)
					if tt.serviceErr != nil {
						return models.Chirp{}, tt.serviceErr
					}
					return testChirp(chirpID, "hello", testTime), nil
				},
			}

			rec := serve(newChirpRouter(t, chirpSvc), http.MethodGet, tt.path, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testChirpID, decodeResponse[models.Chirp](t, rec).ID)
			}
		})
	}
}

// ─────────────────────────────────────────────
// deleteChirp
// ─────────────────────────────────────────────

func TestDeleteChirp(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     []string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "author deletes",
			path:       "/api/chirps/" + testChirpID.String(),
			header:     bearer(testAccessToken),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "someone else's chirp",
			path:       "/api/chirps/" + testChirpID.String(),
			header:     bearer(testAccessToken),
			serviceErr: service.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown chirp",
			path:       "/api/chirps/" + testChirpID.String(),
			header:     bearer(testAccessToken),
			serviceErr: store.ErrChirpNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			path:       "/api/chirps/not-a-uuid",
			header:     bearer(testAccessToken),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anonymous",
			path:       "/api/chirps/" + testChirpID.String(),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chirpSvc := &mockChirpService{
				deleteChirpFn: func(_ context.Context, userID, chirpID uuid.UUID) error {
					assert.Equal(t, testUserID, userID)
					assert.Equal(t, testChirpID, chirpID)
					return tt.serviceErr
				},
			}

			rec := serve(newChirpRouter(t, chirpSvc), http.MethodDelete, tt.path, "", tt.header...)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
