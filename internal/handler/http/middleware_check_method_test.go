// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux for tests without Handler.Init().
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}

	router.Get("/api/chirps", ok(http.StatusOK))
	router.Post("/api/chirps", ok(http.StatusCreated))
	router.Get("/api/chirps/{chirpID}", ok(http.StatusOK))
	router.Delete("/api/chirps/{chirpID}", ok(http.StatusNoContent))
	router.Post("/api/login", ok(http.StatusOK))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET", method: http.MethodGet, path: "/api/chirps", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, path: "/api/chirps", wantStatus: http.StatusCreated},
		{name: "registered DELETE with param", method: http.MethodDelete, path: "/api/chirps/abc", wantStatus: http.StatusNoContent},
		{name: "PUT on collection", method: http.MethodPut, path: "/api/chirps", wantStatus: http.StatusNotFound},
		{name: "PATCH with param", method: http.MethodPatch, path: "/api/chirps/abc", wantStatus: http.StatusNotFound},
		{name: "GET on POST-only route", method: http.MethodGet, path: "/api/login", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_JSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	buildRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/login", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestCheckHTTPMethod_DirectCallWithMatchingMethod(t *testing.T) {
	router := buildRouter()
	rec := httptest.NewRecorder()

	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodPost, "/api/chirps", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
