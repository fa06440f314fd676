package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// public API
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/healthz", h.healthz)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/users", h.createUser)
		r.Post("/api/login", h.login)
		r.Post("/api/refresh", h.refresh)
		r.Post("/api/revoke", h.revoke)

		r.Get("/api/chirps", h.listChirps)
		r.Get("/api/chirps/{chirpID}", h.getChirp)

		r.Post("/api/polka/webhooks", h.polkaWebhook)
	})

	// API routes requiring an access token
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.auth)

		r.Put("/api/users", h.updateUser)
		r.Post("/api/chirps", h.createChirp)
		r.Delete("/api/chirps/{chirpID}", h.deleteChirp)
	})

	// static files and admin pages
	router.Group(func(r chi.Router) {
		fileServer := http.StripPrefix("/app", http.FileServer(http.Dir(h.filepathRoot())))
		r.Handle("/app", http.RedirectHandler("/app/", http.StatusMovedPermanently))
		r.With(h.countHits).Handle("/app/*", fileServer)

		r.Get("/admin/metrics", h.adminMetrics)
		r.Post("/admin/reset", h.adminReset)
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) filepathRoot() string {
	if h.cfg.FilepathRoot == "" {
		return "."
	}
	return h.cfg.FilepathRoot
}
