package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router of the /api surface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID)
	router.Use(withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signUp)
			r.Post("/signin", h.signIn)

			r.Group(func(r chi.Router) {
				r.Use(h.protect)
				r.Post("/supabase-sync", h.sync)
				r.Post("/deactivate-account", h.deactivateAccount)
				r.Post("/deactivate-legacy", h.deactivateLegacy)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.protect)

			r.Post("/change-password", h.changePassword)
			r.Get("/profile", h.getProfile)
			r.Patch("/profile", h.updateProfile)
			r.Delete("/profile", h.deleteProfile)

			r.Group(func(r chi.Router) {
				r.Use(h.admin)
				r.Get("/", h.listUsers)
				r.Put("/{id}", h.updateUser)
				r.Delete("/{id}", h.deleteUser)
				r.Put("/{id}/make-admin", h.makeAdmin)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(withGZip)
			r.Get("/population-trend-public", h.populationTrend)

			r.Group(func(r chi.Router) {
				r.Use(h.protect)
				r.Get("/stats", h.dashboardStats)
				r.Get("/population-trend", h.populationTrend)
				r.Get("/regional-distribution", h.regionalDistribution)
				r.Get("/age-distribution", h.ageDistribution)
				r.Get("/demographics", h.demographics)
				r.Get("/health-metrics", h.healthMetrics)
				r.Get("/growth-analysis", h.growthAnalysis)
				r.Get("/comparative-studies", h.comparativeStudies)
				r.Get("/analytics", h.analytics)
				r.Get("/urban-rural", h.urbanRural)
			})
		})
	})

	router.NotFound(CheckHTTPMethod())
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
