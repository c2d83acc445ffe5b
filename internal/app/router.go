package app

import (
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// newRouter creates the application router.
func newRouter(h *handler.Handler, sessions middleware.SessionReader, gatherer prometheus.Gatherer, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Decompress(logger))
	r.Use(chimw.Compress(5, "application/json"))

	r.Get("/ping", h.Ping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/{code}", h.Redirect)

	r.Route("/api/short-link", func(r chi.Router) {
		r.Post("/v1/create", h.CreateLink)

		r.Route("/admin/v1/user", func(r chi.Router) {
			r.Post("/", h.Register)
			r.Get("/has-username", h.HasUsername)
			r.Post("/login", h.Login)
			r.Get("/check-login", h.CheckLogin)

			r.Group(func(r chi.Router) {
				r.Use(middleware.UserTransmit(sessions, logger))
				r.Get("/{username}", h.GetUser)
				r.Put("/", h.UpdateUser)
				r.Delete("/logout", h.Logout)
			})
		})
	})

	return r
}
