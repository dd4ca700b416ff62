package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/Wy2160640/ensemblrest/internal/server/handlers"
	servermw "github.com/Wy2160640/ensemblrest/internal/server/middleware"
)

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes() {
	s.router.Get("/health", handlers.HealthHandler)
	s.router.Get("/health/live", handlers.LivenessHandler)
	s.router.Get("/health/ready", handlers.ReadinessHandler)

	s.router.Get("/version", s.gateway.VersionHandler)

	// Proxied from the dedicated exporter port.
	s.router.Get("/metrics", MetricsHandler)

	s.router.Route("/api", func(r chi.Router) {
		if rl := s.cfg.RateLimit; rl.Enabled {
			r.Use(servermw.RateLimit(rl.RequestsPerSecond, rl.Burst))
		}
		if s.cfg.MaxBodyBytes > 0 {
			r.Use(servermw.RequestSizeLimit(s.cfg.MaxBodyBytes))
		}

		r.Get("/", s.gateway.ListOperations)
		r.Get("/{operation}", s.gateway.CallOperation)
		r.Post("/{operation}", s.gateway.CallOperation)
	})
}
