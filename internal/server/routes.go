package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plebishub/plebisadmin/internal/dev"
	"github.com/plebishub/plebisadmin/pkg/middleware"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.Tracing(middleware.WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	})))
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}

	r.Method(http.MethodGet, "/", http.RedirectHandler("/admin", http.StatusFound))
	r.Get("/admin", s.handleDashboard)
	r.Get("/admin/footer", s.handleFooter)
	r.Get("/pdf/{name}", s.handleDocument)
	r.Get("/healthz", s.handleHealth)

	if s.metrics != nil && s.gatherer != nil && s.config.MetricsEnabled() {
		r.Method(http.MethodGet, s.config.Metrics.Path, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.reload != nil {
		r.Get(dev.ReloadPath, s.reload.ServeHTTP)
	}

	return r
}
