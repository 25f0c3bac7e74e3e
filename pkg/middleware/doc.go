// Package middleware provides the HTTP middleware used by the admin server:
// Prometheus metrics, OpenTelemetry tracing, and structured request logging.
//
// All middleware has the standard func(http.Handler) http.Handler shape and
// plugs into a chi router:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("plebisadmin"))
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.RequestLogger(logger))
//	r.Use(middleware.Tracing())
//	r.Use(m.Handler)
//
// Route labels come from the chi route pattern ("/pdf/{name}"), never the raw
// URL path, to keep metric cardinality bounded.
package middleware
