// Package server is the HTTP surface of the admin shell.
//
// It serves the dashboard page (layout plus footer), the footer fragment,
// and the legal documents the footer links to, behind chi with request
// logging, tracing, and Prometheus metrics.
//
// Routes:
//
//	GET /                 302 to /admin
//	GET /admin            dashboard page, streamed
//	GET /admin/footer     footer fragment
//	GET /pdf/{name}       legal document (application/pdf, inline)
//	GET /healthz          "ok"
//	GET /metrics          Prometheus exposition (when enabled)
//	GET /_admin/reload    live reload WebSocket (dev mode)
package server
