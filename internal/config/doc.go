// Package config loads the admin service configuration.
//
// The configuration is stored in plebisadmin.json in the directory passed to
// Load. Every field is optional; a missing file yields the defaults.
//
// # Configuration File Structure
//
//	{
//	  "server":    {"host": "0.0.0.0", "port": 8080, "shutdownTimeout": "10s"},
//	  "site":      {"title": "PlebisHub", "lang": "es"},
//	  "documents": {"backend": "disk", "dir": "public/pdf",
//	                "s3": {"bucket": "", "prefix": "pdf/", "region": "eu-west-1"}},
//	  "metrics":   {"enabled": true, "path": "/metrics", "namespace": "plebisadmin"},
//	  "tracing":   {"endpoint": "", "serviceName": "plebisadmin", "insecure": false},
//	  "dev":       {"reload": false, "pollInterval": "1s"},
//	  "log":       {"level": "info", "format": "text"}
//	}
//
// # Environment Overrides
//
// PLEBISADMIN_PORT, PLEBISADMIN_DOCUMENTS_DIR, OTEL_EXPORTER_OTLP_ENDPOINT and
// OTEL_SERVICE_NAME override the corresponding file values.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Listening on", cfg.Addr())
package config
