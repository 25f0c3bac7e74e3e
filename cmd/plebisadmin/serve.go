package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/plebishub/plebisadmin/internal/config"
	"github.com/plebishub/plebisadmin/internal/dev"
	"github.com/plebishub/plebisadmin/internal/legal"
	"github.com/plebishub/plebisadmin/internal/server"
	"github.com/plebishub/plebisadmin/pkg/middleware"
)

func serveCmd() *cobra.Command {
	var (
		configDir string
		port      int
		devMode   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the admin server",
		Long: `Start the admin HTTP server.

Configuration is read from plebisadmin.json in the config directory;
PLEBISADMIN_PORT, PLEBISADMIN_DOCUMENTS_DIR, OTEL_EXPORTER_OTLP_ENDPOINT
and OTEL_SERVICE_NAME override it.

Examples:
  plebisadmin serve
  plebisadmin serve --port=9090
  plebisadmin serve --config=/etc/plebisadmin --dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configDir, port, devMode)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&configDir, "config", "c", ".", "Directory containing plebisadmin.json")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from plebisadmin.json)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Enable live reload")

	return cmd
}

// loadConfig loads the file, then applies environment and flag overrides,
// in that order, and validates the result.
func loadConfig(dir string, port int, devMode bool) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if devMode {
		cfg.Dev.Reload = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	shutdownTracing, err := setupTracing(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown", slog.Any("error", err))
		}
	}()

	opts := server.Options{
		Config: cfg,
		Store:  newStore(cfg.Documents),
		Logger: logger,
	}

	if cfg.MetricsEnabled() {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts.Metrics = middleware.NewMetrics(
			middleware.WithRegistry(reg),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)
		opts.Gatherer = reg
	}

	if cfg.Dev.Reload {
		opts.Reload = dev.NewReloadServer(logger)
		if cfg.Documents.Backend == config.BackendDisk {
			opts.Watcher = dev.NewWatcher(dev.WatcherConfig{
				Paths:    []string{cfg.Documents.Dir},
				Interval: cfg.PollInterval(),
			})
		}
		logger.Info("live reload enabled", slog.String("path", dev.ReloadPath))
	}

	srv, err := server.New(opts)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func newStore(cfg config.DocumentsConfig) legal.Store {
	if cfg.Backend == config.BackendS3 {
		client := legal.NewS3Client(legal.S3ClientConfig{
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		return legal.NewS3Store(client, cfg.S3.Bucket, cfg.S3.Prefix)
	}
	return legal.NewDiskStore(cfg.Dir)
}
