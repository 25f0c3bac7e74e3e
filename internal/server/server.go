package server

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/plebishub/plebisadmin/internal/config"
	"github.com/plebishub/plebisadmin/internal/dev"
	"github.com/plebishub/plebisadmin/internal/errors"
	"github.com/plebishub/plebisadmin/internal/legal"
	"github.com/plebishub/plebisadmin/pkg/middleware"
	"github.com/plebishub/plebisadmin/pkg/render"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// Options wires the server's collaborators.
type Options struct {
	// Config is required. It must have passed Validate.
	Config *config.Config

	// Store serves the legal documents. Required.
	Store legal.Store

	// Logger defaults to a discarding logger.
	Logger *slog.Logger

	// Metrics and Gatherer enable request metrics and the /metrics
	// endpoint. Both nil disables them.
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer

	// Reload mounts the live reload endpoint and injects the client script.
	Reload *dev.ReloadServer

	// Watcher, if set, runs alongside the listener and triggers Reload.
	Watcher *dev.Watcher

	// Renderer configures HTML output.
	Renderer render.RendererConfig
}

// Server serves the admin shell.
type Server struct {
	config   *config.Config
	store    legal.Store
	logger   *slog.Logger
	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	reload   *dev.ReloadServer
	watcher  *dev.Watcher
	renderer render.RendererConfig
	router   chi.Router
}

// New creates a server from opts.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, stderrors.New("server: config is required")
	}
	if opts.Store == nil {
		return nil, stderrors.New("server: document store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		config:   opts.Config,
		store:    opts.Store,
		logger:   logger,
		metrics:  opts.Metrics,
		gatherer: opts.Gatherer,
		reload:   opts.Reload,
		watcher:  opts.Watcher,
		renderer: opts.Renderer,
	}
	if s.watcher != nil && s.reload != nil {
		s.watcher.OnChange(func(c dev.Change) {
			s.logger.Info("document changed", slog.String("path", c.Path), slog.String("change", c.Kind.String()))
			s.reload.NotifyChange(c)
		})
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return errors.New("E401").Wrap(err).WithDetail("listen on " + s.config.Addr())
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); !stderrors.Is(err, http.ErrServerClosed) {
			return errors.New("E401").Wrap(err)
		}
		return nil
	})

	if s.watcher != nil {
		g.Go(func() error {
			s.watcher.Start(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down...")
		return s.shutdown(srv)
	})

	return g.Wait()
}

func (s *Server) shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
	defer cancel()

	if s.reload != nil {
		s.reload.Close()
	}
	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown error", slog.Any("error", err))
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
