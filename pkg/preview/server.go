package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = "localhost:8080"

	// DefaultPollInterval is the default file watch interval.
	DefaultPollInterval = 500 * time.Millisecond

	// ReloadPath is the WebSocket endpoint for live reload.
	ReloadPath = "/_weft/reload"

	// tracerName identifies preview spans.
	tracerName = "weft-preview"
)

// Server serves a built site directory with optional live reload.
type Server struct {
	root     string
	addr     string
	logger   *slog.Logger
	registry *prometheus.Registry
	watch    bool
	interval time.Duration

	metrics *metrics
	hub     *reloadHub
	router  chi.Router

	mu        sync.Mutex
	boundAddr string
}

// Option configures the preview server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry metrics are registered on
// and served from. Defaults to a fresh registry per server.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithWatch enables or disables the file watcher and reload injection.
func WithWatch(watch bool) Option {
	return func(s *Server) {
		s.watch = watch
	}
}

// WithPollInterval sets how often the watcher scans for changes.
func WithPollInterval(interval time.Duration) Option {
	return func(s *Server) {
		s.interval = interval
	}
}

// New creates a preview server for the given site directory.
func New(root string, opts ...Option) (*Server, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("preview: %s is not a directory", root)
	}

	s := &Server{
		root:     root,
		addr:     DefaultAddr,
		logger:   slog.Default(),
		registry: prometheus.NewRegistry(),
		watch:    true,
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = newMetrics(s.registry)
	s.hub = newReloadHub(s.metrics)
	s.router = s.routes()
	return s, nil
}

// routes builds the router with the middleware stack.
func (s *Server) routes() chi.Router {
	tracer := otel.Tracer(tracerName)

	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(s.recordMetrics)
	r.Use(traceRequests(tracer))

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get(ReloadPath, s.hub.handleWebSocket)
	r.Get("/*", s.handleStatic)
	r.Head("/*", s.handleStatic)
	return r
}

// Handler returns the routed handler, mainly for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the bound listen address once Start has opened the
// listener, or the configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boundAddr != "" {
		return s.boundAddr
	}
	return s.addr
}

// Start listens and serves until ctx is cancelled, then shuts down
// gracefully. The watcher runs alongside the server when enabled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("preview: listen %s: %w", s.addr, err)
	}

	s.mu.Lock()
	s.boundAddr = ln.Addr().String()
	s.mu.Unlock()

	if s.watch {
		w := newWatcher(s.root, s.interval, s.logger, s.hub.notifyReload)
		go w.run(ctx)
	}

	srv := &http.Server{Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("preview server listening",
		"addr", s.Addr(),
		"dir", s.root,
		"watch", s.watch,
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.hub.close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("preview: shutdown: %w", err)
		}
		s.logger.Info("preview server stopped")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("preview: serve: %w", err)
		}
		return nil
	}
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}
