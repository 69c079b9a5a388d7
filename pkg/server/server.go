// Package server implements the tagtree preview server.
//
// The server renders a document source on every request so the browser
// always sees the current state of the document definition. With a reload
// hub attached it also injects a small client script that reconnects and
// refreshes the page whenever the watcher reports a change.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tagtree-dev/tagtree/internal/preview"
)

// tracerName identifies render spans emitted by the preview server.
const tracerName = "tagtree/server"

// Source produces the rendered document served at the root path.
type Source interface {
	// Render returns the rendered document. Implementations are expected
	// to re-read the underlying definition so edits show up immediately.
	Render(ctx context.Context) (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (string, error)

// Render implements Source.
func (f SourceFunc) Render(ctx context.Context) (string, error) {
	return f(ctx)
}

// Config configures the preview server.
type Config struct {
	// Addr is the host:port to listen on.
	Addr string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Reload, when set, enables the live-reload endpoint and script
	// injection.
	Reload *preview.ReloadServer

	// Registry is the Prometheus registry to use. When nil the default
	// registerer and gatherer are used.
	Registry *prometheus.Registry
}

// Server serves a rendered document over HTTP.
type Server struct {
	config  Config
	source  Source
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	router  chi.Router

	httpServer *http.Server
}

// New creates a preview server for the given source.
func New(source Source, config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var metrics *Metrics
	var metricsHandler http.Handler
	if config.Registry != nil {
		metrics = NewMetrics(config.Registry)
		metricsHandler = promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{})
	} else {
		metrics = NewMetrics(prometheus.DefaultRegisterer)
		metricsHandler = promhttp.Handler()
	}

	s := &Server{
		config:  config,
		source:  source,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/", s.handleDocument)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metricsHandler)
	if config.Reload != nil {
		r.Get("/__reload", config.Reload.HandleWebSocket)
	}
	s.router = r

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves until the context is
// cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.config.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// handleDocument renders the source and serves the result.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "tagtree.render",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	start := time.Now()
	html, err := s.source.Render(ctx)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		s.metrics.observeRender("error", elapsed, 0)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("render failed", "error", err)
		if s.config.Reload != nil {
			s.config.Reload.NotifyError(err.Error())
		}
		http.Error(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.observeRender("success", elapsed, len(html))
	span.SetStatus(codes.Ok, "")
	span.SetAttributes(attribute.Int("tagtree.render_bytes", len(html)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
	if s.config.Reload != nil {
		w.Write([]byte(reloadScript))
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// IsCleanShutdown reports whether the error returned by Start indicates a
// deliberate stop rather than a failure.
func IsCleanShutdown(err error) bool {
	return err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, http.ErrServerClosed)
}
