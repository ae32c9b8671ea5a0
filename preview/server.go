// Package preview serves page files as rendered HTML for local preview.
package preview

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heathj/helmet/pagefile"
)

var log = logrus.WithField("pkg", "preview")

const contentType = "text/html; charset=utf-8"

// unknownPage is the page label for requests that match no file.
const unknownPage = "_unknown"

// Server renders page files from a directory on every request.
type Server struct {
	config  Config
	router  *chi.Mux
	metrics *metrics
	tracer  trace.Tracer
}

func New(opts ...Option) *Server {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	s := &Server{
		config:  config,
		metrics: newMetrics(config),
		tracer:  otel.Tracer(config.TracerName),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Get("/pages/{name}", s.renderPage)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, config.MetricsPath, promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{}))
	s.router = r
	return s
}

func (s *Server) Config() Config {
	return s.config
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address until ctx is done, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": s.config.Addr, "dir": s.config.Dir}).Info("preview server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "preview server failed")
	case <-ctx.Done():
	}

	log.Info("preview server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// lookup finds the page file for name, trying each known extension.
func (s *Server) lookup(name string) (string, bool) {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	for _, ext := range pagefile.Extensions {
		path := filepath.Join(s.config.Dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	_, span := s.tracer.Start(r.Context(), "preview.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("helmet.page", name)),
	)
	defer span.End()

	start := time.Now()
	path, ok := s.lookup(name)
	if !ok {
		s.metrics.rendersTotal.WithLabelValues(unknownPage, "not_found").Inc()
		span.SetStatus(codes.Error, "page not found")
		http.NotFound(w, r)
		return
	}

	out, err := pagefile.Render(path)
	s.metrics.renderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.rendersTotal.WithLabelValues(name, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).WithField("page", name).Warn("render failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.rendersTotal.WithLabelValues(name, "ok").Inc()
	s.metrics.renderedBytes.Add(float64(len(out)))
	span.SetAttributes(attribute.Int("helmet.bytes", len(out)))
	span.SetStatus(codes.Ok, "")

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write([]byte(out))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start),
			"request":  middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}
