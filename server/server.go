// Package server hosts the browser UI for headline extraction: an upload and
// clipboard-paste page, the extraction API, and the per-process session list.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"golang.org/x/net/netutil"

	"github.com/wudi/headline/headline"
	"github.com/wudi/headline/metrics"
	"github.com/wudi/headline/observability"
	"github.com/wudi/headline/ocr"
	"github.com/wudi/headline/session"
	"github.com/wudi/headline/web"
)

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1).
	Host string
	// Port is the port to listen on (default: 8080).
	Port string
	// SessionLimit caps the in-memory session size (default: session.DefaultLimit).
	SessionLimit int
	// MaxUploadBytes limits the accepted request payload (default: 20 MiB).
	MaxUploadBytes int64
	// MaxConns caps concurrent connections; OCR blocks a thread for its full
	// duration, so the listener is limited rather than queueing unbounded work
	// (default: 16).
	MaxConns int
	// Engine is the OCR engine; nil selects the library default.
	Engine ocr.Engine
	// Extractor overrides the heuristic defaults.
	Extractor headline.Config
	// Logger is the structured logger to use.
	Logger *slog.Logger
}

// Server is the headline HTTP server.
type Server struct {
	httpServer *http.Server
	extractor  *headline.Extractor
	store      *session.Store
	logger     *slog.Logger
	docsHTML   []byte
	maxUpload  int64
	maxConns   int

	mu      sync.Mutex
	ln      net.Listener
	running bool
}

// New creates a Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20 << 20
	}
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = 16
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	usage, err := web.UsageDoc()
	if err != nil {
		return nil, fmt.Errorf("load usage doc: %w", err)
	}
	var docs bytes.Buffer
	if err := goldmark.Convert(usage, &docs); err != nil {
		return nil, fmt.Errorf("render usage doc: %w", err)
	}

	staticFS, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("load static assets: %w", err)
	}

	s := &Server{
		extractor: headline.New(cfg.Engine,
			headline.WithConfig(cfg.Extractor),
			headline.WithLogger(observability.NewSlogLogger(cfg.Logger)),
		),
		store:     session.NewStore(cfg.SessionLimit),
		logger:    cfg.Logger,
		docsHTML:  docs.Bytes(),
		maxUpload: cfg.MaxUploadBytes,
		maxConns:  cfg.MaxConns,
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServer(http.FS(staticFS)))
	mux.HandleFunc("POST /api/extract", s.handleExtract)
	mux.HandleFunc("POST /api/paste", s.handlePaste)
	mux.HandleFunc("GET /api/session", s.handleSession)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /docs", s.handleDocs)
	mux.Handle("GET /metrics", metrics.Handler())

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.logRequests(mux),
		ReadTimeout:  30 * time.Second,
		// OCR on a large screenshot can legitimately take a while.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s, nil
}

// Start begins serving in the background. It returns once the listener is
// bound.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errors.New("server already running")
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	s.ln = netutil.LimitListener(ln, s.maxConns)
	s.running = true

	s.logger.Info("server listening", "addr", s.httpServer.Addr)
	go func() {
		if err := s.httpServer.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server stopped", "error", err)
		}
	}()
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"took", time.Since(start))
	})
}
