// Package server exposes the conversion pipeline over HTTP.
//
// The surface is multipart-form based so browsers and mobile clients
// can post camera captures directly: /ocr returns recognized text as
// JSON, the *-to-docx endpoints return a DOCX attachment, and
// /build-docx formats already-recognized text.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/config"
)

// Server handles HTTP requests for the conversion service.
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	recognizer pagelift.Recognizer
}

// New creates a server with the given configuration. A nil logger
// falls back to the default handler.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config: cfg,
		logger: logger,
	}
}

// WithRecognizer replaces the OCR engine used for conversions. Useful
// for tests and for callers that manage their own client lifecycle.
func (s *Server) WithRecognizer(r pagelift.Recognizer) *Server {
	s.recognizer = r
	return s
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/ocr", s.handleOCR)
	r.Post("/build-docx", s.handleBuildDocx)
	r.Post("/build_docx", s.handleBuildDocx)
	r.Post("/image-to-docx", s.handleImageToDocx)
	r.Post("/images-to-docx", s.handleImagesToDocx)

	return r
}

// ListenAndServe runs the server until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs every request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
