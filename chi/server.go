// Package chi serves link previews over HTTP using the chi router.
package chi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/inutamago-dogegg/ogp"
)

// CacheControl is sent with every successful preview response.
const CacheControl = "public, max-age=86400"

// Error bodies returned by the preview route.
const (
	msgInvalidURL      = "invalid url"
	msgFetchFailed     = "fetch failed"
	msgUnexpectedError = "unexpected error"
)

// Server exposes an ogp.Previewer as GET /api/ogp?url=<target>.
type Server struct {
	previewer ogp.Previewer
	logger    *slog.Logger
	router    chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins enables CORS for the given origins.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) == 0 {
			return
		}
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"If-None-Match"},
			ExposedHeaders: []string{"ETag", "X-Request-Id"},
			MaxAge:         86400,
		}))
	}
}

// NewServer creates a Server. A nil logger discards request logs.
func NewServer(previewer ogp.Previewer, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		previewer: previewer,
		logger:    logger,
		router:    chi.NewRouter(),
	}

	// Middleware
	s.router.Use(middleware.RequestID)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	for _, opt := range opts {
		opt(s)
	}

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	s.router.Get("/api/ogp", s.handlePreview)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if !ogp.IsHTTPURL(target) {
		writeError(w, http.StatusBadRequest, msgInvalidURL)
		return
	}

	preview, err := s.previewer.FetchPreview(r.Context(), target)
	if err != nil {
		switch ogp.ErrorCode(err) {
		case ogp.EINVALID:
			writeError(w, http.StatusBadRequest, msgInvalidURL)
		case ogp.EHTTP, ogp.ETRANSPORT:
			writeError(w, http.StatusBadGateway, msgFetchFailed)
		default:
			s.logger.Error("preview failed", "url", target, "err", err)
			writeError(w, http.StatusInternalServerError, msgUnexpectedError)
		}
		return
	}

	body, err := json.Marshal(preview)
	if err != nil {
		s.logger.Error("encode preview", "url", target, "err", err)
		writeError(w, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	etag := ETag(body)
	w.Header().Set("Cache-Control", CacheControl)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ETag returns a strong entity tag for a response body.
func ETag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
