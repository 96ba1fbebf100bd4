// Package server provides the HTTP API for simplification, translation and history.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/SuyashSrivastava1/ReadAble/internal/config"
	"github.com/SuyashSrivastava1/ReadAble/internal/db"
	"github.com/SuyashSrivastava1/ReadAble/internal/server/middleware"
	"github.com/SuyashSrivastava1/ReadAble/internal/server/ratelimit"
	"github.com/SuyashSrivastava1/ReadAble/internal/simplify"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 100 << 10

// DefaultAllowedOrigins is used when no CORS origins are configured.
var DefaultAllowedOrigins = []string{"http://localhost:5173"}

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	service        *simplify.Service
	store          db.HistoryStore
	rateLimiter    *ratelimit.Limiter
	tokens         middleware.TokenValidator
	allowedOrigins []string
	timeout        time.Duration
	logger         *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port    int
	Service *simplify.Service
	// Store persists history for authenticated users; nil disables the history routes.
	Store db.HistoryStore
	// JWT validates bearer tokens; required when Store is set.
	JWT            *config.JWTConfig
	RateLimit      *ratelimit.Config
	AllowedOrigins []string
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	TrustProxy bool
	// RequestTimeout bounds model calls; the local rewrite answers once it passes.
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		return nil, fmt.Errorf("simplification service is required")
	}
	if cfg.Store != nil && cfg.JWT == nil {
		return nil, fmt.Errorf("JWT configuration is required when history is enabled")
	}

	s := &Server{
		service:        cfg.Service,
		store:          cfg.Store,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         cfg.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if len(s.allowedOrigins) == 0 {
		s.allowedOrigins = DefaultAllowedOrigins
	}
	if cfg.JWT != nil {
		s.tokens = NewJWTService(cfg.JWT).AsTokenValidator()
	}
	s.rateLimiter = ratelimit.NewLimiter(cfg.RateLimit)

	s.timeout = cfg.RequestTimeout
	if s.timeout <= 0 {
		s.timeout = 60 * time.Second
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(cfg.TrustProxy),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: s.timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes(trustProxy bool) http.Handler {
	optional := middleware.OptionalAuth(s.tokens)
	required := middleware.RequireAuth(s.tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/profiles", s.handleProfiles)
	mux.Handle("POST /api/simplify", optional(http.HandlerFunc(s.handleSimplify)))
	mux.Handle("POST /api/translate", optional(http.HandlerFunc(s.handleTranslate)))
	if s.store != nil {
		mux.Handle("GET /api/history", required(http.HandlerFunc(s.handleListHistory)))
		mux.Handle("DELETE /api/history/{id}", required(http.HandlerFunc(s.handleDeleteHistory)))
	}
	mux.HandleFunc("/", s.handleNotFound)

	var handler http.Handler = mux
	handler = s.withRateLimit(handler)
	handler = s.withCORS(handler)
	handler = s.withLogging(handler)
	handler = chimw.Recoverer(handler)
	if trustProxy {
		handler = chimw.RealIP(handler)
	}
	return chimw.RequestID(handler)
}

// Handler returns the full middleware chain, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close releases the rate limiter and the history store.
func (s *Server) Close() {
	s.rateLimiter.Stop()
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing history store", zap.Error(err))
		}
	}
}

// withCORS allows the configured browser origins
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if !slices.Contains(s.allowedOrigins, origin) {
				s.errorResponse(w, http.StatusForbidden, MessageCORSDenied)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs one line per request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// extractClientID extracts the client identifier from the request.
// RemoteAddr is "IP:port", or a bare IP once RealIP has rewritten it.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		seconds := int((info.RetryAfter + time.Second - 1) / time.Second)
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", s.extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
		zap.Duration("retry_after", info.RetryAfter),
	)

	s.errorResponse(w, http.StatusTooManyRequests, info.Message)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}

// fail writes err as a response. Errors without a client message become 500s.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status < http.StatusInternalServerError {
		s.errorResponse(w, httpErr.Status, httpErr.Message)
		return
	}

	s.logger.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.Error(err),
	)
	s.errorResponse(w, http.StatusInternalServerError, MessageInternal)
}
