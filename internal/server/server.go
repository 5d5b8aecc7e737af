package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/energy-jobboard/internal/db"
	"github.com/jonathan/energy-jobboard/internal/enrich"
	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/server/ratelimit"
	"github.com/jonathan/energy-jobboard/internal/skillcache"
	"github.com/jonathan/energy-jobboard/internal/types"
)

// Store persists enriched jobs. *db.DB implements it.
type Store interface {
	UpsertEnrichedJob(ctx context.Context, job *types.EnrichedJob) error
	GetEnrichedJob(ctx context.Context, id string) (*types.EnrichedJob, error)
	ListEnrichedJobs(ctx context.Context, filters db.ListFilters) ([]types.EnrichedJob, int, error)
	CountByRole(ctx context.Context) (map[string]int, error)
	Ping(ctx context.Context) error
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	enricher    *enrich.Enricher
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	SkillCache  string
	Workers     int
	RateLimit   *ratelimit.Config // nil reads the RATE_LIMIT_* environment
}

// New creates a server. The job store routes are enabled only when
// DatabaseURL is set.
func New(cfg Config) (*Server, error) {
	cache, err := skillcache.Load(cfg.SkillCache)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill cache: %w", err)
	}

	var store Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, err
		}
		store = database
	}

	rl := cfg.RateLimit
	if rl == nil {
		rl = ratelimit.LoadConfig()
	}

	return newServer(cfg.Port, store, enrich.New(cache, cfg.Workers), ratelimit.NewLimiter(rl)), nil
}

func newServer(port int, store Store, enricher *enrich.Enricher, limiter *ratelimit.Limiter) *Server {
	s := &Server{
		store:       store,
		enricher:    enricher,
		validate:    newValidator(),
		rateLimiter: limiter,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Skills
	mux.HandleFunc("GET /skills/reference", s.handleReferenceSkills)
	mux.HandleFunc("POST /skills/process", s.handleProcessSkills)
	mux.HandleFunc("POST /skills/validate", s.handleValidateSkills)
	mux.HandleFunc("POST /skills/normalize", s.handleNormalizeSkills)
	mux.HandleFunc("GET /skills/rules", s.handleNormalizationRules)

	// Roles
	mux.HandleFunc("GET /roles", s.handleListRoles)
	mux.HandleFunc("POST /roles/match", s.handleMatchRoles)
	mux.HandleFunc("POST /roles/stats", s.handleRoleStats)

	// Jobs
	mux.HandleFunc("POST /jobs/enrich", s.handleEnrichJobs)
	if s.store != nil {
		mux.HandleFunc("GET /jobs", s.handleListJobs)
		mux.HandleFunc("GET /jobs/stats", s.handleJobStats)
		mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	}

	var h http.Handler = s.withCORS(mux)
	h = s.withLogging(h)
	if s.rateLimiter != nil {
		h = s.withRateLimit(h)
	}
	return h
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Bool("store", s.store != nil).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.release()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.release()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

func (s *Server) release() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.store != nil {
		s.store.Close()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging logs each request with its status and latency
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		ctx := logger.Logger.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger().WithContext(r.Context())
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Ctx(ctx).Info().
			Int("status", rec.status).
			Str("remote", r.RemoteAddr).
			Dur("latency", time.Since(start)).
			Msg("request")
	})
}

// withRateLimit rejects clients over their limit with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller by remote IP.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":   "rate_limit_exceeded",
		"message": "Rate limit exceeded. Please try again later.",
		"limit":   info.Limit,
	}
	if info.RetryAfter > 0 {
		secs := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = secs
		w.Header().Set("Retry-After", fmt.Sprintf("%d", secs))
	}

	logger.Warn().
		Str("client", clientID(r)).
		Str("path", r.URL.Path).
		Int("limit", info.Limit).
		Msg("rate limit exceeded")

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to its HTTP status. Internal errors are logged and
// their detail withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		s.errorResponse(w, status, "internal error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
