// Package server exposes the dashboard engine and its boundary
// endpoints over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/pulseboard/internal/config"
	"github.com/sells-group/pulseboard/internal/mockdata"
	"github.com/sells-group/pulseboard/internal/model"
	"github.com/sells-group/pulseboard/internal/registry"
)

// LiveSource fetches boundary records from a live backend. There is no
// live backend in this deployment; every fetch degrades to mock data
// through the fetch package, and the response is marked as fallback.
type LiveSource struct {
	Lease   func(ctx context.Context, id string) (mockdata.Lease, error)
	Actions func(ctx context.Context) ([]mockdata.ActionItem, error)
}

// Server routes dashboard and boundary requests.
type Server struct {
	reg           *registry.Registry
	cfg           config.ServerConfig
	defaultTheme  model.ThemeMode
	live          LiveSource
	exportLimiter *rate.Limiter
	router        chi.Router
}

// New builds a Server. defaultTheme is the persisted preference used
// when a request carries no theme of its own.
func New(reg *registry.Registry, cfg config.ServerConfig, defaultTheme model.ThemeMode) *Server {
	s := &Server{
		reg:          reg,
		cfg:          cfg,
		defaultTheme: defaultTheme,
		live: LiveSource{
			Lease: func(context.Context, string) (mockdata.Lease, error) {
				return mockdata.Lease{}, eris.New("server: no live lease backend configured")
			},
			Actions: func(context.Context) ([]mockdata.ActionItem, error) {
				return nil, eris.New("server: no live actions backend configured")
			},
		},
		exportLimiter: rate.NewLimiter(rate.Limit(cfg.ExportRateLimit), max(cfg.ExportBurst, 1)),
	}
	s.router = s.routes()
	return s
}

// SetLiveSource overrides the boundary fetchers; nil funcs keep the
// defaults.
func (s *Server) SetLiveSource(src LiveSource) {
	if src.Lease != nil {
		s.live.Lease = src.Lease
	}
	if src.Actions != nil {
		s.live.Actions = src.Actions
	}
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Theme"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/verticals", s.handleListVerticals)
		r.Get("/verticals/{id}", s.handleGetVertical)
		r.Get("/verticals/{id}/dashboard", s.handleDashboard)
		r.Post("/charts/render", s.handleRenderChart)
		r.Get("/analytics/compliance", s.handleCompliance)
		r.Get("/audit-logs", s.handleAuditLogs)
		r.Get("/audit-logs/export", s.handleAuditExport)
	})

	r.Route("/v2", func(r chi.Router) {
		r.Get("/agents/vanguards/lease/{id}", s.handleLease)
		r.Get("/actions/queue", s.handleActionQueue)
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("server: listening", zap.Int("port", s.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server: listen")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		zap.L().Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// theme resolves the effective theme for a request: query parameter
// first, then the X-Theme header, then the server default. Unknown
// values degrade to the default rather than failing the request.
func (s *Server) theme(r *http.Request) model.ThemeMode {
	raw := r.URL.Query().Get("theme")
	if raw == "" {
		raw = r.Header.Get("X-Theme")
	}
	if raw == "" {
		return s.defaultTheme
	}
	mode, err := model.ParseThemeMode(raw)
	if err != nil {
		zap.L().Warn("server: unknown theme preference", zap.String("theme", raw))
		return s.defaultTheme
	}
	return mode
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
