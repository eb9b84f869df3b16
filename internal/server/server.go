// ABOUTME: HTTP server construction and middleware wiring on echo
// ABOUTME: Owns the optional aggregate cache window and graceful shutdown

package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/newswave/newswave/internal/aggregate"
	"github.com/newswave/newswave/internal/config"
	"github.com/newswave/newswave/internal/lang"
	"github.com/newswave/newswave/internal/models"
	"github.com/newswave/newswave/internal/store"
)

// Server wires the aggregator, submission store and language service into
// the HTTP surface.
type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	agg         *aggregate.Aggregator
	store       *store.Store
	lang        *lang.Service
	logger      *slog.Logger
	proxyClient *http.Client

	// cache of the full aggregate, only used when RefreshWindow > 0.
	mu       sync.Mutex
	cached   []models.Article
	cachedAt time.Time
}

// New builds a Server and registers its routes.
func New(cfg *config.Config, agg *aggregate.Aggregator, st *store.Store, langSvc *lang.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:        e,
		cfg:         cfg,
		agg:         agg,
		store:       st,
		lang:        langSvc,
		logger:      logger,
		proxyClient: &http.Client{Timeout: 30 * time.Second},
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Requested-With"},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			)
			return nil
		},
	}))

	s.registerRoutes()
	return s
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.cfg.Server.Address())
	return s.echo.Start(s.cfg.Server.Address())
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree, used by handler tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// aggregateAll runs the full aggregation pipeline, serving from the cache
// when a refresh window is configured and still fresh.
func (s *Server) aggregateAll(ctx context.Context) ([]models.Article, error) {
	window := s.cfg.Aggregation.RefreshWindow.Std()
	if window > 0 {
		s.mu.Lock()
		if s.cached != nil && time.Since(s.cachedAt) < window {
			out := s.cached
			s.mu.Unlock()
			return out, nil
		}
		s.mu.Unlock()
	}

	articles, err := s.agg.Aggregate(ctx,
		s.cfg.PrimarySources(), s.cfg.FallbackSources(),
		s.cfg.Aggregation.MinAcceptable, s.cfg.Aggregation.ResultLimit)
	if err != nil {
		return nil, err
	}

	if window > 0 {
		s.mu.Lock()
		s.cached = articles
		s.cachedAt = time.Now()
		s.mu.Unlock()
	}
	return articles, nil
}

// invalidateCache drops the cached aggregate so new submissions show up
// immediately even inside a refresh window.
func (s *Server) invalidateCache() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
