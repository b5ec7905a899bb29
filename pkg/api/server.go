// Package api exposes the HTTP and WebSocket surface: the embeddable
// research endpoints under /api/v1, the research lifecycle endpoints
// under /research/api, and the progress WebSocket at /ws.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/active"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/database"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/events"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/research"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
)

// Deps collects everything the server serves from.
type Deps struct {
	DB          *database.Client
	Runner      *services.Runner
	Research    *services.ResearchService
	Logs        *services.LogService
	Resources   *services.ResourceService
	Active      *active.Manager
	ConnManager *events.ConnectionManager
	Library     *research.Client
	Config      *config.ServerConfig
	Logger      *slog.Logger
}

// Server is the HTTP server over the research engine.
type Server struct {
	db          *database.Client
	runner      *services.Runner
	research    *services.ResearchService
	logs        *services.LogService
	resources   *services.ResourceService
	active      *active.Manager
	connManager *events.ConnectionManager
	library     *research.Client
	cfg         *config.ServerConfig
	logger      *slog.Logger
	httpServer  *http.Server
}

// NewServer wires the server; call Start to serve.
func NewServer(deps Deps) *Server {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultServerConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:          deps.DB,
		runner:      deps.Runner,
		research:    deps.Research,
		logs:        deps.Logs,
		resources:   deps.Resources,
		active:      deps.Active,
		connManager: deps.ConnManager,
		library:     deps.Library,
		cfg:         cfg,
		logger:      logger.With("component", "api_server"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger))
	router.Use(securityHeaders())
	router.Use(rateLimit(s.cfg.RateLimit))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.handleHealth)
		v1.POST("/quick_summary", s.handleQuickSummary)
		v1.POST("/generate_report", s.handleGenerateReport)
		v1.POST("/analyze_documents", s.handleAnalyzeDocuments)
		v1.GET("/search_engines", s.handleSearchEngines)
		v1.GET("/collections", s.handleCollections)
	}

	r := router.Group("/research/api")
	{
		r.POST("/start_research", s.handleStartResearch)
		r.GET("/status/:id", s.handleStatus)
		r.GET("/details/:id", s.handleDetails)
		r.GET("/history", s.handleHistory)
		r.GET("/history/report/:id", s.handleHistoryReport)
		r.POST("/research/:id/terminate", s.handleTerminate)
		r.DELETE("/research/:id/delete", s.handleDelete)
		r.GET("/logs/:id", s.handleLogs)
		r.GET("/resources/:id", s.handleResources)
	}

	router.GET("/ws", s.handleWebSocket)

	return router
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
