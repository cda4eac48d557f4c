package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videobrief/videobrief/internal/acquirer"
	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/exporter"
	"github.com/videobrief/videobrief/internal/logger"
	"github.com/videobrief/videobrief/internal/pipeline"
)

// Server exposes the summarization pipeline over HTTP.
type Server struct {
	cfg      *config.Config
	caps     acquirer.Capabilities
	acquirer acquirer.Acquirer
	pipeline pipeline.Pipeline
	exporter exporter.Exporter
	logger   logger.Logger
	store    *sessionStore
	engine   *gin.Engine
	http     *http.Server
}

// New creates a Server wired with the pipeline components.
func New(cfg *config.Config, caps acquirer.Capabilities, acq acquirer.Acquirer, pipe pipeline.Pipeline, exp exporter.Exporter, log logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		caps:     caps,
		acquirer: acq,
		pipeline: pipe,
		exporter: exp,
		logger:   log,
		store:    newSessionStore(),
	}
	s.engine = s.setupRouter()
	return s
}

func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = 64 << 20

	api := router.Group("/api")
	{
		api.POST("/videos", s.uploadHandler)
		api.POST("/videos/url", s.downloadHandler)
		api.POST("/videos/:id/summarize", s.summarizeHandler)
		api.GET("/videos/:id", s.resultHandler)
		api.GET("/videos/:id/export/:format", s.exportHandler)
		api.DELETE("/videos/:id", s.deleteHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "videobrief",
		})
	})

	return router
}

// Run serves until the context is cancelled, then drains sessions.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.http = &http.Server{Addr: addr, Handler: s.engine}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Server listening on %s", addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Shutting down server...")
		shutdownCtx := context.Background()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn(ctx, "Server shutdown: %v", err)
		}
		s.store.closeAll(shutdownCtx)
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
