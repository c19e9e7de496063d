// Package api exposes the resolution pipelines over HTTP. The surface is
// deliberately small: a health probe and one POST endpoint per pipeline,
// with request-scoped IDs and structured logging.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osintlab/namesake/internal/model"
)

// Resolver is the pipeline surface the API depends on.
type Resolver interface {
	Intelligence(ctx context.Context, in model.IntelligenceInput) (*model.IntelligenceReport, error)
	Resolve(ctx context.Context, in model.ResolveInput) (*model.ResolutionReport, error)
}

// Server wires the HTTP surface around a resolver.
type Server struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewServer creates a server. A nil logger falls back to slog.Default.
func NewServer(resolver Resolver, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{resolver: resolver, logger: logger}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware(s.logger))
	router.Use(RequestSizeLimitMiddleware(1 << 20))

	router.GET("/healthz", s.healthzHandler)

	v1 := router.Group("/v1")
	{
		v1.POST("/intelligence", s.intelligenceHandler)
		v1.POST("/resolve", s.resolveHandler)
	}
	return router
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server starting", "addr", addr)
	return srv.ListenAndServe()
}
