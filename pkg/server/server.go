// Package server is the HTTP surface: one POST route per writing-assistance
// feature plus a health endpoint. Handlers bind and hand off to the feature
// runner; every response is a success or error envelope carrying the
// request's correlation id.
package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cowrite/pkg/config"
	"cowrite/pkg/feature"
	"cowrite/pkg/inference"
)

type Server struct {
	Echo   *echo.Echo
	Runner *feature.Runner
	Cfg    *config.Config
	Ctx    context.Context
}

func NewServer(ctx context.Context, cfg *config.Config, inf inference.Inferencer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:   e,
		Runner: feature.NewRunner(cfg, inf),
		Cfg:    cfg,
		Ctx:    ctx,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/health", s.handleHealth)

	s.Echo.POST("/internal/episodes/:episodeId/ai/autocomplete", s.handleAutocomplete)
	s.Echo.POST("/internal/episodes/:episodeId/ai/synonyms", s.handleSynonyms)
	s.Echo.POST("/internal/episodes/:episodeId/ai/transform-style", s.handleTransformStyle)
	s.Echo.POST("/internal/projects/:projectId/ai/ask", s.handleAsk)
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
