package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "ai-service",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"mode":    s.Cfg.Mode,
	})
}
