package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cowrite/pkg/faults"
	"cowrite/pkg/feature"
)

// POST /internal/episodes/:episodeId/ai/autocomplete
func (s *Server) handleAutocomplete(c echo.Context) error {
	requestID := uuid.NewString()

	var req feature.AutocompleteRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, requestID, faults.New(faults.KindInvalidRequest, "request body is not valid JSON"))
	}
	req.EpisodeID = c.Param("episodeId")

	data, err := s.Runner.Autocomplete(c.Request().Context(), requestID, req)
	if err != nil {
		return s.fail(c, requestID, err)
	}
	return c.JSON(http.StatusOK, faults.OK(data))
}

// POST /internal/episodes/:episodeId/ai/synonyms
func (s *Server) handleSynonyms(c echo.Context) error {
	requestID := uuid.NewString()

	var req feature.SynonymsRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, requestID, faults.New(faults.KindInvalidRequest, "request body is not valid JSON"))
	}
	req.EpisodeID = c.Param("episodeId")

	data, err := s.Runner.Synonyms(c.Request().Context(), requestID, req)
	if err != nil {
		return s.fail(c, requestID, err)
	}
	return c.JSON(http.StatusOK, faults.OK(data))
}

// POST /internal/episodes/:episodeId/ai/transform-style
func (s *Server) handleTransformStyle(c echo.Context) error {
	requestID := uuid.NewString()

	var req feature.TransformStyleRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, requestID, faults.New(faults.KindInvalidRequest, "request body is not valid JSON"))
	}
	req.EpisodeID = c.Param("episodeId")

	data, err := s.Runner.TransformStyle(c.Request().Context(), requestID, req)
	if err != nil {
		return s.fail(c, requestID, err)
	}
	return c.JSON(http.StatusOK, faults.OK(data))
}

// POST /internal/projects/:projectId/ai/ask
func (s *Server) handleAsk(c echo.Context) error {
	requestID := uuid.NewString()

	var req feature.AskRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, requestID, faults.New(faults.KindInvalidRequest, "request body is not valid JSON"))
	}
	req.ProjectID = c.Param("projectId")

	data, err := s.Runner.Ask(c.Request().Context(), requestID, req)
	if err != nil {
		return s.fail(c, requestID, err)
	}
	return c.JSON(http.StatusOK, faults.OK(data))
}

// fail emits the uniform error envelope. The full error (with upstream
// diagnostics) stays in the server logs; callers see the mapped code and a
// safe message.
func (s *Server) fail(c echo.Context, requestID string, err error) error {
	kind := faults.KindOf(err)
	if kind != faults.KindInvalidRequest {
		log.Error("request failed",
			"request_id", requestID,
			"kind", kind.String(),
			"error", err,
		)
	}
	status, envelope := faults.Envelope(err, requestID)
	return c.JSON(status, envelope)
}
