package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rtcchat/relay/internal/core"
)

// Handlers provides the plain HTTP endpoints next to the event channel.
type Handlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewHandlers creates a handlers instance.
func NewHandlers(hub *core.Hub, logger *zerolog.Logger) *Handlers {
	return &Handlers{hub: hub, log: logger}
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health reports liveness.
// GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Stats reports live room and client counts.
// GET /api/stats
func (h *Handlers) Stats(c *gin.Context) {
	stats, err := h.hub.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to query hub stats")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "hub unavailable"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
