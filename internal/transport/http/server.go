package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rtcchat/relay/internal/config"
	"github.com/rtcchat/relay/internal/core"
)

// NewServer builds the HTTP server exposing the event channel plus the
// health, stats, and metrics endpoints.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	handlers := NewHandlers(hub, logger)
	router.GET("/health", handlers.Health)
	router.GET("/api/stats", handlers.Stats)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.AllowedOrigins, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
