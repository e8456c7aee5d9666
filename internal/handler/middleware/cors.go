package middleware

import (
	"log/slog"
	"slices"

	"stand-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes the request id header.
// Credentials must stay allowed for the staff session cookie to reach the API.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(expose, requestIDHeader) {
		expose = append(expose, requestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
