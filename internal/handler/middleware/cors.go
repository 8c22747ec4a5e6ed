package middleware

import (
	"log/slog"
	"slices"

	"station-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	// cors rejects a wildcard origin combined with credentials
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS wildcard origin disables credentials; the session cookie will not be sent cross-origin")
			corsCfg.AllowCredentials = false
		}
	}

	slog.Info("CORS middleware initialized",
		"AllowOrigins", cfg.AllowOrigins,
		"AllowCredentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
