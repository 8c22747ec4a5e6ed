package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"station-booking/internal/handler/api"
	"station-booking/internal/handler/middleware"
	"station-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	calendarHandler *api.CalendarHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, calendarHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// outermost so panics in any later middleware are caught
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, calendarHandler *api.CalendarHandler, reservationHandler *api.ReservationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		optionalAuth := []gin.HandlerFunc{authMiddleware.OptionalAuth()}
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/calendar/:date", Handler: calendarHandler.GetDay, Mw: optionalAuth},
			{Method: http.MethodGet, Path: "/availability", Handler: calendarHandler.GetAvailability, Mw: optionalAuth},
		})

		// contact details are personal data: listing requires sign-in as well
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers each route with its own middleware ahead of the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(slices.Clone(r.Mw), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
