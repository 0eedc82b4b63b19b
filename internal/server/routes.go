package server

import (
	"github.com/labstack/echo/v4"

	"github.com/scriptlens/scriptlens/internal/server/middleware"
	"github.com/scriptlens/scriptlens/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Script routes
	apiRoutes.POST("/scripts", routes.CreateScriptHandler, middleware.RequirePermission("script.create"))
	apiRoutes.GET("/scripts", routes.GetScriptsHandler)
	apiRoutes.GET("/scripts/:id", routes.GetScriptHandler)

	// Outline routes
	apiRoutes.POST("/generate-outline", routes.GenerateOutlineHandler)

	// Corpus routes
	apiRoutes.GET("/stats", routes.GetStatsHandler)
	apiRoutes.GET("/genres", routes.GetGenresHandler)

	// Pattern routes
	apiRoutes.GET("/patterns", routes.GetPatternsHandler)
	apiRoutes.POST("/patterns/rebuild", routes.RebuildPatternsHandler, middleware.RequirePermission("pattern.rebuild"))
}
