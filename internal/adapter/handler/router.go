package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Router holds all handlers
type Router struct {
	system   *System
	coaching *Coaching
	analysis *Analysis
}

// NewRouter creates a new router with all handlers
func NewRouter(system *System, coaching *Coaching, analysis *Analysis) *Router {
	return &Router{
		system:   system,
		coaching: coaching,
		analysis: analysis,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.system.Health)
	e.GET("/config", rt.system.Config)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/api/v1")

	rt.setupSessionRoutes(v1)
	rt.setupAnalysisRoutes(v1)
}

// setupSessionRoutes configures live coaching routes
func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessions := g.Group("/sessions")
	sessions.POST("", rt.coaching.CreateSession)
	sessions.GET("/:id", rt.coaching.GetSession)
	sessions.POST("/:id/ingest", rt.coaching.Ingest)
}

// setupAnalysisRoutes configures media analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	g.POST("/analyze-interview", rt.analysis.AnalyzeInterview)
	g.POST("/uploads", rt.analysis.CreateUploadURL)
	g.POST("/analyses", rt.analysis.AnalyzeStored)
	g.GET("/analyses/:id", rt.analysis.GetAnalysis)
}
