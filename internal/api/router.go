package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-arranger/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/magda-arranger/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-arranger/internal/config"
	"github.com/Conceptual-Machines/magda-arranger/internal/theory"
)

// recognizerConfig maps the env-level arranger settings onto the
// recognizer, keeping defaults for unset values
func recognizerConfig(cfg *config.Config) theory.RecognizerConfig {
	rcfg := theory.DefaultRecognizerConfig()
	if cfg.MinChordNotes > 0 {
		rcfg.MinNotes = cfg.MinChordNotes
	}
	if cfg.SplitPoint > 0 {
		rcfg.SplitPoint = cfg.SplitPoint
	}
	if cfg.GroupToleranceMS > 0 {
		rcfg.GroupToleranceMS = cfg.GroupToleranceMS
	}
	return rcfg
}

// SetupRouter wires the HTTP host surface for the arranger core
func SetupRouter(cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck)
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{"version": version})
	})

	rcfg := recognizerConfig(cfg)

	v1 := router.Group("/api/v1")
	{
		// Stateless harmonic tools
		harmonyHandler := handlers.NewHarmonyHandler(rcfg)
		v1.POST("/recognize", harmonyHandler.Recognize)
		v1.POST("/voicing", harmonyHandler.AllocateVoicing)

		harmonyGroup := v1.Group("/harmony")
		{
			harmonyGroup.POST("/substitutions", handlers.Substitutions)
			harmonyGroup.POST("/tension", handlers.Tension)
			harmonyGroup.POST("/complexity", handlers.Complexity)
			harmonyGroup.POST("/colors", handlers.Colors)
		}

		// Style table (read-only)
		v1.GET("/styles", handlers.ListStyles)
		v1.GET("/styles/:id", handlers.GetStyle)

		// Arranger sessions
		sessionHandler := handlers.NewSessionHandler(rcfg)
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.GET("/:id/state", sessionHandler.GetState)
			sessions.POST("/:id/commands", sessionHandler.DispatchCommand)
			sessions.GET("/:id/voicing", sessionHandler.GetVoicing)
			sessions.POST("/:id/render", sessionHandler.RenderParts)
			sessions.POST("/:id/daw-sync", sessionHandler.SyncFromDAW)
			sessions.POST("/:id/ack-flags", sessionHandler.AckSectionFlags)
		}
	}

	return router
}
