package router

import (
	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/anonto42/nano-midea/relations/internal/handlers"
	"github.com/anonto42/nano-midea/relations/internal/services"
	"github.com/anonto42/nano-midea/relations/pkg/logger"
	"github.com/labstack/echo/v4"
)

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, reg *services.Registry, pub events.Publisher) {
	l := logger.L()

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")

	// Follow routes
	followHandler := handlers.NewFollowHandler(reg.Follows(), pub)
	followHandler.RegisterFollowRoutes(api)
	l.Debug().Msg("follow routes configured")

	// Bookmark routes
	bookmarkHandler := handlers.NewBookmarkHandler(reg.Bookmarks(), pub)
	bookmarkHandler.RegisterBookmarkRoutes(api)
	l.Debug().Msg("bookmark routes configured")

	// Dislike routes
	dislikeHandler := handlers.NewDislikeHandler(reg.Dislikes(), pub)
	dislikeHandler.RegisterDislikeRoutes(api)
	l.Debug().Msg("dislike routes configured")

	// Message routes
	messageHandler := handlers.NewMessageHandler(reg.Messages(), pub)
	messageHandler.RegisterMessageRoutes(api)
	l.Debug().Msg("message routes configured")

	l.Info().Int("routes", len(e.Routes())).Msg("all routes configured")
}
