// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campus/config"
	"campus/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	ChatHandler         *handler.ChatHandler
	SessionHandler      *handler.SessionHandler
	ReviewHandler       *handler.ReviewHandler
	FavoriteHandler     *handler.FavoriteHandler
	NotificationHandler *handler.NotificationHandler
	TestHandler         *handler.TestHandler
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	chatHandler         *handler.ChatHandler
	sessionHandler      *handler.SessionHandler
	reviewHandler       *handler.ReviewHandler
	favoriteHandler     *handler.FavoriteHandler
	notificationHandler *handler.NotificationHandler
	testHandler         *handler.TestHandler
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		chatHandler:         params.ChatHandler,
		sessionHandler:      params.SessionHandler,
		reviewHandler:       params.ReviewHandler,
		favoriteHandler:     params.FavoriteHandler,
		notificationHandler: params.NotificationHandler,
		testHandler:         params.TestHandler,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Catalog and search routes
	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.GetCatalog)
		catalogGroup.GET("/search", r.catalogHandler.Search)
	}

	// Place detail and locator QR routes
	placesGroup := apiV1.Group("/places")
	{
		placesGroup.GET("/:id", r.catalogHandler.GetPlace)
		placesGroup.GET("/:id/qr", r.catalogHandler.GetPlaceQR)
	}

	// Review routes hang off the generic entity id
	entitiesGroup := apiV1.Group("/entities")
	{
		entitiesGroup.GET("/:id/reviews", r.reviewHandler.GetReviews)
		entitiesGroup.POST("/:id/reviews", r.reviewHandler.SubmitReview)
	}

	// Session identity routes
	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.GET("", r.sessionHandler.GetCurrent)
	}

	// Favorite routes
	favoritesGroup := apiV1.Group("/favorites")
	{
		favoritesGroup.GET("", r.favoriteHandler.List)
		favoritesGroup.POST("/:id/toggle", r.favoriteHandler.Toggle)
	}

	// Chat assistant routes
	chatGroup := apiV1.Group("/chat/conversations")
	{
		chatGroup.POST("", r.chatHandler.StartConversation)
		chatGroup.GET("/:id", r.chatHandler.GetHistory)
		chatGroup.POST("/:id/messages", r.chatHandler.SendMessage)
	}

	// Notification queue routes
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.DELETE("/:id", r.notificationHandler.Dismiss)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/error", r.testHandler.TestError)
	}
}
