// Package router contains routing setup for the HTTP delivery.
package router

import (
	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	EventHandler    *handler.EventHandler
	ReminderHandler *handler.ReminderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	eventHandler    *handler.EventHandler
	reminderHandler *handler.ReminderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		eventHandler:    params.EventHandler,
		reminderHandler: params.ReminderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/ping", handler.Ping)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
		authGroup.POST("/profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	userGroup := api.Group("/users")
	{
		// Listing is the one open endpoint in this group.
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/:username", r.userHandler.GetByUsername, r.authMiddleware.Authenticate)
		userGroup.POST("", r.userHandler.Create, r.authMiddleware.Authenticate)
		userGroup.PUT("/:id", r.userHandler.Edit, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.Delete, r.authMiddleware.Authenticate)
	}

	eventGroup := api.Group("/events")
	{
		// Listing and reading events is open; mutations require a session.
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/:code", r.eventHandler.Get)
		eventGroup.POST("", r.eventHandler.Create, r.authMiddleware.Authenticate)
		eventGroup.PUT("/:code", r.eventHandler.Update, r.authMiddleware.Authenticate)
		eventGroup.DELETE("/:code", r.eventHandler.Delete, r.authMiddleware.Authenticate)
	}

	reminderGroup := api.Group("/reminders")
	reminderGroup.Use(r.authMiddleware.Authenticate)
	{
		reminderGroup.GET("", r.reminderHandler.List)
		reminderGroup.POST("", r.reminderHandler.Create)
		reminderGroup.PUT("/:code", r.reminderHandler.Update)
		reminderGroup.DELETE("/:code", r.reminderHandler.Delete)
	}
}
