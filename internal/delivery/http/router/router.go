// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	MovieHandler   *handler.MovieHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	movieHandler   *handler.MovieHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		movieHandler:   params.MovieHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Reads are
// public; every mutation goes through bearer authentication.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/signup", r.userHandler.Signup)
	e.POST("/login", r.userHandler.Login)

	// Movie catalogue routes
	movieGroup := e.Group("/movies")
	{
		movieGroup.GET("", r.movieHandler.List)
		movieGroup.GET("/:id", r.movieHandler.Get)
		movieGroup.POST("", r.movieHandler.Create, auth)
		movieGroup.PUT("/:id", r.movieHandler.Update, auth)
		movieGroup.DELETE("/:id", r.movieHandler.Delete, auth)

		// Review routes, nested under the movie they belong to
		movieGroup.GET("/:id/comments", r.reviewHandler.ListComments)
		movieGroup.POST("/:id/comments", r.reviewHandler.AddComment, auth)
		movieGroup.GET("/:id/ratings", r.reviewHandler.ListRatings)
		movieGroup.POST("/:id/ratings", r.reviewHandler.AddRating, auth)
	}
}
