// Package router registers the API routes.
package router

import (
	"afrimart/internal/delivery/api/middleware"
	"afrimart/internal/delivery/api/router/handler"
	"afrimart/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	CompareHandler  *handler.CompareHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

type router struct {
	locationHandler *handler.LocationHandler
	compareHandler  *handler.CompareHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		compareHandler:  params.CompareHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	me := apiV1.Group("/me")
	{
		me.POST("/location", r.locationHandler.SaveLocation)
		me.GET("/location", r.locationHandler.GetLocation)
		me.GET("/location/display", r.locationHandler.GetDisplay)

		me.GET("/compare", r.compareHandler.List)
		me.POST("/compare", r.compareHandler.Add)
		me.DELETE("/compare", r.compareHandler.Clear)
		me.DELETE("/compare/:productId", r.compareHandler.Remove)
	}

	support := apiV1.Group("/support")
	support.Use(r.authMiddleware.RequireRole(constants.RoleSupport))
	{
		support.GET("/users/:userId/location", r.locationHandler.GetUserLocation)
	}
}
