// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petclinic/internal/delivery/http/middleware"
	"petclinic/internal/delivery/http/router/handler"
	"petclinic/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler  *handler.AuthHandler
	OwnerHandler *handler.OwnerHandler
	VetHandler   *handler.VetHandler
	PetHandler   *handler.PetHandler
	UserHandler  *handler.UserHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Owner and vet creation stay public so new clients can register;
// everything else requires a valid token, and the identity CRUD
// additionally requires the ADMIN role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.LoggerMiddleware.Handle)

	authenticate := r.params.AuthMiddleware.Authenticate
	requireAdmin := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/login", r.params.AuthHandler.Login)
	e.POST("/logout", r.params.AuthHandler.Logout, authenticate)

	ownerGroup := e.Group("/owner")
	{
		ownerGroup.POST("", r.params.OwnerHandler.Create)
		ownerGroup.GET("", r.params.OwnerHandler.GetAll, authenticate)
		ownerGroup.GET("/:id", r.params.OwnerHandler.GetOne, authenticate)
		ownerGroup.PUT("/:id", r.params.OwnerHandler.Update, authenticate)
		ownerGroup.DELETE("/:id", r.params.OwnerHandler.Delete, authenticate)
	}

	vetGroup := e.Group("/vet")
	{
		vetGroup.POST("", r.params.VetHandler.Create)
		vetGroup.GET("", r.params.VetHandler.GetAll, authenticate)
		vetGroup.GET("/:id", r.params.VetHandler.GetOne, authenticate)
		vetGroup.PUT("/:id", r.params.VetHandler.Update, authenticate)
		vetGroup.DELETE("/:id", r.params.VetHandler.Delete, authenticate)
	}

	petGroup := e.Group("/pet")
	petGroup.Use(authenticate)
	{
		petGroup.POST("", r.params.PetHandler.Create)
		petGroup.GET("", r.params.PetHandler.GetAll)
		petGroup.GET("/:id", r.params.PetHandler.GetOne)
		petGroup.PUT("/:id", r.params.PetHandler.Update)
		petGroup.DELETE("/:id", r.params.PetHandler.Delete)
	}

	userGroup := e.Group("/user")
	userGroup.Use(authenticate)
	userGroup.Use(requireAdmin)
	{
		userGroup.POST("", r.params.UserHandler.Create)
		userGroup.GET("", r.params.UserHandler.GetAll)
		userGroup.GET("/:id", r.params.UserHandler.GetOne)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete)
	}
}
