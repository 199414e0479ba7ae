// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	OfferHandler     *handler.OfferHandler
	OrderHandler     *handler.OrderHandler
	ReviewHandler    *handler.ReviewHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	offerHandler     *handler.OfferHandler
	orderHandler     *handler.OrderHandler
	reviewHandler    *handler.ReviewHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		profileHandler:   params.ProfileHandler,
		offerHandler:     params.OfferHandler,
		orderHandler:     params.OrderHandler,
		reviewHandler:    params.ReviewHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authed := r.authMiddleware.Authenticate

	// Auth routes
	api.POST("/registration", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)

	// Profile routes: reading is public, writing is owner-only
	api.GET("/profile/:id", r.profileHandler.GetProfile)
	api.PATCH("/profile/:id", r.profileHandler.UpdateProfile, authed)
	api.GET("/profiles/business", r.profileHandler.ListBusinessProfiles)
	api.GET("/profiles/customer", r.profileHandler.ListCustomerProfiles)

	// Offer routes: browsing is public, publishing requires a business account
	api.GET("/offers", r.offerHandler.ListOffers)
	api.POST("/offers", r.offerHandler.CreateOffer, authed)
	api.GET("/offers/:id", r.offerHandler.GetOffer, authed)
	api.PATCH("/offers/:id", r.offerHandler.UpdateOffer, authed)
	api.DELETE("/offers/:id", r.offerHandler.DeleteOffer, authed)
	api.GET("/offerdetails/:id", r.offerHandler.GetOfferDetail)

	// Order routes: every order endpoint is participant-scoped
	api.GET("/orders", r.orderHandler.ListOrders, authed)
	api.POST("/orders", r.orderHandler.CreateOrder, authed)
	api.GET("/orders/:id", r.orderHandler.GetOrder, authed)
	api.PATCH("/orders/:id", r.orderHandler.UpdateOrderStatus, authed)
	api.DELETE("/orders/:id", r.orderHandler.DeleteOrder, authed)
	api.GET("/order-count/:id", r.orderHandler.CountInProgressOrders)
	api.GET("/completed-order-count/:id", r.orderHandler.CountCompletedOrders)

	// Review routes: reading is public, writing requires a customer account
	api.GET("/reviews", r.reviewHandler.ListReviews)
	api.POST("/reviews", r.reviewHandler.CreateReview, authed)
	api.GET("/reviews/:id", r.reviewHandler.GetReview)
	api.PATCH("/reviews/:id", r.reviewHandler.UpdateReview, authed)
	api.DELETE("/reviews/:id", r.reviewHandler.DeleteReview, authed)

	// Public aggregate figures
	api.GET("/base-info", r.dashboardHandler.BaseInfo)
}
