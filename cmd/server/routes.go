package main

import (
	"github.com/gin-gonic/gin"
	"aeronest.backend/internal/interfaces/http/handlers"
	"aeronest.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	orderHandler   *handlers.OrderHandler
	addressHandler *handlers.AddressHandler
	catalogHandler *handlers.CatalogHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
	rateLimit      gin.HandlerFunc
	adminRateLimit gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Customer-facing surface, per-IP rate limited
		api := v1.Group("", d.rateLimit)
		{
			// Auth routes (public)
			auth := api.Group("/auth")
			{
				auth.POST("/register", d.authHandler.Register)
				auth.POST("/login", d.authHandler.Login)
				auth.POST("/refresh", d.authHandler.RefreshToken)
				auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			}

			// Storefront routes (public)
			api.GET("/catalog", d.catalogHandler.ListEntries)
			api.GET("/items", d.catalogHandler.ListItems)
			api.GET("/partners", d.catalogHandler.ListPartners)

			// Wallet and address routes (protected)
			user := api.Group("/user")
			user.Use(d.authMiddleware)
			{
				user.GET("/balance", d.userHandler.GetBalance)
				user.POST("/balance/deduct", d.userHandler.DeductBalance)

				user.GET("/addresses", d.addressHandler.List)
				user.POST("/addresses", d.addressHandler.Create)
				user.DELETE("/addresses/:id", d.addressHandler.Delete)
			}

			// Order routes (protected)
			orders := api.Group("/orders")
			orders.Use(d.authMiddleware)
			{
				orders.POST("/create", d.orderHandler.Create)
				orders.GET("/my", d.orderHandler.My)
				orders.GET("/active", d.orderHandler.Active)
			}
		}

		// Admin routes (protected, ADMIN role, wider rate budget for
		// the back-office polling)
		admin := v1.Group("/admin")
		admin.Use(d.adminRateLimit, d.authMiddleware, middleware.RequireAdmin())
		{
			admin.PATCH("/orders/:id", d.adminHandler.UpdateOrderStatus)
			admin.GET("/orders/recent", d.adminHandler.RecentOrders)
			admin.GET("/orders/stats", d.adminHandler.OrderStats)
			admin.GET("/dashboard/stats", d.adminHandler.DashboardStats)
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/referrals", d.adminHandler.ListReferrals)
			admin.POST("/referrals", d.adminHandler.CreateReferral)
		}
	}
}
