package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookvault-backend/internal/shared/middleware"
	"bookvault-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
	)

	r.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "up",
			"version": c.Config.App.Version,
		})
	})

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}

	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.GET("/by-name/:name", c.BookHandler.GetBookByName)
		books.GET("/sort/:field", c.BookHandler.SortBooks)
		books.GET("/search/:query", c.BookHandler.SearchBooks)
		books.GET("/pagination", c.BookHandler.ListBooksPage)

		admin := books.Group("")
		admin.Use(
			middleware.Authenticate(c.JWT),
			middleware.RequireRole(middleware.RoleAdmin),
		)
		{
			admin.POST("", c.BookHandler.CreateBook)
			admin.PUT("/:id", c.BookHandler.UpdateBook)
			admin.POST("/:id/logo", c.BookHandler.UploadLogo)
			admin.DELETE("/:id", c.BookHandler.DeleteBook)
		}
	}

	authenticated := v1.Group("")
	authenticated.Use(
		middleware.Authenticate(c.JWT),
		middleware.RequireRole(middleware.RoleUser),
	)
	{
		cart := authenticated.Group("/cart")
		{
			cart.POST("/items", c.CartHandler.AddToCart)
			cart.GET("/items", c.CartHandler.GetCartItems)
			cart.DELETE("/items/:id", c.CartHandler.RemoveFromCart)
			cart.DELETE("/items", c.CartHandler.ClearCart)
		}

		wishlist := authenticated.Group("/wishlist")
		{
			wishlist.POST("", c.WishlistHandler.AddToWishlist)
			wishlist.GET("", c.WishlistHandler.GetWishlist)
			wishlist.DELETE("/:id", c.WishlistHandler.RemoveFromWishlist)
		}

		orders := authenticated.Group("/orders")
		{
			orders.POST("", c.OrderHandler.PlaceOrder)
			orders.GET("", c.OrderHandler.ListOrders)
			orders.GET("/:id", c.OrderHandler.GetOrder)
			orders.POST("/:id/cancel", c.OrderHandler.CancelOrder)
		}
	}

	return r
}
