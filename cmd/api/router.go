package main

import (
	"github.com/gin-gonic/gin"

	"github.com/phongnguyen123/treow-physio-sub000/internal/shared/middleware"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Local uploads serve trực tiếp khi không dùng object storage
	if !c.Config.MinIO.Enabled() {
		router.Static("/uploads", c.Config.Storage.UploadDir)
	}

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
	}
}

// ========================================
// PUBLIC ROUTES
// ========================================
// Website pages đọc từ đây, không cần session.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.GetAll)
		posts.GET("/slug/:slug", c.PostHandler.GetBySlug)
	}

	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/slug/:slug", c.AuthorHandler.GetBySlug)
	}

	bookings := v1.Group("/bookings")
	{
		bookings.POST("", c.BookingHandler.Create)
		bookings.GET("/slots", c.BookingHandler.GetTimeSlots)
	}

	news := v1.Group("/newsletter")
	{
		news.POST("/subscribe", c.NewsletterHandler.Subscribe)
		news.GET("/unsubscribe", c.NewsletterHandler.Unsubscribe)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
// Toàn bộ group sau AdminSession middleware.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminSession(c.Sessions))
	{
		adminPosts := admin.Group("/posts")
		{
			adminPosts.GET("", c.PostHandler.GetAllAdmin)
			adminPosts.GET("/:id", c.PostHandler.GetByID)
			adminPosts.POST("", c.PostHandler.Create)
			adminPosts.PUT("/:id", c.PostHandler.Update)
			adminPosts.DELETE("/:id", c.PostHandler.Delete)
		}

		adminAuthors := admin.Group("/authors")
		{
			adminAuthors.POST("", c.AuthorHandler.Create)
			adminAuthors.PUT("/:id", c.AuthorHandler.Update)
			adminAuthors.DELETE("/:id", c.AuthorHandler.Delete)
		}

		adminBookings := admin.Group("/bookings")
		{
			adminBookings.GET("", c.BookingHandler.GetAll)
			adminBookings.GET("/:id", c.BookingHandler.GetByID)
			adminBookings.PUT("/:id", c.BookingHandler.Update)
			adminBookings.PATCH("/:id/status", c.BookingHandler.UpdateStatus)
			adminBookings.DELETE("/:id", c.BookingHandler.Delete)
		}

		adminSubscribers := admin.Group("/subscribers")
		{
			adminSubscribers.GET("", c.NewsletterHandler.GetAll)
			adminSubscribers.DELETE("/:id", c.NewsletterHandler.Delete)
		}

		admin.POST("/newsletter/broadcast", c.NewsletterHandler.Broadcast)

		admin.GET("/seo-settings", c.SettingsHandler.GetSeo)
		admin.PUT("/seo-settings", c.SettingsHandler.UpdateSeo)
		admin.GET("/smtp-settings", c.SettingsHandler.GetSmtp)
		admin.PUT("/smtp-settings", c.SettingsHandler.UpdateSmtp)

		admin.POST("/upload", c.UploadHandler.Upload)
	}
}
