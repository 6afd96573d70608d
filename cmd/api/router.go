package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recipeblog-backend/internal/shared/middleware"
	"recipeblog-backend/pkg/container"

	"github.com/gin-gonic/gin"
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

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupUserRoutes(v1, c)
		setupBlogRoutes(v1, c)
	}

	return router
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		// Public auth endpoints
		users.POST("/register", c.UserHandler.Register)
		users.POST("/login", c.UserHandler.Login)

		// Protected profile endpoints
		me := users.Group("")
		me.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			me.GET("/me", c.UserHandler.GetProfile)
			me.PUT("/me", c.UserHandler.UpdateProfile)
		}
	}
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Public read endpoints
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.ListBlogs)
		blogs.GET("/:id", c.BlogHandler.GetBlog)
	}

	// Protected mutation endpoints
	authBlogs := v1.Group("/blogs")
	authBlogs.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authBlogs.GET("/my-blogs", c.BlogHandler.ListMyBlogs)
		authBlogs.POST("", c.BlogHandler.CreateBlog)
		authBlogs.PUT("/:id", c.BlogHandler.UpdateBlog)
		authBlogs.DELETE("/:id", c.BlogHandler.DeleteBlog)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
