package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"satfab.io/satfab/internal/api/middleware"
	"satfab.io/satfab/internal/api/query"
	"satfab.io/satfab/internal/config"
)

func newRouter(cfg *config.Config, server *query.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(corsMiddleware(cfg.Server.CORSOrigins))

	v1 := router.Group("/api/v1")

	// Public routes.
	v1.POST("/auth/login", server.Login)
	v1.GET("/health/live", server.HealthLive)
	v1.GET("/health/ready", server.HealthReady)

	// Authenticated routes. The contract endpoint does its own per-operation
	// role checks on top of token validation.
	authed := v1.Group("", middleware.JWTAuth(signingKey))
	authed.GET("/auth/me", server.Me)
	authed.POST("/query", server.Execute)

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}
