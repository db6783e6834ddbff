package query

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthLive handles GET /api/v1/health/live.
func (s *Server) HealthLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HealthReady handles GET /api/v1/health/ready. Readiness requires a live
// database connection.
func (s *Server) HealthReady(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
