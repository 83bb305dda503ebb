package handlers

import (
	"net/http"
	"time"

	"reelkit-api/repository"

	"github.com/gin-gonic/gin"
)

// Root returns the service banner.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "ReelKit API"})
}

// HealthCheck returns health status for uptime monitoring and load balancers.
// storeKind names the active document store backend ("postgres" or "memory").
func HealthCheck(storeKind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"store":     storeKind,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	}
}

// Schema lists the logical collections this service persists.
func Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": repository.Collections()})
}
