package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedHeaders = "Content-Type, " +
	"Content-Length, " +
	"Accept-Encoding, " +
	"X-Request-ID, " +
	"accept, origin, " +
	"Cache-Control, " +
	"X-Requested-With"

func CorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Pinger reports whether a dependency is reachable
type Pinger func(ctx context.Context) error

const healthCheckTimeout = 5 * time.Second

// HealthCheck returns the health status of the API
// @Summary Health Check
// @Description Check that the API is running and the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /healthz [get]
func HealthCheck(env string, database Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		status := http.StatusOK
		dbCheck := gin.H{"status": "healthy"}

		start := time.Now()
		if err := database(ctx); err != nil {
			status = http.StatusServiceUnavailable
			dbCheck = gin.H{"status": "unhealthy", "error": err.Error()}
		}
		dbCheck["response_time"] = time.Since(start).String()

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}

		c.JSON(status, gin.H{
			"status":      overall,
			"environment": env,
			"timestamp":   time.Now().UTC(),
			"checks":      gin.H{"database": dbCheck},
		})
	}
}
