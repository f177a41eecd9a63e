package utils

import (
	"net/http"
	"time"

	"coursecatalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware logs every request with method, path, status and duration.
// The log level follows the response status.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		} else if status >= 400 {
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		} else {
			logger.Infof("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		}
	}
}

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorResponse logs and sends a standardized error response with HTTP 400 status.
func ErrorResponse(c *gin.Context, err error) {
	logger.Errorf("API Error: %v", err)
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
	})
}

// InternalErrorResponse logs and sends an error response with HTTP 500 status.
// Storage failures and the unguarded single-course lookup surface here.
func InternalErrorResponse(c *gin.Context, err error) {
	logger.Errorf("Internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}
