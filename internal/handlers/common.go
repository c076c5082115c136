package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxfile-api/internal/logger"
)

// CommonServices holds shared dependencies used across handlers
type CommonServices struct {
	// efin is the electronic filing identification number attached to
	// calculation metadata. It never affects calculation or validation.
	efin string
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(efin string) *CommonServices {
	return &CommonServices{efin: efin}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// sendError logs the error and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Success: false, Error: message})
}

// sendSuccess sends a JSON success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
