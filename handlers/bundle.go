package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers registered by routes.
type HandlerBundle struct {
	// Intake endpoints
	IntakeHandler  gin.HandlerFunc
	ConfirmHandler gin.HandlerFunc

	// Operational endpoints
	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}
