package handlers

import (
	"net/http"

	"fixmate/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency check; 503 when any dependency is down.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
}
