package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// getClientIP keys rate limits and request logs. Forwarding headers are only honored
// when the direct peer is one of the engine's trusted proxies, so a client cannot pick
// its own limiter bucket by sending X-Forwarded-For.
func getClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
