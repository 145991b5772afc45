package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// AdminAudit records privileged calls before they run. It never aborts.
func AdminAudit(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		attrs := []any{
			"request_id", GetRequestID(c),
			"action", action,
			"client_ip", c.ClientIP(),
		}
		if target := c.Param("name"); target != "" {
			attrs = append(attrs, "target", target)
		}
		slog.Info("admin action", attrs...)
	}
}
