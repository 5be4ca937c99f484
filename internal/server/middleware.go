package server

import (
	"net/http"
	"time"

	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// Role is the caller's access level, resolved once per request by
// ResolveRole and never re-derived downstream.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

const roleContextKey = "auth.role"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// ResolveRole assigns the request its role from the X-Admin-Token
// header. An empty configured token disables admin access entirely.
func ResolveRole(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleUser
		if adminToken != "" && c.GetHeader("X-Admin-Token") == adminToken {
			role = RoleAdmin
		}
		c.Set(roleContextKey, role)
		c.Next()
	}
}

// RoleFrom returns the role ResolveRole stored on the request.
func RoleFrom(c *gin.Context) Role {
	if v, ok := c.Get(roleContextKey); ok {
		if role, ok := v.(Role); ok {
			return role
		}
	}
	return RoleUser
}

// RequireAdmin aborts with 403 unless the request carries the admin role.
func RequireAdmin(c *gin.Context) {
	if RoleFrom(c) != RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status":  http.StatusForbidden,
			"message": "admin access required",
		})
		return
	}
	c.Next()
}
