package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wastetrack/pkg/utils"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		userRole := role.(string)

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware("admin")
}

func CitizenOnly() gin.HandlerFunc {
	return RoleMiddleware("citizen")
}

func IndustryOnly() gin.HandlerFunc {
	return RoleMiddleware("industry")
}

func CollectorOnly() gin.HandlerFunc {
	return RoleMiddleware("pickup_agent", "admin")
}
