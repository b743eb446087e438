package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medialoc/crm-go/config"
	"github.com/medialoc/crm-go/response"
	"github.com/medialoc/crm-go/types"
)

// RequireRoles admits only sessions whose role appears in the grant list.
// Grant lists come from the role policy (config/roles.yaml).
func RequireRoles(roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	}
}

func Admin() gin.HandlerFunc {
	return RequireRoles(config.Roles.Admin)
}

func DeliveryHead() gin.HandlerFunc {
	return RequireRoles(config.Roles.DeliveryHead)
}
