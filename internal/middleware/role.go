package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/piyuclean-api/internal/errors"
)

// RequireRole lets the request through only when the caller has one of roles.
// It must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Your role cannot perform this action")
		c.Abort()
	}
}
