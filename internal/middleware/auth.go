package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/constants"
	apierrors "github.com/yukikurage/piyuclean-api/internal/errors"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID   string
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == constants.RoleAdmin
}

func (p Principal) IsStudent() bool {
	return p.Role == constants.RoleStudent
}

// RequireAuth checks the session and places the caller's Principal on the context
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(constants.ContextKeyUserID).(string)
		role, _ := session.Get(constants.ContextKeyRole).(string)

		if userID == "" || role == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		SetPrincipal(c, Principal{ID: userID, Role: role})
		c.Next()
	}
}

// SetPrincipal stores p on the context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
	c.Set(constants.ContextKeyUserID, p.ID)
	c.Set(constants.ContextKeyRole, p.Role)
}

// GetPrincipal retrieves the caller set by RequireAuth
func GetPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return Principal{}, false
	}

	p, ok := value.(Principal)
	if !ok || p.ID == "" {
		return Principal{}, false
	}
	return p, true
}
