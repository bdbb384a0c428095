package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/constants"
	apierrors "github.com/yukikurage/piyuclean-api/internal/errors"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/services"
)

// RequireAssignmentAccess loads the assignment named by the :id parameter.
// Admins see every assignment; students only those they are assigned to.
func RequireAssignmentAccess(assignmentService *services.AssignmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		a, err := assignmentService.GetAssignment(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrAssignmentNotFound) {
				apierrors.NotFound(c, "Assignment not found")
			} else {
				apierrors.InternalError(c, "Failed to load assignment")
			}
			c.Abort()
			return
		}

		// Return 404 instead of 403 to avoid leaking assignment existence
		if !principal.IsAdmin() && !a.HasStudent(principal.ID) {
			apierrors.NotFound(c, "Assignment not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAssignment, *a)
		c.Next()
	}
}

// GetAssignment retrieves the assignment set by RequireAssignmentAccess
func GetAssignment(c *gin.Context) (models.Assignment, bool) {
	value, exists := c.Get(constants.ContextKeyAssignment)
	if !exists {
		return models.Assignment{}, false
	}
	a, ok := value.(models.Assignment)
	return a, ok
}
