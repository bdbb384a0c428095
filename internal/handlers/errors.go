package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/piyuclean-api/internal/constants"
	apierrors "github.com/yukikurage/piyuclean-api/internal/errors"
	"github.com/yukikurage/piyuclean-api/internal/services"
)

// respondServiceError maps a service error onto the API error envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	// 400
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrInvalidAccountStatus),
		errors.Is(err, services.ErrDateRequired),
		errors.Is(err, services.ErrNoStudents),
		errors.Is(err, services.ErrEmptyChecklist),
		errors.Is(err, services.ErrUnknownStudent),
		errors.Is(err, services.ErrInvalidClassroom),
		errors.Is(err, services.ErrInvalidChecklist),
		errors.Is(err, services.ErrUnknownTask),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNotEnoughStudents),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrRangeTooLong),
		errors.Is(err, services.ErrGenerateTextRequired):
		apierrors.BadRequest(c, err.Error())

	// 401 / 403
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrNotAssignedStudent):
		apierrors.Forbidden(c, err.Error())

	// 404
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrClassroomNotFound),
		errors.Is(err, services.ErrCleaningTaskNotFound),
		errors.Is(err, services.ErrChecklistNotFound):
		apierrors.NotFound(c, err.Error())

	// 409
	case errors.Is(err, services.ErrVersionConflict):
		apierrors.VersionConflict(c, err.Error())
	case errors.Is(err, services.ErrReferenceInUse):
		apierrors.ReferenceInUse(c, err.Error())
	case errors.Is(err, services.ErrCompletedIsTerminal),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrAssignmentExists),
		errors.Is(err, services.ErrStudentCodeTaken),
		errors.Is(err, services.ErrClassroomCodeTaken),
		errors.Is(err, services.ErrTaskNameTaken),
		errors.Is(err, services.ErrChecklistNameTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrLastActiveAdmin):
		apierrors.Conflict(c, err.Error())

	// 502 / 503
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, "AI service is not configured. Please set OPENAI_API_KEY environment variable.")
	case errors.Is(err, services.ErrAINoTasksGenerated),
		errors.Is(err, services.ErrAINoValidTasks):
		apierrors.RespondWithError(c, http.StatusBadGateway, apierrors.NewAPIError(apierrors.ErrCodeServiceUnavailable, err.Error()))
	case errors.Is(err, context.DeadlineExceeded):
		apierrors.ServiceUnavailable(c, "Request timed out")

	default:
		log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		apierrors.InternalError(c, "")
	}
}

// respondBindError reports a request that failed to bind. Validation
// failures list the offending fields.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	apierrors.BadRequestWithDetails(c, "Invalid request body", fields)
}
