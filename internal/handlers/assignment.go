package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/dto"
	apierrors "github.com/yukikurage/piyuclean-api/internal/errors"
	"github.com/yukikurage/piyuclean-api/internal/middleware"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/services"
	"github.com/yukikurage/piyuclean-api/internal/utils"
)

type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// listInput reads the shared list filters: date, from, to, classroomId,
// status and studentId.
func listInput(c *gin.Context) (services.ListAssignmentsInput, bool) {
	input := services.ListAssignmentsInput{
		ClassroomID: c.Query("classroomId"),
		Status:      c.Query("status"),
		StudentID:   c.Query("studentId"),
	}

	var err error
	if input.Date, err = utils.DateQuery(c, "date"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return input, false
	}
	if input.From, err = utils.DateQuery(c, "from"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return input, false
	}
	if input.To, err = utils.DateQuery(c, "to"); err != nil {
		apierrors.BadRequest(c, err.Error())
		return input, false
	}
	return input, true
}

// ListAssignments returns stored assignments, newest date first
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	input, ok := listInput(c)
	if !ok {
		return
	}
	params := utils.GetPaginationParams(c)
	input.Pagination = params

	assignments, total, err := h.assignmentService.ListAssignments(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentListResponse(assignments, dto.NewPagination(params, total)))
}

// ListExpanded returns one row per student and task of every matching assignment
func (h *AssignmentHandler) ListExpanded(c *gin.Context) {
	input, ok := listInput(c)
	if !ok {
		return
	}

	rows, err := h.assignmentService.ListExpanded(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpandedRowListResponse(rows))
}

// GetAssignment returns the assignment loaded by RequireAssignmentAccess
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	a, exists := middleware.GetAssignment(c)
	if !exists {
		apierrors.InternalError(c, "Assignment not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTO(a))
}

// CreateAssignment stores a new assignment in the assigned state
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	type CreateAssignmentRequest struct {
		ID          string   `json:"id"`
		Date        string   `json:"date" binding:"required,isodate"`
		ClassroomID string   `json:"classroomId" binding:"required"`
		ChecklistID string   `json:"checklistId" binding:"required"`
		StudentIDs  []string `json:"studentIds"`
		Comments    *string  `json:"comments"`
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	a, err := h.assignmentService.CreateAssignment(c.Request.Context(), services.CreateAssignmentInput{
		ID:          req.ID,
		Date:        date,
		ClassroomID: req.ClassroomID,
		ChecklistID: req.ChecklistID,
		StudentIDs:  req.StudentIDs,
		Comments:    req.Comments,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentDTO(*a))
}

// CreateRandomAssignment assigns a random sample of active students
func (h *AssignmentHandler) CreateRandomAssignment(c *gin.Context) {
	type RandomAssignmentRequest struct {
		Date         string  `json:"date" binding:"required,isodate"`
		ClassroomID  string  `json:"classroomId" binding:"required"`
		ChecklistID  string  `json:"checklistId" binding:"required"`
		Count        int     `json:"count" binding:"required,min=1"`
		Seed         *int64  `json:"seed"`
		ClassSection string  `json:"classSection"`
		Comments     *string `json:"comments"`
	}

	var req RandomAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	a, seed, err := h.assignmentService.CreateRandomAssignment(c.Request.Context(), services.RandomAssignmentInput{
		Date:         date,
		ClassroomID:  req.ClassroomID,
		ChecklistID:  req.ChecklistID,
		Count:        req.Count,
		Seed:         req.Seed,
		ClassSection: req.ClassSection,
		Comments:     req.Comments,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RandomAssignmentDTO{
		AssignmentDTO: dto.ToAssignmentDTO(*a),
		Seed:          seed,
	})
}

// UpdateStatus changes the status of an assignment and so of all its rows
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status      string     `json:"status" binding:"required"`
		CompletedAt *time.Time `json:"completedAt"`
		Comments    *string    `json:"comments"`
		Version     *int64     `json:"version"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	a, err := h.assignmentService.UpdateStatus(c.Request.Context(), c.Param("id"), services.UpdateStatusInput{
		Status:      req.Status,
		CompletedAt: req.CompletedAt,
		Comments:    req.Comments,
		Version:     req.Version,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTO(*a))
}

// MarkComplete completes an assignment for every student on it
func (h *AssignmentHandler) MarkComplete(c *gin.Context) {
	a, err := h.assignmentService.MarkComplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTO(*a))
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	if err := h.assignmentService.DeleteAssignment(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment deleted successfully",
	})
}

// SweepOverdue marks open assignments from past days as overdue
func (h *AssignmentHandler) SweepOverdue(c *gin.Context) {
	swept, err := h.assignmentService.SweepOverdue(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated": swept,
	})
}

// ListMyAssignments returns the caller's own rows
func (h *AssignmentHandler) ListMyAssignments(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	input, ok := listInput(c)
	if !ok {
		return
	}

	rows, err := h.assignmentService.ListExpandedForStudent(c.Request.Context(), principal.ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpandedRowListResponse(rows))
}

// MarkMyComplete completes an assignment the caller is assigned to
func (h *AssignmentHandler) MarkMyComplete(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	a, err := h.assignmentService.MarkCompleteForStudent(c.Request.Context(), c.Param("id"), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTO(*a))
}
