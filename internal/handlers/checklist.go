package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/dto"
	"github.com/yukikurage/piyuclean-api/internal/services"
	"github.com/yukikurage/piyuclean-api/internal/utils"
)

type ChecklistHandler struct {
	checklistService *services.ChecklistService
}

func NewChecklistHandler(checklistService *services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService: checklistService,
	}
}

func (h *ChecklistHandler) ListChecklists(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	checklists, total, err := h.checklistService.ListChecklists(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChecklistListResponse(checklists, dto.NewPagination(params, total)))
}

func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	checklist, err := h.checklistService.GetChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChecklistDTO(*checklist))
}

func (h *ChecklistHandler) CreateChecklist(c *gin.Context) {
	type CreateChecklistRequest struct {
		ID          string   `json:"id"`
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description"`
		TaskIDs     []string `json:"taskIds"`
	}

	var req CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	checklist, err := h.checklistService.CreateChecklist(c.Request.Context(), services.ChecklistInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		TaskIDs:     req.TaskIDs,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChecklistDTO(*checklist))
}

// UpdateChecklist updates the fields present in the body. A taskIds array
// replaces the whole task list in the given order.
func (h *ChecklistHandler) UpdateChecklist(c *gin.Context) {
	type UpdateChecklistRequest struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		TaskIDs     *[]string `json:"taskIds"`
	}

	var req UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	checklist, err := h.checklistService.UpdateChecklist(c.Request.Context(), c.Param("id"), services.UpdateChecklistInput{
		Name:        req.Name,
		Description: req.Description,
		TaskIDs:     req.TaskIDs,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChecklistDTO(*checklist))
}

func (h *ChecklistHandler) DeleteChecklist(c *gin.Context) {
	if err := h.checklistService.DeleteChecklist(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checklist deleted successfully",
	})
}
