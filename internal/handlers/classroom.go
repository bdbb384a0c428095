package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/dto"
	"github.com/yukikurage/piyuclean-api/internal/services"
	"github.com/yukikurage/piyuclean-api/internal/utils"
)

type ClassroomHandler struct {
	classroomService *services.ClassroomService
}

func NewClassroomHandler(classroomService *services.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{
		classroomService: classroomService,
	}
}

func (h *ClassroomHandler) ListClassrooms(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	classrooms, total, err := h.classroomService.ListClassrooms(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassroomListResponse(classrooms, dto.NewPagination(params, total)))
}

func (h *ClassroomHandler) GetClassroom(c *gin.Context) {
	classroom, err := h.classroomService.GetClassroom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassroomDTO(*classroom))
}

func (h *ClassroomHandler) CreateClassroom(c *gin.Context) {
	type CreateClassroomRequest struct {
		ID            string `json:"id"`
		ClassroomCode string `json:"classroomId" binding:"required"`
		Name          string `json:"name" binding:"required"`
		Description   string `json:"description"`
	}

	var req CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	classroom, err := h.classroomService.CreateClassroom(c.Request.Context(), services.ClassroomInput{
		ID:            req.ID,
		ClassroomCode: req.ClassroomCode,
		Name:          req.Name,
		Description:   req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassroomDTO(*classroom))
}

func (h *ClassroomHandler) UpdateClassroom(c *gin.Context) {
	type UpdateClassroomRequest struct {
		ClassroomCode *string `json:"classroomId"`
		Name          *string `json:"name"`
		Description   *string `json:"description"`
	}

	var req UpdateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	classroom, err := h.classroomService.UpdateClassroom(c.Request.Context(), c.Param("id"), services.UpdateClassroomInput{
		ClassroomCode: req.ClassroomCode,
		Name:          req.Name,
		Description:   req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassroomDTO(*classroom))
}

func (h *ClassroomHandler) DeleteClassroom(c *gin.Context) {
	if err := h.classroomService.DeleteClassroom(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Classroom deleted successfully",
	})
}
