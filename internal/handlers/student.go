package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/dto"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/services"
	"github.com/yukikurage/piyuclean-api/internal/utils"
)

type StudentHandler struct {
	studentService *services.StudentService
}

func NewStudentHandler(studentService *services.StudentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

// ListStudents returns students ordered by name. Filters: status, classSection.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	input := services.ListStudentsInput{
		ClassSection: c.Query("classSection"),
		Pagination:   params,
	}
	if raw := c.Query("status"); raw != "" {
		status := models.AccountStatus(raw)
		input.Status = &status
	}

	students, total, err := h.studentService.ListStudents(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentListResponse(students, dto.NewPagination(params, total)))
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.studentService.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentDTO(*student))
}

// CreateStudent creates a student. Leaving out the password makes the
// server generate one and return it once.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	type CreateStudentRequest struct {
		ID           string               `json:"id"`
		StudentCode  string               `json:"studentId" binding:"required"`
		FirstName    string               `json:"firstName" binding:"required"`
		LastName     string               `json:"lastName" binding:"required"`
		ClassSection string               `json:"classSection" binding:"required"`
		Status       models.AccountStatus `json:"status"`
		Password     string               `json:"password"`
	}

	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, temporary, err := h.studentService.CreateStudent(c.Request.Context(), services.CreateStudentInput{
		ID:           req.ID,
		StudentCode:  req.StudentCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ClassSection: req.ClassSection,
		Status:       req.Status,
		Password:     req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedStudentDTO{
		StudentDTO:        dto.ToStudentDTO(*student),
		TemporaryPassword: temporary,
	})
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	type UpdateStudentRequest struct {
		StudentCode  *string               `json:"studentId"`
		FirstName    *string               `json:"firstName"`
		LastName     *string               `json:"lastName"`
		ClassSection *string               `json:"classSection"`
		Status       *models.AccountStatus `json:"status"`
		Password     *string               `json:"password"`
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), c.Param("id"), services.UpdateStudentInput{
		StudentCode:  req.StudentCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ClassSection: req.ClassSection,
		Status:       req.Status,
		Password:     req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentDTO(*student))
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentService.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Student deleted successfully",
	})
}
