package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/dto"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/services"
	"github.com/yukikurage/piyuclean-api/internal/utils"
)

type AdminUserHandler struct {
	adminUserService *services.AdminUserService
}

func NewAdminUserHandler(adminUserService *services.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{
		adminUserService: adminUserService,
	}
}

func (h *AdminUserHandler) ListAdminUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminUserService.ListAdminUsers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminUserListResponse(users, dto.NewPagination(params, total)))
}

func (h *AdminUserHandler) GetAdminUser(c *gin.Context) {
	user, err := h.adminUserService.GetAdminUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminUserDTO(*user))
}

func (h *AdminUserHandler) CreateAdminUser(c *gin.Context) {
	type CreateAdminUserRequest struct {
		ID       string               `json:"id"`
		Username string               `json:"username" binding:"required,min=3,max=64"`
		Password string               `json:"password" binding:"required"`
		FullName string               `json:"fullName" binding:"required"`
		Role     string               `json:"role" binding:"required"`
		Status   models.AccountStatus `json:"status"`
	}

	var req CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.adminUserService.CreateAdminUser(c.Request.Context(), services.AdminUserInput{
		ID:       req.ID,
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminUserDTO(*user))
}

func (h *AdminUserHandler) UpdateAdminUser(c *gin.Context) {
	type UpdateAdminUserRequest struct {
		Username *string               `json:"username"`
		Password *string               `json:"password"`
		FullName *string               `json:"fullName"`
		Role     *string               `json:"role"`
		Status   *models.AccountStatus `json:"status"`
	}

	var req UpdateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.adminUserService.UpdateAdminUser(c.Request.Context(), c.Param("id"), services.UpdateAdminUserInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminUserDTO(*user))
}

// DeleteAdminUser removes an admin user. The last active admin cannot be removed.
func (h *AdminUserHandler) DeleteAdminUser(c *gin.Context) {
	if err := h.adminUserService.DeleteAdminUser(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin user deleted successfully",
	})
}
