package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/constants"
	"github.com/yukikurage/piyuclean-api/internal/dto"
	apierrors "github.com/yukikurage/piyuclean-api/internal/errors"
	"github.com/yukikurage/piyuclean-api/internal/middleware"
	"github.com/yukikurage/piyuclean-api/internal/services"
)

// AuthHandler coordinates admin and student authentication.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates an admin and starts the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !startSession(c, user.ID, constants.RoleAdmin) {
		return
	}

	admin := dto.ToAdminUserDTO(*user)
	c.JSON(http.StatusOK, dto.CurrentUserDTO{Role: constants.RoleAdmin, Admin: &admin})
}

// StudentLogin authenticates a student by student ID and password.
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	type StudentLoginRequest struct {
		StudentCode string `json:"studentId" binding:"required"`
		Password    string `json:"password" binding:"required"`
	}

	var req StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := h.authService.StudentLogin(c.Request.Context(), services.StudentLoginInput{
		StudentCode: req.StudentCode,
		Password:    req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !startSession(c, student.ID, constants.RoleStudent) {
		return
	}

	s := dto.ToStudentDTO(*student)
	c.JSON(http.StatusOK, dto.CurrentUserDTO{Role: constants.RoleStudent, Student: &s})
}

// StudentRegister lets a student create their own account. It does not
// log them in.
func (h *AuthHandler) StudentRegister(c *gin.Context) {
	type StudentRegisterRequest struct {
		StudentCode  string `json:"studentId" binding:"required"`
		FirstName    string `json:"firstName" binding:"required"`
		LastName     string `json:"lastName" binding:"required"`
		ClassSection string `json:"classSection" binding:"required"`
		Password     string `json:"password" binding:"required"`
	}

	var req StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := h.authService.RegisterStudent(c.Request.Context(), services.RegisterStudentInput{
		StudentCode:  req.StudentCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ClassSection: req.ClassSection,
		Password:     req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentDTO(*student))
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated admin or student.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	ctx := c.Request.Context()
	if principal.IsAdmin() {
		user, err := h.authService.GetAdmin(ctx, principal.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		admin := dto.ToAdminUserDTO(*user)
		c.JSON(http.StatusOK, dto.CurrentUserDTO{Role: principal.Role, Admin: &admin})
		return
	}

	student, err := h.authService.GetStudent(ctx, principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s := dto.ToStudentDTO(*student)
	c.JSON(http.StatusOK, dto.CurrentUserDTO{Role: principal.Role, Student: &s})
}

// startSession replaces the session contents with the new login. It has
// already responded when it returns false.
func startSession(c *gin.Context, userID, role string) bool {
	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.ContextKeyUserID, userID)
	session.Set(constants.ContextKeyRole, role)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return false
	}
	return true
}
