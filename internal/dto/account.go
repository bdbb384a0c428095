package dto

import (
	"time"

	"github.com/yukikurage/piyuclean-api/internal/models"
)

// AdminUserDTO represents an admin user in API responses
type AdminUserDTO struct {
	ID        string               `json:"id"`
	Username  string               `json:"username"`
	FullName  string               `json:"fullName"`
	Role      string               `json:"role"`
	Status    models.AccountStatus `json:"status"`
	LastLogin *time.Time           `json:"lastLogin"`
	CreatedAt time.Time            `json:"createdAt"`
}

// StudentDTO represents a student in API responses. StudentCode is the
// login code, exposed as studentId.
type StudentDTO struct {
	ID           string               `json:"id"`
	StudentCode  string               `json:"studentId"`
	FirstName    string               `json:"firstName"`
	LastName     string               `json:"lastName"`
	FullName     string               `json:"fullName"`
	ClassSection string               `json:"classSection"`
	Status       models.AccountStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// CreatedStudentDTO is returned when an admin creates a student. The
// temporary password is only present when the server generated it.
type CreatedStudentDTO struct {
	StudentDTO
	TemporaryPassword string `json:"temporaryPassword,omitempty"`
}

// CurrentUserDTO describes the logged-in account for /auth/me and login
type CurrentUserDTO struct {
	Role    string        `json:"role"`
	Admin   *AdminUserDTO `json:"admin,omitempty"`
	Student *StudentDTO   `json:"student,omitempty"`
}

// AdminUserListResponse represents a paginated list of admin users
type AdminUserListResponse struct {
	AdminUsers []AdminUserDTO     `json:"adminUsers"`
	Pagination PaginationResponse `json:"pagination"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []StudentDTO       `json:"students"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToAdminUserDTO converts an AdminUser model to AdminUserDTO
func ToAdminUserDTO(user models.AdminUser) AdminUserDTO {
	return AdminUserDTO{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		Status:    user.Status,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

// ToStudentDTO converts a Student model to StudentDTO
func ToStudentDTO(student models.Student) StudentDTO {
	return StudentDTO{
		ID:           student.ID,
		StudentCode:  student.StudentCode,
		FirstName:    student.FirstName,
		LastName:     student.LastName,
		FullName:     student.FullName(),
		ClassSection: student.ClassSection,
		Status:       student.Status,
		CreatedAt:    student.CreatedAt,
	}
}

func ToAdminUserListResponse(users []models.AdminUser, pagination PaginationResponse) AdminUserListResponse {
	items := make([]AdminUserDTO, len(users))
	for i, user := range users {
		items[i] = ToAdminUserDTO(user)
	}
	return AdminUserListResponse{AdminUsers: items, Pagination: pagination}
}

func ToStudentListResponse(students []models.Student, pagination PaginationResponse) StudentListResponse {
	items := make([]StudentDTO, len(students))
	for i, student := range students {
		items[i] = ToStudentDTO(student)
	}
	return StudentListResponse{Students: items, Pagination: pagination}
}
