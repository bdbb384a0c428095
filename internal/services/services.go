package services

import (
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"gorm.io/gorm"
)

// Services bundles every service built over one database.
type Services struct {
	Auth        *AuthService
	Assignments *AssignmentService
	Reports     *ReportService
	Students    *StudentService
	Classrooms  *ClassroomService
	Tasks       *CleaningTaskService
	Checklists  *ChecklistService
	AdminUsers  *AdminUserService
}

// New wires the repositories and services for db. aiService may be nil.
func New(db *gorm.DB, aiService *AIService) *Services {
	assignmentRepo := repository.NewAssignmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	classroomRepo := repository.NewClassroomRepository(db)
	taskRepo := repository.NewCleaningTaskRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	assignments := NewAssignmentService(assignmentRepo, studentRepo, classroomRepo, taskRepo, checklistRepo)

	return &Services{
		Auth:        NewAuthService(adminRepo, studentRepo),
		Assignments: assignments,
		Reports:     NewReportService(assignments),
		Students:    NewStudentService(studentRepo, assignmentRepo),
		Classrooms:  NewClassroomService(classroomRepo, assignmentRepo),
		Tasks:       NewCleaningTaskService(taskRepo, checklistRepo, aiService),
		Checklists:  NewChecklistService(checklistRepo, taskRepo, assignmentRepo),
		AdminUsers:  NewAdminUserService(adminRepo),
	}
}
