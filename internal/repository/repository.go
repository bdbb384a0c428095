package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/utils"
)

// ErrStaleVersion is returned by a versioned update when the row exists but
// its version no longer matches the one the caller read.
var ErrStaleVersion = errors.New("repository: stale version")

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	// Create inserts an assignment together with its student links
	Create(ctx context.Context, a *models.Assignment) error

	// FindByID finds an assignment by ID with its students loaded
	FindByID(ctx context.Context, id string) (*models.Assignment, error)

	// List retrieves assignments with filtering and pagination, newest date first
	List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, int64, error)

	// UpdateStatus writes status, completedAt and comments when the stored
	// version equals expectedVersion, then bumps the version
	UpdateStatus(ctx context.Context, a *models.Assignment, expectedVersion int64) error

	// Delete removes an assignment and its student links
	Delete(ctx context.Context, id string) error

	// ListOverdueCandidates lists open assignments dated before the given day
	ListOverdueCandidates(ctx context.Context, before models.Date) ([]models.Assignment, error)

	// CountByClassroom counts assignments in a classroom
	CountByClassroom(ctx context.Context, classroomID string) (int64, error)

	// CountByChecklist counts assignments using a checklist
	CountByChecklist(ctx context.Context, checklistID string) (int64, error)

	// CountByStudent counts assignments a student belongs to
	CountByStudent(ctx context.Context, studentID string) (int64, error)
}

// AssignmentFilter holds filtering options for listing assignments
type AssignmentFilter struct {
	Date        *models.Date
	From        *models.Date
	To          *models.Date
	ClassroomID *string
	Status      *models.AssignmentStatus
	StudentID   *string
	Pagination  utils.PaginationParams
}

// StudentRepository defines the interface for student data access
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByCode(ctx context.Context, code string) (*models.Student, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]models.Student, int64, error)

	// ListActiveIDs returns the ids of active students, optionally limited
	// to one class section, in student code order
	ListActiveIDs(ctx context.Context, classSection string) ([]string, error)

	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentFilter holds filtering options for listing students
type StudentFilter struct {
	Status       *models.AccountStatus
	ClassSection string
	Pagination   utils.PaginationParams
}

// ClassroomRepository defines the interface for classroom data access
type ClassroomRepository interface {
	Create(ctx context.Context, classroom *models.Classroom) error
	FindByID(ctx context.Context, id string) (*models.Classroom, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Classroom, error)
	List(ctx context.Context, params utils.PaginationParams) ([]models.Classroom, int64, error)

	// CodeExists reports whether another classroom already uses code
	CodeExists(ctx context.Context, code, exceptID string) (bool, error)

	Update(ctx context.Context, classroom *models.Classroom) error
	Delete(ctx context.Context, id string) error
}

// CleaningTaskRepository defines the interface for cleaning task data access
type CleaningTaskRepository interface {
	Create(ctx context.Context, task *models.CleaningTask) error
	FindByID(ctx context.Context, id string) (*models.CleaningTask, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.CleaningTask, error)
	List(ctx context.Context, params utils.PaginationParams) ([]models.CleaningTask, int64, error)

	// NameExists reports whether another task already uses name
	NameExists(ctx context.Context, name, exceptID string) (bool, error)

	Update(ctx context.Context, task *models.CleaningTask) error
	Delete(ctx context.Context, id string) error
}

// ChecklistRepository defines the interface for checklist data access.
// Every checklist it returns has its Tasks relation loaded.
type ChecklistRepository interface {
	// Create inserts a checklist together with its ordered tasks
	Create(ctx context.Context, checklist *models.Checklist) error

	FindByID(ctx context.Context, id string) (*models.Checklist, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Checklist, error)
	List(ctx context.Context, params utils.PaginationParams) ([]models.Checklist, int64, error)

	// NameExists reports whether another checklist already uses name
	NameExists(ctx context.Context, name, exceptID string) (bool, error)

	// Update saves the checklist and replaces its task list
	Update(ctx context.Context, checklist *models.Checklist) error

	// Delete removes a checklist and its task links
	Delete(ctx context.Context, id string) error

	// CountByTask counts checklists containing a task
	CountByTask(ctx context.Context, taskID string) (int64, error)
}

// AdminUserRepository defines the interface for admin user data access
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByID(ctx context.Context, id string) (*models.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	List(ctx context.Context, params utils.PaginationParams) ([]models.AdminUser, int64, error)
	Update(ctx context.Context, user *models.AdminUser) error
	Delete(ctx context.Context, id string) error

	// CountActive counts admin users that may log in
	CountActive(ctx context.Context) (int64, error)
}
