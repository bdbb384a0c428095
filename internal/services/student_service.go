package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/piyuclean-api/internal/constants"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

var ErrStudentNotFound = errors.New("student not found")

// StudentService manages student records.
type StudentService struct {
	studentRepo    repository.StudentRepository
	assignmentRepo repository.AssignmentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo repository.StudentRepository, assignmentRepo repository.AssignmentRepository) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ListStudentsInput represents filters for listing students
type ListStudentsInput struct {
	Status       *models.AccountStatus
	ClassSection string
	Pagination   utils.PaginationParams
}

// CreateStudentInput represents input for creating a student
type CreateStudentInput struct {
	ID           string
	StudentCode  string
	FirstName    string
	LastName     string
	ClassSection string
	Status       models.AccountStatus
	Password     string
}

// UpdateStudentInput represents a partial student update
type UpdateStudentInput struct {
	StudentCode  *string
	FirstName    *string
	LastName     *string
	ClassSection *string
	Status       *models.AccountStatus
	Password     *string
}

// ListStudents returns students ordered by name
func (s *StudentService) ListStudents(ctx context.Context, input ListStudentsInput) ([]models.Student, int64, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, 0, ErrInvalidAccountStatus
	}

	students, total, err := s.studentRepo.List(ctx, repository.StudentFilter{
		Status:       input.Status,
		ClassSection: strings.TrimSpace(input.ClassSection),
		Pagination:   input.Pagination,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	return students, total, nil
}

// GetStudent returns a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return student, nil
}

// CreateStudent creates a student account. When no password is given a
// temporary one is generated and returned so the admin can hand it out.
func (s *StudentService) CreateStudent(ctx context.Context, input CreateStudentInput) (*models.Student, string, error) {
	status, err := accountStatusOrDefault(input.Status)
	if err != nil {
		return nil, "", err
	}

	student := &models.Student{
		ID:           strings.TrimSpace(input.ID),
		StudentCode:  strings.TrimSpace(input.StudentCode),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		ClassSection: strings.TrimSpace(input.ClassSection),
		Status:       status,
	}
	if student.StudentCode == "" || student.FirstName == "" || student.LastName == "" || student.ClassSection == "" {
		return nil, "", ErrMissingField
	}

	password := input.Password
	var temporary string
	if password == "" {
		temporary, err = utils.GenerateTemporaryPassword(constants.TemporaryPasswordSize)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate password: %w", err)
		}
		password = temporary
	} else if len(password) < constants.MinPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	if _, err := s.studentRepo.FindByCode(ctx, student.StudentCode); err == nil {
		return nil, "", ErrStudentCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check student ID: %w", err)
	}

	if student.PasswordHash, err = hashPassword(password); err != nil {
		return nil, "", err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrStudentCodeTaken
		}
		return nil, "", fmt.Errorf("failed to create student: %w", err)
	}

	return student, temporary, nil
}

// UpdateStudent applies the fields present in input
func (s *StudentService) UpdateStudent(ctx context.Context, id string, input UpdateStudentInput) (*models.Student, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		dst    *string
		update *string
	}{
		{&student.FirstName, input.FirstName},
		{&student.LastName, input.LastName},
		{&student.ClassSection, input.ClassSection},
	} {
		if err := applyTrimmed(f.dst, f.update); err != nil {
			return nil, err
		}
	}

	if input.StudentCode != nil {
		code := strings.TrimSpace(*input.StudentCode)
		if code == "" {
			return nil, ErrMissingField
		}
		if code != student.StudentCode {
			if _, err := s.studentRepo.FindByCode(ctx, code); err == nil {
				return nil, ErrStudentCodeTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check student ID: %w", err)
			}
			student.StudentCode = code
		}
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidAccountStatus
		}
		student.Status = *input.Status
	}
	if input.Password != nil && *input.Password != "" {
		if len(*input.Password) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		if student.PasswordHash, err = hashPassword(*input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentCodeTaken
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return student, nil
}

// DeleteStudent removes a student who is not on any assignment. Students
// with history should be deactivated instead.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}

	count, err := s.assignmentRepo.CountByStudent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check student assignments: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: student is on %d assignment(s)", ErrReferenceInUse, count)
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
