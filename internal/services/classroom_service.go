package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrClassroomNotFound  = errors.New("classroom not found")
	ErrClassroomCodeTaken = errors.New("classroom ID already exists")
)

// ClassroomService manages classrooms.
type ClassroomService struct {
	classroomRepo  repository.ClassroomRepository
	assignmentRepo repository.AssignmentRepository
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(classroomRepo repository.ClassroomRepository, assignmentRepo repository.AssignmentRepository) *ClassroomService {
	return &ClassroomService{
		classroomRepo:  classroomRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ClassroomInput represents input for creating a classroom
type ClassroomInput struct {
	ID            string
	ClassroomCode string
	Name          string
	Description   string
}

// UpdateClassroomInput represents a partial classroom update
type UpdateClassroomInput struct {
	ClassroomCode *string
	Name          *string
	Description   *string
}

func (s *ClassroomService) ListClassrooms(ctx context.Context, params utils.PaginationParams) ([]models.Classroom, int64, error) {
	classrooms, total, err := s.classroomRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list classrooms: %w", err)
	}
	return classrooms, total, nil
}

func (s *ClassroomService) GetClassroom(ctx context.Context, id string) (*models.Classroom, error) {
	classroom, err := s.classroomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, fmt.Errorf("failed to find classroom: %w", err)
	}
	return classroom, nil
}

func (s *ClassroomService) CreateClassroom(ctx context.Context, input ClassroomInput) (*models.Classroom, error) {
	classroom := &models.Classroom{
		ID:            strings.TrimSpace(input.ID),
		ClassroomCode: strings.TrimSpace(input.ClassroomCode),
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
	}
	if classroom.ClassroomCode == "" || classroom.Name == "" {
		return nil, ErrMissingField
	}
	if err := s.ensureCodeFree(ctx, classroom.ClassroomCode, ""); err != nil {
		return nil, err
	}

	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrClassroomCodeTaken
		}
		return nil, fmt.Errorf("failed to create classroom: %w", err)
	}
	return classroom, nil
}

func (s *ClassroomService) UpdateClassroom(ctx context.Context, id string, input UpdateClassroomInput) (*models.Classroom, error) {
	classroom, err := s.GetClassroom(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTrimmed(&classroom.ClassroomCode, input.ClassroomCode); err != nil {
		return nil, err
	}
	if err := applyTrimmed(&classroom.Name, input.Name); err != nil {
		return nil, err
	}
	if input.Description != nil {
		classroom.Description = *input.Description
	}
	if err := s.ensureCodeFree(ctx, classroom.ClassroomCode, classroom.ID); err != nil {
		return nil, err
	}

	if err := s.classroomRepo.Update(ctx, classroom); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrClassroomCodeTaken
		}
		return nil, fmt.Errorf("failed to update classroom: %w", err)
	}
	return classroom, nil
}

// DeleteClassroom removes a classroom that no assignment uses
func (s *ClassroomService) DeleteClassroom(ctx context.Context, id string) error {
	if _, err := s.GetClassroom(ctx, id); err != nil {
		return err
	}

	count, err := s.assignmentRepo.CountByClassroom(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check classroom assignments: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: classroom has %d assignment(s)", ErrReferenceInUse, count)
	}

	if err := s.classroomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		return fmt.Errorf("failed to delete classroom: %w", err)
	}
	return nil
}

func (s *ClassroomService) ensureCodeFree(ctx context.Context, code, exceptID string) error {
	taken, err := s.classroomRepo.CodeExists(ctx, code, exceptID)
	if err != nil {
		return fmt.Errorf("failed to check classroom ID: %w", err)
	}
	if taken {
		return ErrClassroomCodeTaken
	}
	return nil
}
