package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrChecklistNotFound  = errors.New("checklist not found")
	ErrChecklistNameTaken = errors.New("checklist name already exists")
	ErrUnknownTask        = errors.New("one or more cleaning tasks do not exist")
)

// ChecklistService manages checklists and their ordered task lists.
type ChecklistService struct {
	checklistRepo  repository.ChecklistRepository
	taskRepo       repository.CleaningTaskRepository
	assignmentRepo repository.AssignmentRepository
}

// NewChecklistService creates a new ChecklistService.
func NewChecklistService(checklistRepo repository.ChecklistRepository, taskRepo repository.CleaningTaskRepository, assignmentRepo repository.AssignmentRepository) *ChecklistService {
	return &ChecklistService{
		checklistRepo:  checklistRepo,
		taskRepo:       taskRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ChecklistInput represents input for creating a checklist
type ChecklistInput struct {
	ID          string
	Name        string
	Description string
	TaskIDs     []string
}

// UpdateChecklistInput represents a partial checklist update. A nil
// TaskIDs keeps the current tasks.
type UpdateChecklistInput struct {
	Name        *string
	Description *string
	TaskIDs     *[]string
}

func (s *ChecklistService) ListChecklists(ctx context.Context, params utils.PaginationParams) ([]models.Checklist, int64, error) {
	checklists, total, err := s.checklistRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list checklists: %w", err)
	}
	return checklists, total, nil
}

func (s *ChecklistService) GetChecklist(ctx context.Context, id string) (*models.Checklist, error) {
	checklist, err := s.checklistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChecklistNotFound
		}
		return nil, fmt.Errorf("failed to find checklist: %w", err)
	}
	return checklist, nil
}

func (s *ChecklistService) CreateChecklist(ctx context.Context, input ChecklistInput) (*models.Checklist, error) {
	checklist := &models.Checklist{
		ID:          strings.TrimSpace(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if checklist.Name == "" {
		return nil, ErrMissingField
	}
	if err := s.ensureNameFree(ctx, checklist.Name, ""); err != nil {
		return nil, err
	}

	taskIDs, err := s.verifyTasks(ctx, input.TaskIDs)
	if err != nil {
		return nil, err
	}
	checklist.SetTasks(taskIDs)

	if err := s.checklistRepo.Create(ctx, checklist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrChecklistNameTaken
		}
		return nil, fmt.Errorf("failed to create checklist: %w", err)
	}
	return checklist, nil
}

func (s *ChecklistService) UpdateChecklist(ctx context.Context, id string, input UpdateChecklistInput) (*models.Checklist, error) {
	checklist, err := s.GetChecklist(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTrimmed(&checklist.Name, input.Name); err != nil {
		return nil, err
	}
	if input.Description != nil {
		checklist.Description = *input.Description
	}
	if err := s.ensureNameFree(ctx, checklist.Name, checklist.ID); err != nil {
		return nil, err
	}
	if input.TaskIDs != nil {
		taskIDs, err := s.verifyTasks(ctx, *input.TaskIDs)
		if err != nil {
			return nil, err
		}
		if !slices.Equal(taskIDs, checklist.TaskIDs()) {
			if err := s.ensureUnused(ctx, id); err != nil {
				return nil, err
			}
		}
		checklist.SetTasks(taskIDs)
	}

	if err := s.checklistRepo.Update(ctx, checklist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrChecklistNameTaken
		}
		return nil, fmt.Errorf("failed to update checklist: %w", err)
	}
	return checklist, nil
}

// DeleteChecklist removes a checklist that no assignment uses
func (s *ChecklistService) DeleteChecklist(ctx context.Context, id string) error {
	if _, err := s.GetChecklist(ctx, id); err != nil {
		return err
	}

	if err := s.ensureUnused(ctx, id); err != nil {
		return err
	}

	if err := s.checklistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChecklistNotFound
		}
		return fmt.Errorf("failed to delete checklist: %w", err)
	}
	return nil
}

// ensureUnused fails with ErrReferenceInUse while any assignment uses the
// checklist. Their expanded rows follow the checklist's task list.
func (s *ChecklistService) ensureUnused(ctx context.Context, id string) error {
	count, err := s.assignmentRepo.CountByChecklist(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check checklist assignments: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: checklist has %d assignment(s)", ErrReferenceInUse, count)
	}
	return nil
}

func (s *ChecklistService) ensureNameFree(ctx context.Context, name, exceptID string) error {
	taken, err := s.checklistRepo.NameExists(ctx, name, exceptID)
	if err != nil {
		return fmt.Errorf("failed to check checklist name: %w", err)
	}
	if taken {
		return ErrChecklistNameTaken
	}
	return nil
}

// verifyTasks dedupes ids and checks that each names an existing task
func (s *ChecklistService) verifyTasks(ctx context.Context, ids []string) ([]string, error) {
	taskIDs := uniqueStrings(ids)
	tasks, err := s.taskRepo.FindByIDs(ctx, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to verify tasks: %w", err)
	}
	if len(tasks) != len(taskIDs) {
		return nil, ErrUnknownTask
	}
	return taskIDs, nil
}
