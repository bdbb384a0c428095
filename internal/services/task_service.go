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

var (
	ErrCleaningTaskNotFound   = errors.New("cleaning task not found")
	ErrTaskNameTaken          = errors.New("cleaning task name already exists")
	ErrGenerateTextRequired   = errors.New("text is required")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not generate any tasks")
	ErrAINoValidTasks         = errors.New("no valid tasks could be created from AI output")
)

// CleaningTaskService manages the cleaning tasks checklists are built from.
type CleaningTaskService struct {
	taskRepo      repository.CleaningTaskRepository
	checklistRepo repository.ChecklistRepository
	aiService     *AIService
}

// NewCleaningTaskService creates a new CleaningTaskService. aiService may
// be nil, in which case generation reports ErrAIServiceNotConfigured.
func NewCleaningTaskService(taskRepo repository.CleaningTaskRepository, checklistRepo repository.ChecklistRepository, aiService *AIService) *CleaningTaskService {
	return &CleaningTaskService{
		taskRepo:      taskRepo,
		checklistRepo: checklistRepo,
		aiService:     aiService,
	}
}

// CleaningTaskInput represents input for creating a cleaning task
type CleaningTaskInput struct {
	ID          string
	Name        string
	Description string
}

// UpdateCleaningTaskInput represents a partial cleaning task update
type UpdateCleaningTaskInput struct {
	Name        *string
	Description *string
}

func (s *CleaningTaskService) ListTasks(ctx context.Context, params utils.PaginationParams) ([]models.CleaningTask, int64, error) {
	tasks, total, err := s.taskRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cleaning tasks: %w", err)
	}
	return tasks, total, nil
}

func (s *CleaningTaskService) GetTask(ctx context.Context, id string) (*models.CleaningTask, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCleaningTaskNotFound
		}
		return nil, fmt.Errorf("failed to find cleaning task: %w", err)
	}
	return task, nil
}

func (s *CleaningTaskService) CreateTask(ctx context.Context, input CleaningTaskInput) (*models.CleaningTask, error) {
	task := &models.CleaningTask{
		ID:          strings.TrimSpace(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if task.Name == "" {
		return nil, ErrMissingField
	}
	if err := s.ensureNameFree(ctx, task.Name, ""); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTaskNameTaken
		}
		return nil, fmt.Errorf("failed to create cleaning task: %w", err)
	}
	return task, nil
}

func (s *CleaningTaskService) UpdateTask(ctx context.Context, id string, input UpdateCleaningTaskInput) (*models.CleaningTask, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTrimmed(&task.Name, input.Name); err != nil {
		return nil, err
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if err := s.ensureNameFree(ctx, task.Name, task.ID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTaskNameTaken
		}
		return nil, fmt.Errorf("failed to update cleaning task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a cleaning task that no checklist contains
func (s *CleaningTaskService) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.GetTask(ctx, id); err != nil {
		return err
	}

	count, err := s.checklistRepo.CountByTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check checklists: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: task is on %d checklist(s)", ErrReferenceInUse, count)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCleaningTaskNotFound
		}
		return fmt.Errorf("failed to delete cleaning task: %w", err)
	}
	return nil
}

func (s *CleaningTaskService) ensureNameFree(ctx context.Context, name, exceptID string) error {
	taken, err := s.taskRepo.NameExists(ctx, name, exceptID)
	if err != nil {
		return fmt.Errorf("failed to check task name: %w", err)
	}
	if taken {
		return ErrTaskNameTaken
	}
	return nil
}

// GenerateTasks asks the AI service for cleaning task suggestions. Nothing
// is stored; blank and repeated names are dropped.
func (s *CleaningTaskService) GenerateTasks(ctx context.Context, text string) ([]GeneratedTask, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrGenerateTextRequired
	}
	if s.aiService == nil {
		return nil, ErrAIServiceNotConfigured
	}

	aiTasks, err := s.aiService.SuggestCleaningTasks(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tasks: %w", err)
	}

	if len(aiTasks) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(aiTasks) > constants.MaxAIGeneratedTasks {
		return nil, fmt.Errorf("AI generated too many tasks (max %d)", constants.MaxAIGeneratedTasks)
	}

	seen := make(map[string]struct{}, len(aiTasks))
	validTasks := make([]GeneratedTask, 0, len(aiTasks))
	for _, aiTask := range aiTasks {
		aiTask.Name = strings.TrimSpace(aiTask.Name)
		if aiTask.Name == "" {
			continue
		}
		key := strings.ToLower(aiTask.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		aiTask.Description = strings.TrimSpace(aiTask.Description)
		validTasks = append(validTasks, aiTask)
	}

	if len(validTasks) == 0 {
		return nil, ErrAINoValidTasks
	}

	return validTasks, nil
}
