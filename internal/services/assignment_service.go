package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yukikurage/piyuclean-api/internal/assignment"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrAssignmentExists    = errors.New("assignment ID already exists")
	ErrDateRequired        = errors.New("date is required")
	ErrNoStudents          = errors.New("at least one student is required")
	ErrEmptyChecklist      = errors.New("checklist has no tasks")
	ErrUnknownStudent      = errors.New("one or more students do not exist")
	ErrInvalidClassroom    = errors.New("classroom does not exist")
	ErrInvalidChecklist    = errors.New("checklist does not exist")
	ErrVersionConflict     = errors.New("assignment was modified by someone else")
	ErrNotAssignedStudent  = errors.New("student is not assigned to this assignment")
	ErrNotEnoughStudents   = errors.New("not enough active students to sample from")
	ErrInvalidStatus       = assignment.ErrInvalidStatus
	ErrCompletedIsTerminal = assignment.ErrCompletedIsTerminal
	ErrInvalidTransition   = assignment.ErrInvalidTransition
)

// markCompleteAttempts bounds the reload-and-retry loop of MarkComplete
// when concurrent writers keep bumping the version.
const markCompleteAttempts = 3

// AssignmentService owns the assignment lifecycle and its expansion into
// per student, per task rows.
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	studentRepo    repository.StudentRepository
	classroomRepo  repository.ClassroomRepository
	taskRepo       repository.CleaningTaskRepository
	checklistRepo  repository.ChecklistRepository
	now            func() time.Time
	location       *time.Location
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	studentRepo repository.StudentRepository,
	classroomRepo repository.ClassroomRepository,
	taskRepo repository.CleaningTaskRepository,
	checklistRepo repository.ChecklistRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		classroomRepo:  classroomRepo,
		taskRepo:       taskRepo,
		checklistRepo:  checklistRepo,
		now:            time.Now,
		location:       time.Local,
	}
}

// WithClock replaces the time source used for completion stamps and for
// deciding what "today" is.
func (s *AssignmentService) WithClock(now func() time.Time, loc *time.Location) *AssignmentService {
	s.now = now
	if loc != nil {
		s.location = loc
	}
	return s
}

// Today is the current calendar day in the service's location.
func (s *AssignmentService) Today() models.Date {
	return assignment.Today(s.now(), s.location)
}

// ListAssignmentsInput represents filters for listing assignments
type ListAssignmentsInput struct {
	Date        *models.Date
	From        *models.Date
	To          *models.Date
	ClassroomID string
	Status      string
	StudentID   string
	Pagination  utils.PaginationParams
}

func (in ListAssignmentsInput) filter() (repository.AssignmentFilter, error) {
	filter := repository.AssignmentFilter{
		Date:       in.Date,
		From:       in.From,
		To:         in.To,
		Pagination: in.Pagination,
	}
	if in.ClassroomID != "" {
		classroomID := in.ClassroomID
		filter.ClassroomID = &classroomID
	}
	if in.StudentID != "" {
		studentID := in.StudentID
		filter.StudentID = &studentID
	}
	if in.Status != "" {
		status, err := assignment.ParseStatus(in.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// CreateAssignmentInput represents input for creating an assignment
type CreateAssignmentInput struct {
	ID          string
	Date        models.Date
	ClassroomID string
	ChecklistID string
	StudentIDs  []string
	Comments    *string
}

// RandomAssignmentInput creates an assignment for Count students sampled
// from the active roster, optionally limited to one class section.
type RandomAssignmentInput struct {
	Date         models.Date
	ClassroomID  string
	ChecklistID  string
	Count        int
	Seed         *int64
	ClassSection string
	Comments     *string
}

// UpdateStatusInput represents a status change. Version is optional; when
// present it must equal the stored version.
type UpdateStatusInput struct {
	Status      string
	CompletedAt *time.Time
	Comments    *string
	Version     *int64
}

// ListAssignments returns stored assignments, newest date first
func (s *AssignmentService) ListAssignments(ctx context.Context, input ListAssignmentsInput) ([]models.Assignment, int64, error) {
	filter, err := input.filter()
	if err != nil {
		return nil, 0, err
	}

	assignments, total, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, total, nil
}

// GetAssignment returns an assignment with its students
func (s *AssignmentService) GetAssignment(ctx context.Context, id string) (*models.Assignment, error) {
	a, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return a, nil
}

// CreateAssignment validates the references and stores a new assignment
// in the assigned state.
func (s *AssignmentService) CreateAssignment(ctx context.Context, input CreateAssignmentInput) (*models.Assignment, error) {
	if input.Date.IsZero() {
		return nil, ErrDateRequired
	}
	studentIDs := uniqueStrings(input.StudentIDs)
	if len(studentIDs) == 0 {
		return nil, ErrNoStudents
	}

	if err := s.verifyClassroom(ctx, input.ClassroomID); err != nil {
		return nil, err
	}
	if err := s.verifyChecklist(ctx, input.ChecklistID); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.FindByIDs(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to verify students: %w", err)
	}
	if len(students) != len(studentIDs) {
		return nil, ErrUnknownStudent
	}

	id := strings.TrimSpace(input.ID)
	if id != "" {
		if _, err := s.assignmentRepo.FindByID(ctx, id); err == nil {
			return nil, ErrAssignmentExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check assignment ID: %w", err)
		}
	}

	a := &models.Assignment{
		ID:          id,
		Date:        input.Date,
		ClassroomID: input.ClassroomID,
		ChecklistID: input.ChecklistID,
		Status:      models.AssignmentStatusAssigned,
		Comments:    input.Comments,
		Version:     1,
	}
	a.SetStudents(studentIDs)

	if err := s.assignmentRepo.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAssignmentExists
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return a, nil
}

// CreateRandomAssignment samples students with a seeded shuffle and
// creates the assignment. The seed used is returned so the draw can be
// reproduced.
func (s *AssignmentService) CreateRandomAssignment(ctx context.Context, input RandomAssignmentInput) (*models.Assignment, int64, error) {
	population, err := s.studentRepo.ListActiveIDs(ctx, strings.TrimSpace(input.ClassSection))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	if input.Count < 1 {
		return nil, 0, ErrNoStudents
	}
	if input.Count > len(population) {
		return nil, 0, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughStudents, input.Count, len(population))
	}

	seed := s.now().UnixNano()
	if input.Seed != nil {
		seed = *input.Seed
	}

	picked, err := assignment.Sample(population, input.Count, seed)
	if err != nil {
		return nil, 0, err
	}

	a, err := s.CreateAssignment(ctx, CreateAssignmentInput{
		Date:        input.Date,
		ClassroomID: input.ClassroomID,
		ChecklistID: input.ChecklistID,
		StudentIDs:  picked,
		Comments:    input.Comments,
	})
	if err != nil {
		return nil, 0, err
	}
	return a, seed, nil
}

// UpdateStatus applies a general status change under the lifecycle rules
func (s *AssignmentService) UpdateStatus(ctx context.Context, id string, input UpdateStatusInput) (*models.Assignment, error) {
	status, err := assignment.ParseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	a, err := s.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Version != nil && *input.Version != a.Version {
		return nil, ErrVersionConflict
	}

	expected := a.Version
	if err := assignment.ApplyStatus(a, assignment.StatusUpdate{
		Status:      status,
		CompletedAt: input.CompletedAt,
		Comments:    input.Comments,
	}, s.now()); err != nil {
		return nil, err
	}

	if err := s.write(ctx, a, expected); err != nil {
		return nil, err
	}
	return a, nil
}

// MarkComplete completes an assignment for every student on it. Repeating
// it is harmless and keeps the first completion time.
func (s *AssignmentService) MarkComplete(ctx context.Context, id string) (*models.Assignment, error) {
	return s.markComplete(ctx, id, func(*models.Assignment) error { return nil })
}

// MarkCompleteForStudent is MarkComplete on behalf of a student, who must
// be one of the assigned students.
func (s *AssignmentService) MarkCompleteForStudent(ctx context.Context, id, studentID string) (*models.Assignment, error) {
	return s.markComplete(ctx, id, func(a *models.Assignment) error {
		if !a.HasStudent(studentID) {
			return ErrNotAssignedStudent
		}
		return nil
	})
}

func (s *AssignmentService) markComplete(ctx context.Context, id string, allow func(*models.Assignment) error) (*models.Assignment, error) {
	for attempt := 1; ; attempt++ {
		a, err := s.GetAssignment(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := allow(a); err != nil {
			return nil, err
		}

		expected := a.Version
		if !assignment.MarkComplete(a, s.now()) {
			return a, nil
		}

		err = s.write(ctx, a, expected)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, ErrVersionConflict) || attempt >= markCompleteAttempts {
			return nil, err
		}
	}
}

// DeleteAssignment removes an assignment and its student links
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// ListExpanded returns the per student, per task rows of every assignment
// matching input. Pagination is ignored; rows follow assignment order.
func (s *AssignmentService) ListExpanded(ctx context.Context, input ListAssignmentsInput) ([]assignment.ExpandedRow, error) {
	rows, _, err := s.expand(ctx, input)
	return rows, err
}

// ListExpandedForStudent returns only the rows that belong to studentID
func (s *AssignmentService) ListExpandedForStudent(ctx context.Context, studentID string, input ListAssignmentsInput) ([]assignment.ExpandedRow, error) {
	input.StudentID = studentID
	rows, _, err := s.expand(ctx, input)
	if err != nil {
		return nil, err
	}
	return assignment.ForStudent(rows, studentID), nil
}

// SweepOverdue moves open assignments dated before today to overdue and
// returns how many changed. Assignments modified concurrently are left for
// the next sweep.
func (s *AssignmentService) SweepOverdue(ctx context.Context) (int, error) {
	today := s.Today()
	candidates, err := s.assignmentRepo.ListOverdueCandidates(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue assignments: %w", err)
	}

	swept := 0
	for i := range candidates {
		a := &candidates[i]
		if !assignment.IsOverdue(*a, today) {
			continue
		}
		expected := a.Version
		if err := assignment.ApplyStatus(a, assignment.StatusUpdate{Status: models.AssignmentStatusOverdue}, s.now()); err != nil {
			return swept, err
		}
		if err := s.write(ctx, a, expected); err != nil {
			if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrAssignmentNotFound) {
				log.Printf("Skipping overdue sweep of assignment %s: %v", a.ID, err)
				continue
			}
			return swept, err
		}
		swept++
	}
	return swept, nil
}

func (s *AssignmentService) expand(ctx context.Context, input ListAssignmentsInput) ([]assignment.ExpandedRow, assignment.Reference, error) {
	input.Pagination = utils.PaginationParams{}
	filter, err := input.filter()
	if err != nil {
		return nil, assignment.Reference{}, err
	}

	assignments, _, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, assignment.Reference{}, fmt.Errorf("failed to list assignments: %w", err)
	}

	ref, err := s.loadReference(ctx, assignments)
	if err != nil {
		return nil, assignment.Reference{}, err
	}
	return assignment.Expand(assignments, ref), ref, nil
}

// loadReference fetches exactly the reference data the assignments point at
func (s *AssignmentService) loadReference(ctx context.Context, assignments []models.Assignment) (assignment.Reference, error) {
	var studentIDs, classroomIDs, checklistIDs []string
	for _, a := range assignments {
		studentIDs = append(studentIDs, a.StudentIDs()...)
		classroomIDs = append(classroomIDs, a.ClassroomID)
		checklistIDs = append(checklistIDs, a.ChecklistID)
	}

	students, err := s.studentRepo.FindByIDs(ctx, uniqueStrings(studentIDs))
	if err != nil {
		return assignment.Reference{}, fmt.Errorf("failed to load students: %w", err)
	}
	classrooms, err := s.classroomRepo.FindByIDs(ctx, uniqueStrings(classroomIDs))
	if err != nil {
		return assignment.Reference{}, fmt.Errorf("failed to load classrooms: %w", err)
	}
	checklists, err := s.checklistRepo.FindByIDs(ctx, uniqueStrings(checklistIDs))
	if err != nil {
		return assignment.Reference{}, fmt.Errorf("failed to load checklists: %w", err)
	}

	var taskIDs []string
	for _, cl := range checklists {
		taskIDs = append(taskIDs, cl.TaskIDs()...)
	}
	tasks, err := s.taskRepo.FindByIDs(ctx, uniqueStrings(taskIDs))
	if err != nil {
		return assignment.Reference{}, fmt.Errorf("failed to load cleaning tasks: %w", err)
	}

	return assignment.NewReference(students, classrooms, tasks, checklists), nil
}

func (s *AssignmentService) verifyClassroom(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidClassroom
	}
	if _, err := s.classroomRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidClassroom
		}
		return fmt.Errorf("failed to verify classroom: %w", err)
	}
	return nil
}

func (s *AssignmentService) verifyChecklist(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidChecklist
	}
	checklist, err := s.checklistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidChecklist
		}
		return fmt.Errorf("failed to verify checklist: %w", err)
	}
	if len(checklist.Tasks) == 0 {
		return ErrEmptyChecklist
	}
	return nil
}

// write stores the status fields guarded by the version that was read
func (s *AssignmentService) write(ctx context.Context, a *models.Assignment, expected int64) error {
	if err := s.assignmentRepo.UpdateStatus(ctx, a, expected); err != nil {
		switch {
		case errors.Is(err, repository.ErrStaleVersion):
			return ErrVersionConflict
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrAssignmentNotFound
		default:
			return fmt.Errorf("failed to update assignment: %w", err)
		}
	}
	return nil
}
