package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/repository"
	"gorm.io/gorm"
)

// ServiceTestSuite wires every service against a seeded in-memory database
type ServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *gorm.DB
	clock       time.Time
	auth        *AuthService
	students    *StudentService
	classrooms  *ClassroomService
	tasks       *CleaningTaskService
	checklists  *ChecklistService
	admins      *AdminUserService
	assignments *AssignmentService
	reports     *ReportService
}

func (suite *ServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = database.OpenInMemory()
	suite.Require().NoError(err)
	suite.Require().NoError(database.Seed(suite.db))

	suite.ctx = context.Background()
	// Wednesday
	suite.clock = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	assignmentRepo := repository.NewAssignmentRepository(suite.db)
	studentRepo := repository.NewStudentRepository(suite.db)
	classroomRepo := repository.NewClassroomRepository(suite.db)
	taskRepo := repository.NewCleaningTaskRepository(suite.db)
	checklistRepo := repository.NewChecklistRepository(suite.db)
	adminRepo := repository.NewAdminUserRepository(suite.db)

	suite.auth = NewAuthService(adminRepo, studentRepo)
	suite.students = NewStudentService(studentRepo, assignmentRepo)
	suite.classrooms = NewClassroomService(classroomRepo, assignmentRepo)
	suite.tasks = NewCleaningTaskService(taskRepo, checklistRepo, nil)
	suite.checklists = NewChecklistService(checklistRepo, taskRepo, assignmentRepo)
	suite.admins = NewAdminUserService(adminRepo)
	suite.assignments = NewAssignmentService(assignmentRepo, studentRepo, classroomRepo, taskRepo, checklistRepo).
		WithClock(func() time.Time { return suite.clock }, time.UTC)
	suite.reports = NewReportService(suite.assignments)
}

func (suite *ServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ServiceTestSuite) twoTaskChecklist() *models.Checklist {
	checklist, err := suite.checklists.CreateChecklist(suite.ctx, ChecklistInput{
		ID:      "cl-two",
		Name:    "Two Tasks",
		TaskIDs: []string{"task-1", "task-2"},
	})
	suite.Require().NoError(err)
	return checklist
}

func (suite *ServiceTestSuite) create(date string, studentIDs ...string) *models.Assignment {
	a, err := suite.assignments.CreateAssignment(suite.ctx, CreateAssignmentInput{
		Date:        models.MustParseDate(date),
		ClassroomID: "classroom-1",
		ChecklistID: "cl-two",
		StudentIDs:  studentIDs,
	})
	suite.Require().NoError(err)
	return a
}

func (suite *ServiceTestSuite) TestCompletionScenario() {
	suite.twoTaskChecklist()
	a := suite.create("2025-03-12", "student-1", "student-2")
	suite.Equal(models.AssignmentStatusAssigned, a.Status)

	rows, err := suite.assignments.ListExpanded(suite.ctx, ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	order := [][2]string{
		{"student-1", "task-1"},
		{"student-1", "task-2"},
		{"student-2", "task-1"},
		{"student-2", "task-2"},
	}
	for i, row := range rows {
		suite.Equal(a.ID, row.AssignmentID)
		suite.Equal(order[i][0], row.StudentID)
		suite.Equal(order[i][1], row.TaskID)
		suite.Equal(models.AssignmentStatusAssigned, row.Status)
		suite.Equal("Computer Lab 1", row.ClassroomName)
	}

	completed, err := suite.assignments.MarkComplete(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCompleted, completed.Status)
	suite.Equal(int64(2), completed.Version)

	rows, err = suite.assignments.ListExpanded(suite.ctx, ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	for _, row := range rows {
		suite.Equal(models.AssignmentStatusCompleted, row.Status)
		suite.Require().NotNil(row.CompletedAt)
		suite.True(row.CompletedAt.Equal(suite.clock))
	}

	// Completing again changes nothing.
	suite.clock = suite.clock.Add(time.Hour)
	again, err := suite.assignments.MarkComplete(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), again.Version)
	suite.True(again.CompletedAt.Equal(suite.clock.Add(-time.Hour)))
}

func (suite *ServiceTestSuite) TestCreateAssignmentValidation() {
	suite.twoTaskChecklist()
	empty, err := suite.checklists.CreateChecklist(suite.ctx, ChecklistInput{Name: "Empty"})
	suite.Require().NoError(err)

	base := CreateAssignmentInput{
		Date:        models.MustParseDate("2025-03-12"),
		ClassroomID: "classroom-1",
		ChecklistID: "cl-two",
		StudentIDs:  []string{"student-1"},
	}

	input := base
	input.StudentIDs = []string{" ", ""}
	_, err = suite.assignments.CreateAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrNoStudents))

	input = base
	input.Date = models.Date{}
	_, err = suite.assignments.CreateAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrDateRequired))

	input = base
	input.ClassroomID = "nowhere"
	_, err = suite.assignments.CreateAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrInvalidClassroom))

	input = base
	input.ChecklistID = empty.ID
	_, err = suite.assignments.CreateAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrEmptyChecklist))

	input = base
	input.ChecklistID = "missing"
	_, err = suite.assignments.CreateAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrInvalidChecklist))

	input = base
	input.StudentIDs = []string{"student-1", "ghost"}
	_, err = suite.assignments.CreateAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrUnknownStudent))

	input = base
	input.ID = "a-fixed"
	input.StudentIDs = []string{"student-2", "student-1", "student-2"}
	a, err := suite.assignments.CreateAssignment(suite.ctx, input)
	suite.Require().NoError(err)
	suite.Equal("a-fixed", a.ID)
	suite.Equal([]string{"student-2", "student-1"}, a.StudentIDs())

	_, err = suite.assignments.CreateAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrAssignmentExists))
}

func (suite *ServiceTestSuite) TestUpdateStatus() {
	suite.twoTaskChecklist()
	a := suite.create("2025-03-12", "student-1")

	comments := "started"
	updated, err := suite.assignments.UpdateStatus(suite.ctx, a.ID, UpdateStatusInput{Status: "pending", Comments: &comments})
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusPending, updated.Status)
	suite.Nil(updated.CompletedAt)
	suite.Equal(int64(2), updated.Version)

	stale := int64(1)
	_, err = suite.assignments.UpdateStatus(suite.ctx, a.ID, UpdateStatusInput{Status: "completed", Version: &stale})
	suite.True(errors.Is(err, ErrVersionConflict))

	_, err = suite.assignments.UpdateStatus(suite.ctx, a.ID, UpdateStatusInput{Status: "done"})
	suite.True(errors.Is(err, ErrInvalidStatus))

	current := int64(2)
	completedAt := time.Date(2025, 3, 12, 8, 30, 0, 0, time.UTC)
	updated, err = suite.assignments.UpdateStatus(suite.ctx, a.ID, UpdateStatusInput{Status: "completed", CompletedAt: &completedAt, Version: &current})
	suite.Require().NoError(err)
	suite.True(updated.CompletedAt.Equal(completedAt))
	suite.Equal("started", *updated.Comments)

	_, err = suite.assignments.UpdateStatus(suite.ctx, a.ID, UpdateStatusInput{Status: "pending"})
	suite.True(errors.Is(err, ErrCompletedIsTerminal))

	_, err = suite.assignments.UpdateStatus(suite.ctx, "missing", UpdateStatusInput{Status: "pending"})
	suite.True(errors.Is(err, ErrAssignmentNotFound))
}

func (suite *ServiceTestSuite) TestMarkCompleteForStudent() {
	suite.twoTaskChecklist()
	a := suite.create("2025-03-12", "student-1")

	_, err := suite.assignments.MarkCompleteForStudent(suite.ctx, a.ID, "student-2")
	suite.True(errors.Is(err, ErrNotAssignedStudent))

	done, err := suite.assignments.MarkCompleteForStudent(suite.ctx, a.ID, "student-1")
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCompleted, done.Status)

	rows, err := suite.assignments.ListExpandedForStudent(suite.ctx, "student-1", ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Len(rows, 2)

	rows, err = suite.assignments.ListExpandedForStudent(suite.ctx, "student-2", ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ServiceTestSuite) TestCreateRandomAssignment() {
	suite.twoTaskChecklist()
	seed := int64(42)
	input := RandomAssignmentInput{
		Date:        models.MustParseDate("2025-03-12"),
		ClassroomID: "classroom-2",
		ChecklistID: "cl-two",
		Count:       3,
		Seed:        &seed,
	}

	first, usedSeed, err := suite.assignments.CreateRandomAssignment(suite.ctx, input)
	suite.Require().NoError(err)
	suite.Equal(seed, usedSeed)
	suite.Len(first.StudentIDs(), 3)

	second, _, err := suite.assignments.CreateRandomAssignment(suite.ctx, input)
	suite.Require().NoError(err)
	suite.Equal(first.StudentIDs(), second.StudentIDs())
	suite.NotEqual(first.ID, second.ID)

	input.Count = 6
	_, _, err = suite.assignments.CreateRandomAssignment(suite.ctx, input)
	suite.True(errors.Is(err, ErrNotEnoughStudents))

	input.Count = 1
	input.ClassSection = "BSIT 2A"
	input.Seed = nil
	picked, usedSeed, err := suite.assignments.CreateRandomAssignment(suite.ctx, input)
	suite.Require().NoError(err)
	suite.Equal([]string{"student-3"}, picked.StudentIDs())
	suite.Equal(suite.clock.UnixNano(), usedSeed)
}

func (suite *ServiceTestSuite) TestSweepOverdue() {
	suite.twoTaskChecklist()
	old := suite.create("2025-03-10", "student-1")
	pending := suite.create("2025-03-11", "student-2")
	today := suite.create("2025-03-12", "student-1")
	done := suite.create("2025-03-09", "student-2")

	_, err := suite.assignments.UpdateStatus(suite.ctx, pending.ID, UpdateStatusInput{Status: "pending"})
	suite.Require().NoError(err)
	_, err = suite.assignments.MarkComplete(suite.ctx, done.ID)
	suite.Require().NoError(err)

	swept, err := suite.assignments.SweepOverdue(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(2, swept)

	for id, want := range map[string]models.AssignmentStatus{
		old.ID:     models.AssignmentStatusOverdue,
		pending.ID: models.AssignmentStatusOverdue,
		today.ID:   models.AssignmentStatusAssigned,
		done.ID:    models.AssignmentStatusCompleted,
	} {
		a, err := suite.assignments.GetAssignment(suite.ctx, id)
		suite.Require().NoError(err)
		suite.Equal(want, a.Status, id)
	}

	swept, err = suite.assignments.SweepOverdue(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(swept)

	// Overdue work can still be completed.
	late, err := suite.assignments.MarkComplete(suite.ctx, old.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCompleted, late.Status)
}

func (suite *ServiceTestSuite) TestExpansionSkipsDanglingReferences() {
	suite.twoTaskChecklist()
	suite.create("2025-03-12", "student-1", "student-2")

	// Remove a student behind the service's back.
	suite.Require().NoError(suite.db.Where("id = ?", "student-2").Delete(&models.Student{}).Error)

	rows, err := suite.assignments.ListExpanded(suite.ctx, ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	for _, row := range rows {
		suite.Equal("student-1", row.StudentID)
	}

	suite.Require().NoError(suite.db.Where("id = ?", "classroom-1").Delete(&models.Classroom{}).Error)
	rows, err = suite.assignments.ListExpanded(suite.ctx, ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ServiceTestSuite) TestDeleteReferencedData() {
	suite.twoTaskChecklist()
	a := suite.create("2025-03-12", "student-1")

	suite.True(errors.Is(suite.classrooms.DeleteClassroom(suite.ctx, "classroom-1"), ErrReferenceInUse))
	suite.True(errors.Is(suite.checklists.DeleteChecklist(suite.ctx, "cl-two"), ErrReferenceInUse))
	suite.True(errors.Is(suite.students.DeleteStudent(suite.ctx, "student-1"), ErrReferenceInUse))
	suite.True(errors.Is(suite.tasks.DeleteTask(suite.ctx, "task-1"), ErrReferenceInUse))

	taskIDs := []string{}
	_, err := suite.checklists.UpdateChecklist(suite.ctx, "cl-two", UpdateChecklistInput{TaskIDs: &taskIDs})
	suite.True(errors.Is(err, ErrReferenceInUse))
	taskIDs = []string{"task-2", "task-1"}
	_, err = suite.checklists.UpdateChecklist(suite.ctx, "cl-two", UpdateChecklistInput{TaskIDs: &taskIDs})
	suite.True(errors.Is(err, ErrReferenceInUse))

	// Renaming or resubmitting the same tasks leaves the rows alone.
	name := "Two Tasks Renamed"
	taskIDs = []string{"task-1", "task-2"}
	_, err = suite.checklists.UpdateChecklist(suite.ctx, "cl-two", UpdateChecklistInput{Name: &name, TaskIDs: &taskIDs})
	suite.Require().NoError(err)

	rows, err := suite.assignments.ListExpanded(suite.ctx, ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Len(rows, 2)

	suite.Require().NoError(suite.assignments.DeleteAssignment(suite.ctx, a.ID))
	suite.True(errors.Is(suite.assignments.DeleteAssignment(suite.ctx, a.ID), ErrAssignmentNotFound))

	rows, err = suite.assignments.ListExpanded(suite.ctx, ListAssignmentsInput{})
	suite.Require().NoError(err)
	suite.Empty(rows)

	taskIDs = []string{"task-3"}
	updated, err := suite.checklists.UpdateChecklist(suite.ctx, "cl-two", UpdateChecklistInput{TaskIDs: &taskIDs})
	suite.Require().NoError(err)
	suite.Equal([]string{"task-3"}, updated.TaskIDs())

	suite.NoError(suite.classrooms.DeleteClassroom(suite.ctx, "classroom-1"))
	suite.NoError(suite.students.DeleteStudent(suite.ctx, "student-1"))
	suite.NoError(suite.checklists.DeleteChecklist(suite.ctx, "cl-two"))
	suite.True(errors.Is(suite.classrooms.DeleteClassroom(suite.ctx, "classroom-1"), ErrClassroomNotFound))
}

// racingAssignmentRepository reports a stale version for its first
// `failures` writes, as if another writer got there first.
type racingAssignmentRepository struct {
	repository.AssignmentRepository
	failures int
	calls    int
}

func (r *racingAssignmentRepository) UpdateStatus(ctx context.Context, a *models.Assignment, expectedVersion int64) error {
	r.calls++
	if r.calls <= r.failures {
		return repository.ErrStaleVersion
	}
	return r.AssignmentRepository.UpdateStatus(ctx, a, expectedVersion)
}

func (suite *ServiceTestSuite) racingService(failures int) (*AssignmentService, *racingAssignmentRepository) {
	repo := &racingAssignmentRepository{
		AssignmentRepository: repository.NewAssignmentRepository(suite.db),
		failures:             failures,
	}
	svc := NewAssignmentService(
		repo,
		repository.NewStudentRepository(suite.db),
		repository.NewClassroomRepository(suite.db),
		repository.NewCleaningTaskRepository(suite.db),
		repository.NewChecklistRepository(suite.db),
	).WithClock(func() time.Time { return suite.clock }, time.UTC)
	return svc, repo
}

func (suite *ServiceTestSuite) TestMarkCompleteRetriesOnVersionConflict() {
	suite.twoTaskChecklist()
	a := suite.create("2025-03-12", "student-1")

	svc, repo := suite.racingService(1)
	done, err := svc.MarkComplete(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Equal(2, repo.calls)
	suite.Equal(models.AssignmentStatusCompleted, done.Status)

	stored, err := suite.assignments.GetAssignment(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCompleted, stored.Status)
	suite.Equal(a.Version+1, stored.Version)
}

func (suite *ServiceTestSuite) TestMarkCompleteGivesUpAfterRepeatedConflicts() {
	suite.twoTaskChecklist()
	a := suite.create("2025-03-12", "student-1")

	svc, repo := suite.racingService(markCompleteAttempts + 1)
	_, err := svc.MarkComplete(suite.ctx, a.ID)
	suite.True(errors.Is(err, ErrVersionConflict))
	suite.Equal(markCompleteAttempts, repo.calls)

	stored, err := suite.assignments.GetAssignment(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusAssigned, stored.Status)
	suite.Equal(a.Version, stored.Version)
}

func (suite *ServiceTestSuite) TestWeeklySummary() {
	suite.twoTaskChecklist()
	suite.create("2025-03-10", "student-1")
	monday := suite.create("2025-03-10", "student-2")
	suite.create("2025-03-16", "student-1", "student-2")
	suite.create("2025-03-17", "student-1")

	_, err := suite.assignments.MarkComplete(suite.ctx, monday.ID)
	suite.Require().NoError(err)

	r, buckets, err := suite.reports.WeeklySummary(suite.ctx, nil, nil)
	suite.Require().NoError(err)
	suite.Equal("2025-03-10", r.Start.String())
	suite.Equal("2025-03-16", r.End.String())
	suite.Require().Len(buckets, 7)
	suite.Equal(2, buckets[0].Assigned)
	suite.Equal(2, buckets[0].Completed)
	suite.Zero(buckets[1].Total())
	suite.Equal(4, buckets[6].Assigned)

	start := models.MustParseDate("2025-03-17")
	end := models.MustParseDate("2025-03-10")
	_, _, err = suite.reports.WeeklySummary(suite.ctx, &start, &end)
	suite.True(errors.Is(err, ErrInvalidRange))

	start = models.MustParseDate("2024-01-01")
	end = models.MustParseDate("2025-03-10")
	_, _, err = suite.reports.WeeklySummary(suite.ctx, &start, &end)
	suite.True(errors.Is(err, ErrRangeTooLong))
}

func (suite *ServiceTestSuite) TestStudentPerformance() {
	suite.twoTaskChecklist()
	a := suite.create("2025-03-10", "student-1", "student-2")
	suite.create("2025-03-11", "student-2")
	suite.create("2025-04-01", "student-3")

	_, err := suite.assignments.MarkComplete(suite.ctx, a.ID)
	suite.Require().NoError(err)

	r, stats, err := suite.reports.StudentPerformance(suite.ctx, nil, nil)
	suite.Require().NoError(err)
	suite.Nil(r)
	suite.Require().Len(stats, 3)
	suite.Equal("student-1", stats[0].StudentID)
	suite.Equal(1.0, stats[0].CompletionRate)
	suite.Equal("student-2", stats[1].StudentID)
	suite.Equal(4, stats[1].Assigned)
	suite.Equal(2, stats[1].Completed)
	suite.Equal(0.5, stats[1].CompletionRate)
	suite.Equal("2024002", stats[2].StudentCode)

	start := models.MustParseDate("2025-03-01")
	end := models.MustParseDate("2025-03-31")
	r, stats, err = suite.reports.StudentPerformance(suite.ctx, &start, &end)
	suite.Require().NoError(err)
	suite.Require().NotNil(r)
	suite.Len(stats, 2, "students without rows in range are omitted")
}

func (suite *ServiceTestSuite) TestAuth() {
	admin, err := suite.auth.Login(suite.ctx, LoginInput{Username: "admin", Password: database.SeedAdminPassword})
	suite.Require().NoError(err)
	suite.NotNil(admin.LastLogin)

	_, err = suite.auth.Login(suite.ctx, LoginInput{Username: "admin", Password: "wrong"})
	suite.True(errors.Is(err, ErrInvalidCredentials))

	student, err := suite.auth.StudentLogin(suite.ctx, StudentLoginInput{StudentCode: "2024001", Password: database.SeedStudentPassword})
	suite.Require().NoError(err)
	suite.Equal("Maria", student.FirstName)

	inactive := models.AccountStatusInactive
	_, err = suite.students.UpdateStudent(suite.ctx, student.ID, UpdateStudentInput{Status: &inactive})
	suite.Require().NoError(err)
	_, err = suite.auth.StudentLogin(suite.ctx, StudentLoginInput{StudentCode: "2024001", Password: database.SeedStudentPassword})
	suite.True(errors.Is(err, ErrInvalidCredentials))

	_, err = suite.auth.RegisterStudent(suite.ctx, RegisterStudentInput{
		StudentCode: "2025001", FirstName: "Lea", LastName: "Reyes", ClassSection: "BSIT 1A", Password: "12345",
	})
	suite.True(errors.Is(err, ErrPasswordTooShort))

	registered, err := suite.auth.RegisterStudent(suite.ctx, RegisterStudentInput{
		StudentCode: "2025001", FirstName: "Lea", LastName: "Reyes", ClassSection: "BSIT 1A", Password: "123456",
	})
	suite.Require().NoError(err)
	suite.Equal(models.AccountStatusActive, registered.Status)

	_, err = suite.auth.RegisterStudent(suite.ctx, RegisterStudentInput{
		StudentCode: "2025001", FirstName: "Lea", LastName: "Reyes", ClassSection: "BSIT 1A", Password: "123456",
	})
	suite.True(errors.Is(err, ErrStudentCodeTaken))
}

func (suite *ServiceTestSuite) TestCreateStudentGeneratesPassword() {
	student, temporary, err := suite.students.CreateStudent(suite.ctx, CreateStudentInput{
		StudentCode: "2025002", FirstName: "Ben", LastName: "Cruz", ClassSection: "BSIT 1A",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(temporary)

	loggedIn, err := suite.auth.StudentLogin(suite.ctx, StudentLoginInput{StudentCode: "2025002", Password: temporary})
	suite.Require().NoError(err)
	suite.Equal(student.ID, loggedIn.ID)

	_, temporary, err = suite.students.CreateStudent(suite.ctx, CreateStudentInput{
		StudentCode: "2025003", FirstName: "Ada", LastName: "Lim", ClassSection: "BSIT 1A", Password: "secret1",
	})
	suite.Require().NoError(err)
	suite.Empty(temporary)

	_, _, err = suite.students.CreateStudent(suite.ctx, CreateStudentInput{StudentCode: "2025004"})
	suite.True(errors.Is(err, ErrMissingField))
}

func (suite *ServiceTestSuite) TestReferenceDataUniqueness() {
	_, err := suite.classrooms.CreateClassroom(suite.ctx, ClassroomInput{ClassroomCode: "ROOM-101", Name: "Duplicate"})
	suite.True(errors.Is(err, ErrClassroomCodeTaken))

	_, err = suite.tasks.CreateTask(suite.ctx, CleaningTaskInput{Name: "Sweep the floor"})
	suite.True(errors.Is(err, ErrTaskNameTaken))

	_, err = suite.checklists.CreateChecklist(suite.ctx, ChecklistInput{Name: "Bad", TaskIDs: []string{"task-1", "nope"}})
	suite.True(errors.Is(err, ErrUnknownTask))

	name := "Weekly Deep Clean"
	_, err = suite.checklists.UpdateChecklist(suite.ctx, "checklist-1", UpdateChecklistInput{Name: &name})
	suite.True(errors.Is(err, ErrChecklistNameTaken))

	taskIDs := []string{"task-3", "task-1", "task-3"}
	updated, err := suite.checklists.UpdateChecklist(suite.ctx, "checklist-1", UpdateChecklistInput{TaskIDs: &taskIDs})
	suite.Require().NoError(err)
	suite.Equal([]string{"task-3", "task-1"}, updated.TaskIDs())
}

func (suite *ServiceTestSuite) TestAdminUsers() {
	_, err := suite.admins.CreateAdminUser(suite.ctx, AdminUserInput{Username: "admin", Password: "secret1", FullName: "Dup", Role: "Staff"})
	suite.True(errors.Is(err, ErrUsernameTaken))

	suite.True(errors.Is(suite.admins.DeleteAdminUser(suite.ctx, "admin-1"), ErrLastActiveAdmin))

	inactive := models.AccountStatusInactive
	_, err = suite.admins.UpdateAdminUser(suite.ctx, "admin-1", UpdateAdminUserInput{Status: &inactive})
	suite.True(errors.Is(err, ErrLastActiveAdmin))

	second, err := suite.admins.CreateAdminUser(suite.ctx, AdminUserInput{Username: "staff", Password: "secret1", FullName: "Staff Member", Role: "Staff"})
	suite.Require().NoError(err)
	suite.Equal(models.AccountStatusActive, second.Status)

	suite.NoError(suite.admins.DeleteAdminUser(suite.ctx, "admin-1"))
	_, err = suite.auth.Login(suite.ctx, LoginInput{Username: "staff", Password: "secret1"})
	suite.NoError(err)
}

func (suite *ServiceTestSuite) TestGenerateTasksWithoutAI() {
	_, err := suite.tasks.GenerateTasks(suite.ctx, "the room is dusty")
	suite.True(errors.Is(err, ErrAIServiceNotConfigured))

	_, err = suite.tasks.GenerateTasks(suite.ctx, "  ")
	suite.True(errors.Is(err, ErrGenerateTextRequired))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
