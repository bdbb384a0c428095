package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/piyuclean-api/internal/database"
	"github.com/yukikurage/piyuclean-api/internal/models"
	"github.com/yukikurage/piyuclean-api/internal/utils"
	"gorm.io/gorm"
)

// RepositoryTestSuite runs the gorm repositories against in-memory SQLite
type RepositoryTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *gorm.DB
	assignments AssignmentRepository
	students    StudentRepository
	classrooms  ClassroomRepository
	tasks       CleaningTaskRepository
	checklists  ChecklistRepository
	admins      AdminUserRepository
}

func (suite *RepositoryTestSuite) SetupTest() {
	var err error
	suite.db, err = database.OpenInMemory()
	suite.Require().NoError(err)

	suite.ctx = context.Background()
	suite.assignments = NewAssignmentRepository(suite.db)
	suite.students = NewStudentRepository(suite.db)
	suite.classrooms = NewClassroomRepository(suite.db)
	suite.tasks = NewCleaningTaskRepository(suite.db)
	suite.checklists = NewChecklistRepository(suite.db)
	suite.admins = NewAdminUserRepository(suite.db)

	suite.Require().NoError(database.Seed(suite.db))
}

func (suite *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RepositoryTestSuite) createAssignment(id, date, classroomID string, studentIDs ...string) *models.Assignment {
	a := &models.Assignment{
		ID:          id,
		Date:        models.MustParseDate(date),
		ClassroomID: classroomID,
		ChecklistID: "checklist-1",
	}
	a.SetStudents(studentIDs)
	suite.Require().NoError(suite.assignments.Create(suite.ctx, a))
	return a
}

func (suite *RepositoryTestSuite) TestAssignmentCreateAndFind() {
	suite.createAssignment("a-1", "2025-03-10", "classroom-1", "student-3", "student-1")

	found, err := suite.assignments.FindByID(suite.ctx, "a-1")
	suite.Require().NoError(err)
	suite.Equal("2025-03-10", found.Date.String())
	suite.Equal(models.AssignmentStatusAssigned, found.Status)
	suite.Equal(int64(1), found.Version)
	suite.Equal([]string{"student-3", "student-1"}, found.StudentIDs())

	_, err = suite.assignments.FindByID(suite.ctx, "missing")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryTestSuite) TestAssignmentListFilters() {
	suite.createAssignment("a-1", "2025-03-10", "classroom-1", "student-1")
	suite.createAssignment("a-2", "2025-03-11", "classroom-2", "student-2")
	suite.createAssignment("a-3", "2025-03-12", "classroom-1", "student-1", "student-2")

	all, total, err := suite.assignments.List(suite.ctx, AssignmentFilter{})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(all, 3)
	suite.Equal("a-3", all[0].ID, "newest date first")
	suite.Len(all[0].Students, 2)

	classroomID := "classroom-1"
	byRoom, total, err := suite.assignments.List(suite.ctx, AssignmentFilter{ClassroomID: &classroomID})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(byRoom, 2)

	date := models.MustParseDate("2025-03-11")
	byDate, _, err := suite.assignments.List(suite.ctx, AssignmentFilter{Date: &date})
	suite.Require().NoError(err)
	suite.Require().Len(byDate, 1)
	suite.Equal("a-2", byDate[0].ID)

	studentID := "student-2"
	byStudent, total, err := suite.assignments.List(suite.ctx, AssignmentFilter{StudentID: &studentID})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(byStudent, 2)

	from := models.MustParseDate("2025-03-11")
	to := models.MustParseDate("2025-03-12")
	ranged, _, err := suite.assignments.List(suite.ctx, AssignmentFilter{From: &from, To: &to})
	suite.Require().NoError(err)
	suite.Len(ranged, 2)

	page, total, err := suite.assignments.List(suite.ctx, AssignmentFilter{
		Pagination: utils.PaginationParams{Page: 2, Limit: 2, Offset: 2},
	})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(page, 1)
	suite.Equal("a-1", page[0].ID)
}

func (suite *RepositoryTestSuite) TestAssignmentUpdateStatus() {
	a := suite.createAssignment("a-1", "2025-03-10", "classroom-1", "student-1")

	completedAt := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	comments := "done"
	a.Status = models.AssignmentStatusCompleted
	a.CompletedAt = &completedAt
	a.Comments = &comments
	suite.Require().NoError(suite.assignments.UpdateStatus(suite.ctx, a, 1))
	suite.Equal(int64(2), a.Version)

	found, err := suite.assignments.FindByID(suite.ctx, "a-1")
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCompleted, found.Status)
	suite.Equal(int64(2), found.Version)
	suite.Require().NotNil(found.CompletedAt)
	suite.True(found.CompletedAt.Equal(completedAt))
	suite.Equal("done", *found.Comments)

	// A writer still holding version 1 loses.
	err = suite.assignments.UpdateStatus(suite.ctx, a, 1)
	suite.True(errors.Is(err, ErrStaleVersion))

	missing := &models.Assignment{ID: "missing", Status: models.AssignmentStatusPending}
	err = suite.assignments.UpdateStatus(suite.ctx, missing, 1)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryTestSuite) TestAssignmentDelete() {
	suite.createAssignment("a-1", "2025-03-10", "classroom-1", "student-1", "student-2")

	suite.Require().NoError(suite.assignments.Delete(suite.ctx, "a-1"))

	var links int64
	suite.db.Model(&models.AssignmentStudent{}).Count(&links)
	suite.Zero(links)

	err := suite.assignments.Delete(suite.ctx, "a-1")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryTestSuite) TestListOverdueCandidates() {
	suite.createAssignment("a-old", "2025-03-01", "classroom-1", "student-1")
	done := suite.createAssignment("a-done", "2025-03-02", "classroom-1", "student-1")
	suite.createAssignment("a-today", "2025-03-10", "classroom-1", "student-1")

	done.Status = models.AssignmentStatusCompleted
	now := time.Now()
	done.CompletedAt = &now
	suite.Require().NoError(suite.assignments.UpdateStatus(suite.ctx, done, 1))

	candidates, err := suite.assignments.ListOverdueCandidates(suite.ctx, models.MustParseDate("2025-03-10"))
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal("a-old", candidates[0].ID)
}

func (suite *RepositoryTestSuite) TestReferenceCounts() {
	suite.createAssignment("a-1", "2025-03-10", "classroom-1", "student-1", "student-2")

	count, err := suite.assignments.CountByClassroom(suite.ctx, "classroom-1")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.assignments.CountByChecklist(suite.ctx, "checklist-2")
	suite.Require().NoError(err)
	suite.Zero(count)

	count, err = suite.assignments.CountByStudent(suite.ctx, "student-2")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.checklists.CountByTask(suite.ctx, "task-4")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *RepositoryTestSuite) TestChecklistUpdateReplacesTasks() {
	checklist, err := suite.checklists.FindByID(suite.ctx, "checklist-1")
	suite.Require().NoError(err)
	suite.Equal([]string{"task-1", "task-2", "task-3"}, checklist.TaskIDs())

	checklist.Name = "Quick Clean"
	checklist.SetTasks([]string{"task-4", "task-1"})
	suite.Require().NoError(suite.checklists.Update(suite.ctx, checklist))

	reloaded, err := suite.checklists.FindByID(suite.ctx, "checklist-1")
	suite.Require().NoError(err)
	suite.Equal("Quick Clean", reloaded.Name)
	suite.Equal([]string{"task-4", "task-1"}, reloaded.TaskIDs())

	suite.Require().NoError(suite.checklists.Delete(suite.ctx, "checklist-1"))
	var links int64
	suite.db.Model(&models.ChecklistTask{}).Where("checklist_id = ?", "checklist-1").Count(&links)
	suite.Zero(links)
}

func (suite *RepositoryTestSuite) TestFindByIDsSkipsMissing() {
	students, err := suite.students.FindByIDs(suite.ctx, []string{"student-1", "nobody", "student-2"})
	suite.Require().NoError(err)
	suite.Len(students, 2)

	checklists, err := suite.checklists.FindByIDs(suite.ctx, []string{"checklist-2"})
	suite.Require().NoError(err)
	suite.Require().Len(checklists, 1)
	suite.Len(checklists[0].Tasks, 4)

	empty, err := suite.classrooms.FindByIDs(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *RepositoryTestSuite) TestStudentQueries() {
	student, err := suite.students.FindByCode(suite.ctx, "2024003")
	suite.Require().NoError(err)
	suite.Equal("Ana", student.FirstName)

	student.Status = models.AccountStatusInactive
	suite.Require().NoError(suite.students.Update(suite.ctx, student))

	ids, err := suite.students.ListActiveIDs(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Equal([]string{"student-2", "student-3", "student-5", "student-1"}, ids)

	ids, err = suite.students.ListActiveIDs(suite.ctx, "BSIT 1B")
	suite.Require().NoError(err)
	suite.Equal([]string{"student-2"}, ids)

	active := models.AccountStatusActive
	list, total, err := suite.students.List(suite.ctx, StudentFilter{Status: &active})
	suite.Require().NoError(err)
	suite.Equal(int64(4), total)
	suite.Equal("Juan", list[0].FirstName, "ordered by last name")
}

func (suite *RepositoryTestSuite) TestAdminUsers() {
	admin, err := suite.admins.FindByUsername(suite.ctx, "admin")
	suite.Require().NoError(err)

	count, err := suite.admins.CountActive(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.Require().NoError(suite.admins.Delete(suite.ctx, admin.ID))
	_, err = suite.admins.FindByID(suite.ctx, admin.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
