package assignment

import (
	"fmt"
	"time"

	"github.com/yukikurage/piyuclean-api/internal/models"
)

// Reference is the reference data an expansion resolves ids against.
type Reference struct {
	Students   map[string]models.Student
	Classrooms map[string]models.Classroom
	Tasks      map[string]models.CleaningTask
	Checklists map[string]models.Checklist
}

// NewReference indexes reference data by id. Checklists must carry their
// Tasks relation for their task lists to resolve.
func NewReference(students []models.Student, classrooms []models.Classroom, tasks []models.CleaningTask, checklists []models.Checklist) Reference {
	ref := Reference{
		Students:   make(map[string]models.Student, len(students)),
		Classrooms: make(map[string]models.Classroom, len(classrooms)),
		Tasks:      make(map[string]models.CleaningTask, len(tasks)),
		Checklists: make(map[string]models.Checklist, len(checklists)),
	}
	for _, s := range students {
		ref.Students[s.ID] = s
	}
	for _, c := range classrooms {
		ref.Classrooms[c.ID] = c
	}
	for _, t := range tasks {
		ref.Tasks[t.ID] = t
	}
	for _, cl := range checklists {
		ref.Checklists[cl.ID] = cl
	}
	return ref
}

// RowKey identifies an expanded row.
type RowKey struct {
	AssignmentID string
	StudentID    string
	TaskID       string
}

func (k RowKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.AssignmentID, k.StudentID, k.TaskID)
}

// ExpandedRow is one (student, task) pair of an assignment. Status,
// CompletedAt and Comments always equal the parent assignment's values.
type ExpandedRow struct {
	AssignmentID  string
	Date          models.Date
	ClassroomID   string
	ClassroomName string
	StudentID     string
	StudentName   string
	TaskID        string
	TaskName      string
	Status        models.AssignmentStatus
	CompletedAt   *time.Time
	Comments      *string
}

func (r ExpandedRow) Key() RowKey {
	return RowKey{AssignmentID: r.AssignmentID, StudentID: r.StudentID, TaskID: r.TaskID}
}

// Expand derives the per student, per task rows of the given assignments.
//
// An assignment whose classroom or checklist does not resolve is skipped
// entirely. Students and tasks that do not resolve are skipped one by one,
// so an assignment may expand partially. Rows keep assignment order, then
// student order, then checklist position.
func Expand(assignments []models.Assignment, ref Reference) []ExpandedRow {
	rows := make([]ExpandedRow, 0)
	for _, a := range assignments {
		rows = append(rows, ExpandOne(a, ref)...)
	}
	return rows
}

// ExpandOne expands a single assignment.
func ExpandOne(a models.Assignment, ref Reference) []ExpandedRow {
	classroom, ok := ref.Classrooms[a.ClassroomID]
	if !ok {
		return nil
	}
	checklist, ok := ref.Checklists[a.ChecklistID]
	if !ok {
		return nil
	}

	tasks := make([]models.CleaningTask, 0, len(checklist.Tasks))
	for _, taskID := range checklist.TaskIDs() {
		if task, ok := ref.Tasks[taskID]; ok {
			tasks = append(tasks, task)
		}
	}

	studentIDs := a.StudentIDs()
	rows := make([]ExpandedRow, 0, len(studentIDs)*len(tasks))
	for _, studentID := range studentIDs {
		student, ok := ref.Students[studentID]
		if !ok {
			continue
		}
		for _, task := range tasks {
			rows = append(rows, ExpandedRow{
				AssignmentID:  a.ID,
				Date:          a.Date,
				ClassroomID:   classroom.ID,
				ClassroomName: classroom.Name,
				StudentID:     student.ID,
				StudentName:   student.FullName(),
				TaskID:        task.ID,
				TaskName:      task.Name,
				Status:        a.Status,
				CompletedAt:   a.CompletedAt,
				Comments:      a.Comments,
			})
		}
	}
	return rows
}

// ForStudent keeps the rows that belong to studentID.
func ForStudent(rows []ExpandedRow, studentID string) []ExpandedRow {
	out := make([]ExpandedRow, 0)
	for _, r := range rows {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}
