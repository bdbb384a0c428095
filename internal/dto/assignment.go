package dto

import (
	"time"

	"github.com/yukikurage/piyuclean-api/internal/assignment"
	"github.com/yukikurage/piyuclean-api/internal/models"
)

// AssignmentDTO represents a stored assignment in API responses
type AssignmentDTO struct {
	ID          string                  `json:"id"`
	Date        models.Date             `json:"date"`
	ClassroomID string                  `json:"classroomId"`
	ChecklistID string                  `json:"checklistId"`
	StudentIDs  []string                `json:"studentIds"`
	Status      models.AssignmentStatus `json:"status"`
	CompletedAt *time.Time              `json:"completedAt"`
	Comments    *string                 `json:"comments"`
	Version     int64                   `json:"version"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// RandomAssignmentDTO is an assignment created by sampling, with the seed
// that reproduces the sample
type RandomAssignmentDTO struct {
	AssignmentDTO
	Seed int64 `json:"seed"`
}

// ExpandedRowDTO is one student and task of an assignment. ID is a display
// key only; clients address the parent through AssignmentID.
type ExpandedRowDTO struct {
	ID            string                  `json:"id"`
	AssignmentID  string                  `json:"assignmentId"`
	Date          models.Date             `json:"date"`
	ClassroomID   string                  `json:"classroomId"`
	ClassroomName string                  `json:"classroomName"`
	StudentID     string                  `json:"studentId"`
	StudentName   string                  `json:"studentName"`
	TaskID        string                  `json:"taskId"`
	TaskName      string                  `json:"taskName"`
	Status        models.AssignmentStatus `json:"status"`
	CompletedAt   *time.Time              `json:"completedAt"`
	Comments      *string                 `json:"comments"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentDTO    `json:"assignments"`
	Pagination  PaginationResponse `json:"pagination"`
}

type ExpandedRowListResponse struct {
	Rows []ExpandedRowDTO `json:"rows"`
}

func ToAssignmentDTO(a models.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:          a.ID,
		Date:        a.Date,
		ClassroomID: a.ClassroomID,
		ChecklistID: a.ChecklistID,
		StudentIDs:  a.StudentIDs(),
		Status:      a.Status,
		CompletedAt: a.CompletedAt,
		Comments:    a.Comments,
		Version:     a.Version,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func ToExpandedRowDTO(row assignment.ExpandedRow) ExpandedRowDTO {
	return ExpandedRowDTO{
		ID:            row.Key().String(),
		AssignmentID:  row.AssignmentID,
		Date:          row.Date,
		ClassroomID:   row.ClassroomID,
		ClassroomName: row.ClassroomName,
		StudentID:     row.StudentID,
		StudentName:   row.StudentName,
		TaskID:        row.TaskID,
		TaskName:      row.TaskName,
		Status:        row.Status,
		CompletedAt:   row.CompletedAt,
		Comments:      row.Comments,
	}
}

func ToAssignmentListResponse(assignments []models.Assignment, pagination PaginationResponse) AssignmentListResponse {
	items := make([]AssignmentDTO, len(assignments))
	for i, a := range assignments {
		items[i] = ToAssignmentDTO(a)
	}
	return AssignmentListResponse{Assignments: items, Pagination: pagination}
}

func ToExpandedRowListResponse(rows []assignment.ExpandedRow) ExpandedRowListResponse {
	items := make([]ExpandedRowDTO, len(rows))
	for i, row := range rows {
		items[i] = ToExpandedRowDTO(row)
	}
	return ExpandedRowListResponse{Rows: items}
}
