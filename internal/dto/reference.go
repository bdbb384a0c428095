package dto

import (
	"time"

	"github.com/yukikurage/piyuclean-api/internal/models"
)

// ClassroomDTO represents a classroom in API responses
type ClassroomDTO struct {
	ID            string    `json:"id"`
	ClassroomCode string    `json:"classroomId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CleaningTaskDTO represents a cleaning task in API responses
type CleaningTaskDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ChecklistDTO represents a checklist in API responses. TaskIDs keep the
// checklist order.
type ChecklistDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaskIDs     []string  `json:"taskIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GeneratedTaskDTO is a suggested cleaning task that has not been saved
type GeneratedTaskDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ClassroomListResponse struct {
	Classrooms []ClassroomDTO     `json:"classrooms"`
	Pagination PaginationResponse `json:"pagination"`
}

type CleaningTaskListResponse struct {
	Tasks      []CleaningTaskDTO  `json:"tasks"`
	Pagination PaginationResponse `json:"pagination"`
}

type ChecklistListResponse struct {
	Checklists []ChecklistDTO     `json:"checklists"`
	Pagination PaginationResponse `json:"pagination"`
}

func ToClassroomDTO(classroom models.Classroom) ClassroomDTO {
	return ClassroomDTO{
		ID:            classroom.ID,
		ClassroomCode: classroom.ClassroomCode,
		Name:          classroom.Name,
		Description:   classroom.Description,
		CreatedAt:     classroom.CreatedAt,
	}
}

func ToCleaningTaskDTO(task models.CleaningTask) CleaningTaskDTO {
	return CleaningTaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
	}
}

func ToChecklistDTO(checklist models.Checklist) ChecklistDTO {
	return ChecklistDTO{
		ID:          checklist.ID,
		Name:        checklist.Name,
		Description: checklist.Description,
		TaskIDs:     checklist.TaskIDs(),
		CreatedAt:   checklist.CreatedAt,
	}
}

func ToClassroomListResponse(classrooms []models.Classroom, pagination PaginationResponse) ClassroomListResponse {
	items := make([]ClassroomDTO, len(classrooms))
	for i, classroom := range classrooms {
		items[i] = ToClassroomDTO(classroom)
	}
	return ClassroomListResponse{Classrooms: items, Pagination: pagination}
}

func ToCleaningTaskListResponse(tasks []models.CleaningTask, pagination PaginationResponse) CleaningTaskListResponse {
	items := make([]CleaningTaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToCleaningTaskDTO(task)
	}
	return CleaningTaskListResponse{Tasks: items, Pagination: pagination}
}

func ToChecklistListResponse(checklists []models.Checklist, pagination PaginationResponse) ChecklistListResponse {
	items := make([]ChecklistDTO, len(checklists))
	for i, checklist := range checklists {
		items[i] = ToChecklistDTO(checklist)
	}
	return ChecklistListResponse{Checklists: items, Pagination: pagination}
}
