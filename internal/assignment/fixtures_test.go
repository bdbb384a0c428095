package assignment

import (
	"github.com/yukikurage/piyuclean-api/internal/models"
)

func testReference() Reference {
	students := []models.Student{
		{ID: "S1", StudentCode: "2024001", FirstName: "Maria", LastName: "Santos", ClassSection: "BSIT 1B"},
		{ID: "S2", StudentCode: "2024002", FirstName: "John", LastName: "Smith", ClassSection: "BSIT 2A"},
		{ID: "S3", StudentCode: "2024003", FirstName: "Ana", LastName: "Garcia", ClassSection: "BSIT 3A"},
	}
	classrooms := []models.Classroom{
		{ID: "R1", ClassroomCode: "ROOM-101", Name: "Computer Lab 1"},
	}
	tasks := []models.CleaningTask{
		{ID: "T1", Name: "Sweep the floor"},
		{ID: "T2", Name: "Arrange chairs"},
		{ID: "T3", Name: "Clean whiteboard"},
	}
	cl1 := models.Checklist{ID: "CL1", Name: "Daily"}
	cl1.SetTasks([]string{"T1", "T2"})
	cl2 := models.Checklist{ID: "CL2", Name: "Weekly"}
	cl2.SetTasks([]string{"T3", "T1", "T2"})

	return NewReference(students, classrooms, tasks, []models.Checklist{cl1, cl2})
}

func newAssignment(id, date, classroomID, checklistID string, studentIDs ...string) models.Assignment {
	a := models.Assignment{
		ID:          id,
		Date:        models.MustParseDate(date),
		ClassroomID: classroomID,
		ChecklistID: checklistID,
		Status:      models.AssignmentStatusAssigned,
		Version:     1,
	}
	a.SetStudents(studentIDs)
	return a
}
