package models

import (
	"sort"
	"time"

	"gorm.io/gorm"
)

// Assignment assigns one checklist in one classroom to a set of students
// for a single day. It is the only stored record of cleaning duty; per
// student and per task rows are derived from it on every read.
type Assignment struct {
	ID          string           `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Date        Date             `gorm:"type:varchar(10);not null;index" json:"date"`
	ClassroomID string           `gorm:"type:varchar(64);not null;index" json:"classroomId"`
	ChecklistID string           `gorm:"type:varchar(64);not null;index" json:"checklistId"`
	Status      AssignmentStatus `gorm:"type:varchar(16);not null;default:'assigned';index" json:"status"`
	CompletedAt *time.Time       `json:"completedAt"`
	Comments    *string          `gorm:"type:text" json:"comments"`
	Version     int64            `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	// Relations
	Students []AssignmentStudent `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	if a.Version == 0 {
		a.Version = 1
	}
	if a.Status == "" {
		a.Status = AssignmentStatusAssigned
	}
	return nil
}

// StudentIDs returns the assigned student ids in the order they were given.
func (a Assignment) StudentIDs() []string {
	items := make([]AssignmentStudent, len(a.Students))
	copy(items, a.Students)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.StudentID
	}
	return ids
}

// SetStudents replaces the assigned students, keeping their order.
func (a *Assignment) SetStudents(studentIDs []string) {
	ensureID(&a.ID)
	a.Students = NewAssignmentStudents(a.ID, studentIDs)
}

// HasStudent reports whether studentID is one of the assigned students.
func (a Assignment) HasStudent(studentID string) bool {
	for _, s := range a.Students {
		if s.StudentID == studentID {
			return true
		}
	}
	return false
}

// AssignmentStudent links a student to an assignment.
type AssignmentStudent struct {
	AssignmentID string `gorm:"primaryKey;type:varchar(64)" json:"assignmentId"`
	StudentID    string `gorm:"primaryKey;type:varchar(64);index" json:"studentId"`
	Position     int    `gorm:"not null;default:0" json:"position"`
}

// NewAssignmentStudents builds the join rows for studentIDs in order.
func NewAssignmentStudents(assignmentID string, studentIDs []string) []AssignmentStudent {
	items := make([]AssignmentStudent, len(studentIDs))
	for i, studentID := range studentIDs {
		items[i] = AssignmentStudent{
			AssignmentID: assignmentID,
			StudentID:    studentID,
			Position:     i + 1,
		}
	}
	return items
}
