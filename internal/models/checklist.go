package models

import (
	"sort"
	"time"

	"gorm.io/gorm"
)

type Checklist struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Tasks []ChecklistTask `gorm:"foreignKey:ChecklistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Checklist) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// TaskIDs returns the checklist's task ids ordered by position.
func (c Checklist) TaskIDs() []string {
	items := make([]ChecklistTask, len(c.Tasks))
	copy(items, c.Tasks)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.TaskID
	}
	return ids
}

// SetTasks replaces the checklist's tasks, keeping their order.
func (c *Checklist) SetTasks(taskIDs []string) {
	ensureID(&c.ID)
	c.Tasks = NewChecklistTasks(c.ID, taskIDs)
}

// ChecklistTask places a cleaning task at a position inside a checklist.
type ChecklistTask struct {
	ChecklistID string `gorm:"primaryKey;type:varchar(64)" json:"checklistId"`
	TaskID      string `gorm:"primaryKey;type:varchar(64);index" json:"taskId"`
	Position    int    `gorm:"not null;default:0" json:"position"`
}

// NewChecklistTasks builds the join rows for taskIDs in order, starting at position 1.
func NewChecklistTasks(checklistID string, taskIDs []string) []ChecklistTask {
	items := make([]ChecklistTask, len(taskIDs))
	for i, taskID := range taskIDs {
		items[i] = ChecklistTask{
			ChecklistID: checklistID,
			TaskID:      taskID,
			Position:    i + 1,
		}
	}
	return items
}
