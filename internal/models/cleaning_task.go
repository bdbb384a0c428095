package models

import (
	"time"

	"gorm.io/gorm"
)

// CleaningTask is a single chore that checklists are composed of.
type CleaningTask struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *CleaningTask) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
