package models

import (
	"time"

	"gorm.io/gorm"
)

type Classroom struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	ClassroomCode string    `gorm:"column:classroom_code;type:varchar(64);uniqueIndex;not null" json:"classroomId"`
	Name          string    `gorm:"type:varchar(128);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (c *Classroom) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
