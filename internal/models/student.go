package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID           string        `gorm:"primaryKey;type:varchar(64)" json:"id"`
	StudentCode  string        `gorm:"column:student_code;type:varchar(64);uniqueIndex;not null" json:"studentId"`
	FirstName    string        `gorm:"type:varchar(64);not null" json:"firstName"`
	LastName     string        `gorm:"type:varchar(64);not null" json:"lastName"`
	ClassSection string        `gorm:"type:varchar(64);not null" json:"classSection"`
	Status       AccountStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	PasswordHash string        `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// FullName is the display name used on expanded rows and reports.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
