package models

import (
	"time"

	"gorm.io/gorm"
)

type AdminUser struct {
	ID           string        `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Username     string        `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string        `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string        `gorm:"type:varchar(128);not null" json:"fullName"`
	Role         string        `gorm:"type:varchar(32);not null" json:"role"`
	Status       AccountStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	LastLogin    *time.Time    `json:"lastLogin"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
