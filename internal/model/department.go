package model

import "time"

// Department groups users, inventory items and requests by organizational area.
type Department struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Department) TableName() string { return "departments" }
