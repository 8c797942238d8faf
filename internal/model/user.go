package model

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User stores system users with role-based access.
// Role: "admin" | "user"
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'user'"`
	// DepartmentID is nil for users not attached to any department.
	DepartmentID *uint `gorm:"index"`
	IsActive     bool  `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Department *Department `gorm:"foreignKey:DepartmentID"`
}

func (User) TableName() string { return "users" }

// FullName is the display name used by the dashboard's recent-requests feed.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
