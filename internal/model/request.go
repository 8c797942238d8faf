package model

import "time"

// Request lifecycle states.
const (
	RequestPending    = "pending"
	RequestApproved   = "approved"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestRejected   = "rejected"
)

// RequestStatuses lists every valid lifecycle state.
var RequestStatuses = []string{
	RequestPending, RequestApproved, RequestInProgress, RequestCompleted, RequestRejected,
}

// Request priorities (wire contract, Spanish labels).
const (
	PriorityBaja    = "Baja"
	PriorityMedia   = "Media"
	PriorityAlta    = "Alta"
	PriorityUrgente = "Urgente"
)

// RequestPriorities lists every valid priority.
var RequestPriorities = []string{PriorityBaja, PriorityMedia, PriorityAlta, PriorityUrgente}

// Request is a user-filed service/repair ticket, optionally tied to a specific
// inventory item. AdminNotes and RejectionReason are admin-only fields.
type Request struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint `gorm:"index;not null"`
	InventoryID     *uint
	Description     string `gorm:"not null"`
	Priority        string `gorm:"type:varchar(20);not null"`
	DepartmentID    uint   `gorm:"index;not null"`
	Status          string `gorm:"type:varchar(20);not null;default:'pending'"`
	AdminNotes      *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User       *User          `gorm:"foreignKey:UserID"`
	Inventory  *InventoryItem `gorm:"foreignKey:InventoryID"`
	Department *Department    `gorm:"foreignKey:DepartmentID"`
}

func (Request) TableName() string { return "requests" }

// ValidRequestStatus reports whether s is a known lifecycle state.
func ValidRequestStatus(s string) bool {
	for _, v := range RequestStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidRequestPriority reports whether p is a known priority.
func ValidRequestPriority(p string) bool {
	for _, v := range RequestPriorities {
		if v == p {
			return true
		}
	}
	return false
}
