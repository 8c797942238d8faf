package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DepartmentResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatedResponse is the uniform 201 payload for create operations.
type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is the uniform 200 payload for update/delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}
