package dto

import "time"

// ── Filters ───────────────────────────────────────────────────────────────────

// UserFilter binds the list query parameters. Status is "active"/"inactive"
// or empty for all users.
type UserFilter struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Search     string `form:"search"`
	Role       string `form:"role"`
	Department uint   `form:"department"`
	Status     string `form:"status"`
}

// Normalize applies the default page/limit.
func (f *UserFilter) Normalize() { f.Page, f.Limit = normalizePage(f.Page, f.Limit) }

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"required,oneof=admin user"`
	DepartmentID *uint  `json:"department_id"`
	IsActive     *bool  `json:"is_active"`
}

// UpdateUserRequest is a sparse patch: nil fields are left unchanged and the
// password is re-hashed only when a new one is supplied.
type UpdateUserRequest struct {
	Username     *string `json:"username" validate:"omitempty,min=3,max=50"`
	FirstName    *string `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     *string `json:"password" validate:"omitempty,min=6"`
	Role         *string `json:"role" validate:"omitempty,oneof=admin user"`
	DepartmentID *uint   `json:"department_id"`
	IsActive     *bool   `json:"is_active"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type UserResponse struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	DepartmentID   *uint     `json:"department_id"`
	DepartmentName *string   `json:"department_name"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}
