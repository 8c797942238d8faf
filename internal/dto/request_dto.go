package dto

import "time"

// ── Filters ───────────────────────────────────────────────────────────────────

type RequestFilter struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Search     string `form:"search"`
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	Department uint   `form:"department"`
}

func (f *RequestFilter) Normalize() { f.Page, f.Limit = normalizePage(f.Page, f.Limit) }

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateRequestRequest struct {
	InventoryID  *uint   `json:"inventory_id"`
	Description  string  `json:"description" validate:"required"`
	Priority     string  `json:"priority" validate:"required"`
	DepartmentID uint    `json:"department_id" validate:"required"`
	AdminNotes   *string `json:"admin_notes"`
}

// UpdateRequestRequest is a sparse patch. Status, AdminNotes and
// RejectionReason are honored for admin callers only.
type UpdateRequestRequest struct {
	InventoryID     *uint   `json:"inventory_id"`
	Description     *string `json:"description"`
	Priority        *string `json:"priority"`
	DepartmentID    *uint   `json:"department_id"`
	Status          *string `json:"status"`
	AdminNotes      *string `json:"admin_notes"`
	RejectionReason *string `json:"rejection_reason"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type RequestResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	InventoryID     *uint     `json:"inventory_id"`
	Description     string    `json:"description"`
	Priority        string    `json:"priority"`
	DepartmentID    uint      `json:"department_id"`
	Status          string    `json:"status"`
	AdminNotes      *string   `json:"admin_notes"`
	RejectionReason *string   `json:"rejection_reason"`
	UserName        string    `json:"user_name"`
	UserFirstName   string    `json:"user_first_name"`
	UserLastName    string    `json:"user_last_name"`
	InventoryFolio  *string   `json:"inventory_folio"`
	InventoryBrand  *string   `json:"inventory_brand"`
	InventoryModel  *string   `json:"inventory_model"`
	DepartmentName  string    `json:"department_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RequestListResponse struct {
	Requests   []RequestResponse `json:"requests"`
	Pagination Pagination        `json:"pagination"`
}
