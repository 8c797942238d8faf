package dto

import "time"

// ── Filters ───────────────────────────────────────────────────────────────────

type InventoryFilter struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Search     string `form:"search"`
	Status     string `form:"status"`
	Category   uint   `form:"category"`
	Department uint   `form:"department"`
}

func (f *InventoryFilter) Normalize() { f.Page, f.Limit = normalizePage(f.Page, f.Limit) }

// ── Request DTOs ──────────────────────────────────────────────────────────────

// Date-only fields travel as "2006-01-02" strings, the format the frontend
// date pickers emit.
type CreateInventoryRequest struct {
	Folio          string  `json:"folio" validate:"required,max=50"`
	Brand          string  `json:"brand" validate:"required,max=100"`
	Model          string  `json:"model" validate:"required,max=100"`
	CategoryID     uint    `json:"category_id" validate:"required"`
	DepartmentID   uint    `json:"department_id" validate:"required"`
	Status         string  `json:"status"`
	SerialNumber   *string `json:"serial_number"`
	PurchaseDate   *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry *string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Notes          *string `json:"notes"`
}

type UpdateInventoryRequest struct {
	Folio          *string `json:"folio" validate:"omitempty,max=50"`
	Brand          *string `json:"brand" validate:"omitempty,max=100"`
	Model          *string `json:"model" validate:"omitempty,max=100"`
	CategoryID     *uint   `json:"category_id"`
	DepartmentID   *uint   `json:"department_id"`
	Status         *string `json:"status"`
	SerialNumber   *string `json:"serial_number"`
	PurchaseDate   *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry *string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Notes          *string `json:"notes"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type InventoryResponse struct {
	ID             uint       `json:"id"`
	Folio          string     `json:"folio"`
	Brand          string     `json:"brand"`
	Model          string     `json:"model"`
	CategoryID     uint       `json:"category_id"`
	DepartmentID   uint       `json:"department_id"`
	Status         string     `json:"status"`
	SerialNumber   *string    `json:"serial_number"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	Notes          *string    `json:"notes"`
	CategoryName   string     `json:"category_name"`
	DepartmentName string     `json:"department_name"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type InventoryListResponse struct {
	Items      []InventoryResponse `json:"items"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
	Total      int64               `json:"total"`
}
