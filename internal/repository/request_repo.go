package repository

import (
	"context"
	"strings"

	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"

	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, req *model.Request) error
	FindByID(ctx context.Context, id uint) (*model.Request, error)
	// List scopes results to ownerID when non-nil (non-admin callers).
	List(ctx context.Context, ownerID *uint, filter dto.RequestFilter) ([]model.Request, int64, error)
	Update(ctx context.Context, req *model.Request) error
	Delete(ctx context.Context, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
	CountByInventory(ctx context.Context, inventoryID uint) (int64, error)
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
}

type requestRepo struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) RequestRepository { return &requestRepo{db: db} }

func (r *requestRepo) Create(ctx context.Context, req *model.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepo) FindByID(ctx context.Context, id uint) (*model.Request, error) {
	var req model.Request
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Inventory").Preload("Department").
		First(&req, id).Error
	return &req, err
}

func (r *requestRepo) List(ctx context.Context, ownerID *uint, filter dto.RequestFilter) ([]model.Request, int64, error) {
	var reqs []model.Request
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Request{})

	if ownerID != nil {
		q = q.Where("requests.user_id = ?", *ownerID)
	}
	if filter.Search != "" {
		// Free text also matches the referenced item's folio/brand/model.
		s := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Joins("LEFT JOIN inventory ON inventory.id = requests.inventory_id").
			Where(`LOWER(requests.description) LIKE ? OR LOWER(inventory.folio) LIKE ?
				OR LOWER(inventory.brand) LIKE ? OR LOWER(inventory.model) LIKE ?`,
				s, s, s, s)
	}
	if filter.Status != "" {
		q = q.Where("requests.status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("requests.priority = ?", filter.Priority)
	}
	if filter.Department != 0 {
		q = q.Where("requests.department_id = ?", filter.Department)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("User").Preload("Inventory").Preload("Department").
		Order("requests.created_at DESC, requests.id DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&reqs).Error
	return reqs, total, err
}

func (r *requestRepo) Update(ctx context.Context, req *model.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *requestRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Request{}, id).Error
}

func (r *requestRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Request{}).
		Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *requestRepo) CountByInventory(ctx context.Context, inventoryID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Request{}).
		Where("inventory_id = ?", inventoryID).Count(&n).Error
	return n, err
}

func (r *requestRepo) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Request{}).
		Where("department_id = ?", departmentID).Count(&n).Error
	return n, err
}
