package repository

import (
	"context"
	"strings"

	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	FindByID(ctx context.Context, id uint) (*model.InventoryItem, error)
	FindByFolio(ctx context.Context, folio string) (*model.InventoryItem, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryItem, int64, error)
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id uint) error
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Department").
		First(&item, id).Error
	return &item, err
}

func (r *inventoryRepo) FindByFolio(ctx context.Context, folio string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).Where("folio = ?", folio).First(&item).Error
	return &item, err
}

func (r *inventoryRepo) List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryItem, int64, error) {
	var items []model.InventoryItem
	var total int64

	q := r.db.WithContext(ctx).Model(&model.InventoryItem{})

	if filter.Search != "" {
		s := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(folio) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?", s, s, s)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != 0 {
		q = q.Where("category_id = ?", filter.Category)
	}
	if filter.Department != 0 {
		q = q.Where("department_id = ?", filter.Department)
	}

	// Total matching count is computed on the same predicate without pagination.
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Category").Preload("Department").
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *inventoryRepo) Update(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id).Error
}

func (r *inventoryRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *inventoryRepo) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Where("department_id = ?", departmentID).Count(&n).Error
	return n, err
}
