package repository

import (
	"context"

	"github.com/OliverHuron/SICAII/internal/model"

	"gorm.io/gorm"
)

// DepartmentRepository defines the data access contract for departments.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type DepartmentRepository interface {
	Create(ctx context.Context, d *model.Department) error
	FindByID(ctx context.Context, id uint) (*model.Department, error)
	FindByName(ctx context.Context, name string) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Update(ctx context.Context, d *model.Department) error
	Delete(ctx context.Context, id uint) error
}

type departmentRepo struct{ db *gorm.DB }

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository { return &departmentRepo{db: db} }

func (r *departmentRepo) Create(ctx context.Context, d *model.Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *departmentRepo) FindByID(ctx context.Context, id uint) (*model.Department, error) {
	var d model.Department
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *departmentRepo) FindByName(ctx context.Context, name string) (*model.Department, error) {
	var d model.Department
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&d).Error
	return &d, err
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var deps []model.Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&deps).Error
	return deps, err
}

func (r *departmentRepo) Update(ctx context.Context, d *model.Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *departmentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Department{}, id).Error
}
