package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/OliverHuron/SICAII/internal/authz"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository stubs and helpers shared by the service tests.

func asAdmin(id uint) authz.Principal {
	return authz.Principal{UserID: id, Username: "admin", Role: model.RoleAdmin}
}

func asUser(id uint) authz.Principal {
	return authz.Principal{UserID: id, Username: "empleado", Role: model.RoleUser}
}

func strPtr(s string) *string { return &s }
func uintPtr(n uint) *uint    { return &n }

// ── Department ───────────────────────────────────────────────────────────────

type stubDepartmentRepo struct {
	nextID uint
	rows   map[uint]*model.Department
}

var _ repository.DepartmentRepository = (*stubDepartmentRepo)(nil)

func newStubDepartmentRepo() *stubDepartmentRepo {
	return &stubDepartmentRepo{rows: make(map[uint]*model.Department)}
}

func (r *stubDepartmentRepo) Create(_ context.Context, d *model.Department) error {
	r.nextID++
	d.ID = r.nextID
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.rows[d.ID] = d
	return nil
}

func (r *stubDepartmentRepo) FindByID(_ context.Context, id uint) (*model.Department, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDepartmentRepo) FindByName(_ context.Context, name string) (*model.Department, error) {
	for _, d := range r.rows {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	out := make([]model.Department, 0, len(r.rows))
	for _, d := range r.rows {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubDepartmentRepo) Update(_ context.Context, d *model.Department) error {
	d.UpdatedAt = time.Now()
	r.rows[d.ID] = d
	return nil
}

func (r *stubDepartmentRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

// ── Category ─────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	nextID uint
	rows   map[uint]*model.Category
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{rows: make(map[uint]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.rows {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.rows[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

// ── User ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	nextID uint
	rows   map[uint]*model.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: make(map[uint]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	r.rows[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range r.rows {
		if (u.Username == login || u.Email == login) && u.IsActive {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.rows {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ dto.UserFilter) ([]model.User, int64, error) {
	out := make([]model.User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.rows[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

func (r *stubUserRepo) CountByDepartment(_ context.Context, departmentID uint) (int64, error) {
	var n int64
	for _, u := range r.rows {
		if u.DepartmentID != nil && *u.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.rows {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

// ── Inventory ────────────────────────────────────────────────────────────────

type stubInventoryRepo struct {
	nextID uint
	rows   map[uint]*model.InventoryItem
}

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{rows: make(map[uint]*model.InventoryItem)}
}

func (r *stubInventoryRepo) Create(_ context.Context, item *model.InventoryItem) error {
	r.nextID++
	item.ID = r.nextID
	r.rows[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uint) (*model.InventoryItem, error) {
	item, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubInventoryRepo) FindByFolio(_ context.Context, folio string) (*model.InventoryItem, error) {
	for _, item := range r.rows {
		if item.Folio == folio {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) List(_ context.Context, _ dto.InventoryFilter) ([]model.InventoryItem, int64, error) {
	out := make([]model.InventoryItem, 0, len(r.rows))
	for _, item := range r.rows {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *stubInventoryRepo) Update(_ context.Context, item *model.InventoryItem) error {
	r.rows[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

func (r *stubInventoryRepo) CountByCategory(_ context.Context, categoryID uint) (int64, error) {
	var n int64
	for _, item := range r.rows {
		if item.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *stubInventoryRepo) CountByDepartment(_ context.Context, departmentID uint) (int64, error) {
	var n int64
	for _, item := range r.rows {
		if item.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

// ── Request ──────────────────────────────────────────────────────────────────

type stubRequestRepo struct {
	nextID uint
	rows   map[uint]*model.Request
}

var _ repository.RequestRepository = (*stubRequestRepo)(nil)

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{rows: make(map[uint]*model.Request)}
}

func (r *stubRequestRepo) Create(_ context.Context, req *model.Request) error {
	r.nextID++
	req.ID = r.nextID
	req.CreatedAt = time.Now()
	r.rows[req.ID] = req
	return nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id uint) (*model.Request, error) {
	req, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return req, nil
}

func (r *stubRequestRepo) List(_ context.Context, ownerID *uint, _ dto.RequestFilter) ([]model.Request, int64, error) {
	out := make([]model.Request, 0, len(r.rows))
	for _, req := range r.rows {
		if ownerID != nil && req.UserID != *ownerID {
			continue
		}
		out = append(out, *req)
	}
	return out, int64(len(out)), nil
}

func (r *stubRequestRepo) Update(_ context.Context, req *model.Request) error {
	r.rows[req.ID] = req
	return nil
}

func (r *stubRequestRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

func (r *stubRequestRepo) CountByUser(_ context.Context, userID uint) (int64, error) {
	var n int64
	for _, req := range r.rows {
		if req.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *stubRequestRepo) CountByInventory(_ context.Context, inventoryID uint) (int64, error) {
	var n int64
	for _, req := range r.rows {
		if req.InventoryID != nil && *req.InventoryID == inventoryID {
			n++
		}
	}
	return n, nil
}

func (r *stubRequestRepo) CountByDepartment(_ context.Context, departmentID uint) (int64, error) {
	var n int64
	for _, req := range r.rows {
		if req.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}
