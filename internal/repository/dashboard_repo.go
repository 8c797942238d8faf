package repository

import (
	"context"
	"time"

	"github.com/OliverHuron/SICAII/internal/model"

	"gorm.io/gorm"
)

// StatusCount is one row of the inventory GROUP BY status aggregate.
type StatusCount struct {
	Status string
	Count  int64
}

// DashboardRepository issues the live aggregate queries behind the dashboard.
// Nothing here is cached; every call hits the store.
type DashboardRepository interface {
	CountInventory(ctx context.Context) (int64, error)
	CountRequests(ctx context.Context) (int64, error)
	CountRequestsByStatus(ctx context.Context, status string) (int64, error)
	InventoryByStatus(ctx context.Context) ([]StatusCount, error)
	// RequestCreationTimes returns the created_at of every request filed since
	// the cutoff; month bucketing happens in the service.
	RequestCreationTimes(ctx context.Context, since time.Time) ([]time.Time, error)
	// RecentRequests returns the newest requests with their requester loaded,
	// scoped to ownerID when non-nil.
	RecentRequests(ctx context.Context, ownerID *uint, limit int) ([]model.Request, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) CountInventory(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountRequests(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Request{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountRequestsByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Request{}).
		Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) InventoryByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) RequestCreationTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(&model.Request{}).
		Where("created_at >= ?", since).
		Pluck("created_at", &times).Error
	return times, err
}

func (r *dashboardRepo) RecentRequests(ctx context.Context, ownerID *uint, limit int) ([]model.Request, error) {
	var reqs []model.Request
	q := r.db.WithContext(ctx).Model(&model.Request{})
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}
	err := q.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&reqs).Error
	return reqs, err
}
