package service

import (
	"context"
	"fmt"
	"time"

	"github.com/OliverHuron/SICAII/internal/authz"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/repository"
)

const (
	dashboardMonths        = 6
	dashboardRecentLimit   = 10
	dashboardFallbackColor = "#6b7280"
)

// statusColors is the fixed status→display-color mapping used by the
// inventory pie chart.
var statusColors = map[string]string{
	model.StatusBueno:      "#10b981",
	model.StatusDefectuoso: "#f59e0b",
	model.StatusDanado:     "#ef4444",
	model.StatusPiezas:     "#8b5cf6",
	model.StatusBaja:       "#6b7280",
}

// DashboardService computes the role-sensitive landing-page aggregates.
type DashboardService interface {
	Summary(ctx context.Context, caller authz.Principal) (dto.DashboardResponse, error)
}

type dashboardService struct {
	repo  repository.DashboardRepository
	users repository.UserRepository
	now   func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository, users repository.UserRepository) DashboardService {
	return &dashboardService{repo: repo, users: users, now: time.Now}
}

func (s *dashboardService) Summary(ctx context.Context, caller authz.Principal) (dto.DashboardResponse, error) {
	var resp dto.DashboardResponse
	var err error

	if resp.TotalInventory, err = s.repo.CountInventory(ctx); err != nil {
		return resp, err
	}
	if resp.TotalRequests, err = s.repo.CountRequests(ctx); err != nil {
		return resp, err
	}
	if resp.PendingRequests, err = s.repo.CountRequestsByStatus(ctx, model.RequestPending); err != nil {
		return resp, err
	}

	// Active-user count is admin-only; regular users see zero.
	if caller.IsAdmin() {
		if resp.TotalUsers, err = s.users.CountActive(ctx); err != nil {
			return resp, err
		}
	}

	statusRows, err := s.repo.InventoryByStatus(ctx)
	if err != nil {
		return resp, err
	}
	resp.InventoryByStatus = make([]dto.StatusSlice, 0, len(statusRows))
	for _, row := range statusRows {
		color, ok := statusColors[row.Status]
		if !ok {
			color = dashboardFallbackColor
		}
		resp.InventoryByStatus = append(resp.InventoryByStatus, dto.StatusSlice{
			Name:  row.Status,
			Value: row.Count,
			Color: color,
		})
	}

	resp.RequestsByMonth, err = s.requestsByMonth(ctx)
	if err != nil {
		return resp, err
	}

	var ownerID *uint
	if !caller.IsAdmin() {
		ownerID = &caller.UserID
	}
	recent, err := s.repo.RecentRequests(ctx, ownerID, dashboardRecentLimit)
	if err != nil {
		return resp, err
	}
	resp.RecentRequests = make([]dto.RecentRequest, 0, len(recent))
	for _, r := range recent {
		rr := dto.RecentRequest{
			ID:          r.ID,
			Description: r.Description,
			Status:      r.Status,
			Priority:    r.Priority,
			CreatedAt:   r.CreatedAt,
		}
		if r.User != nil {
			rr.UserName = r.User.FullName()
		}
		resp.RecentRequests = append(resp.RecentRequests, rr)
	}

	return resp, nil
}

// requestsByMonth buckets request creation times into the trailing six
// calendar months, zero-filling empty months in chronological order.
func (s *dashboardService) requestsByMonth(ctx context.Context) ([]dto.MonthCount, error) {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(dashboardMonths - 1), 0)

	times, err := s.repo.RequestCreationTimes(ctx, first)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, dashboardMonths)
	for _, t := range times {
		counts[monthKey(t)]++
	}

	buckets := make([]dto.MonthCount, 0, dashboardMonths)
	for i := 0; i < dashboardMonths; i++ {
		m := first.AddDate(0, i, 0)
		key := monthKey(m)
		buckets = append(buckets, dto.MonthCount{Month: key, Requests: counts[key]})
	}
	return buckets, nil
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%02d-%d", int(t.Month()), t.Year())
}
