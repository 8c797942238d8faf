package dto

import "time"

// StatusSlice is one slice of the inventory-by-status chart.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// MonthCount is one bucket of the trailing-six-months request series.
type MonthCount struct {
	Month    string `json:"month"` // MM-YYYY
	Requests int64  `json:"requests"`
}

// RecentRequest is one row of the dashboard's latest-requests feed.
type RecentRequest struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
}

// DashboardResponse aggregates the live counters shown on the landing page.
// TotalUsers is only populated for admin callers.
type DashboardResponse struct {
	TotalInventory    int64           `json:"totalInventory"`
	TotalRequests     int64           `json:"totalRequests"`
	PendingRequests   int64           `json:"pendingRequests"`
	TotalUsers        int64           `json:"totalUsers"`
	InventoryByStatus []StatusSlice   `json:"inventoryByStatus"`
	RequestsByMonth   []MonthCount    `json:"requestsByMonth"`
	RecentRequests    []RecentRequest `json:"recentRequests"`
}
