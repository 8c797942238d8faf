package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/infra"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	cat := model.Category{Name: "Laptop"}
	require.NoError(t, db.Create(&cat).Error)
	dep := model.Department{Name: "Sistemas"}
	require.NoError(t, db.Create(&dep).Error)
	return cat.ID, dep.ID
}

func TestInventoryListFilters(t *testing.T) {
	db := openTestDB(t)
	catID, depID := seedCatalog(t, db)
	repo := repository.NewInventoryRepository(db)
	ctx := context.Background()

	seed := []model.InventoryItem{
		{Folio: "INV001", Brand: "Dell", Model: "Latitude 5420", CategoryID: catID, DepartmentID: depID, Status: model.StatusBueno},
		{Folio: "INV002", Brand: "Lenovo", Model: "ThinkPad T14", CategoryID: catID, DepartmentID: depID, Status: model.StatusDefectuoso},
		{Folio: "INV003", Brand: "Dell", Model: "XPS 13", CategoryID: catID, DepartmentID: depID, Status: model.StatusBueno},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	// Search is case-insensitive across folio, brand and model.
	items, total, err := repo.List(ctx, dto.InventoryFilter{Page: 1, Limit: 10, Search: "DELL"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, dto.InventoryFilter{Page: 1, Limit: 10, Search: "thinkpad"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "INV002", items[0].Folio)

	// Status filter is exact.
	_, total, err = repo.List(ctx, dto.InventoryFilter{Page: 1, Limit: 10, Status: model.StatusBueno})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// Associations come preloaded for the list view.
	items, _, err = repo.List(ctx, dto.InventoryFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "Laptop", items[0].Category.Name)
}

func TestInventoryListPagination(t *testing.T) {
	db := openTestDB(t)
	catID, depID := seedCatalog(t, db)
	repo := repository.NewInventoryRepository(db)
	ctx := context.Background()

	for i := 1; i <= 13; i++ {
		item := model.InventoryItem{
			Folio: fmt.Sprintf("INV%03d", i), Brand: "Dell", Model: "Latitude",
			CategoryID: catID, DepartmentID: depID, Status: model.StatusBueno,
		}
		require.NoError(t, repo.Create(ctx, &item))
	}

	// The total always reflects the whole predicate, not the page.
	page1, total, err := repo.List(ctx, dto.InventoryFilter{Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 13, total)
	assert.Len(t, page1, 5)

	page3, _, err := repo.List(ctx, dto.InventoryFilter{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page3, 3)

	// Pages never overlap.
	seen := make(map[uint]bool)
	for _, p := range [][]model.InventoryItem{page1, page3} {
		for _, item := range p {
			assert.False(t, seen[item.ID])
			seen[item.ID] = true
		}
	}
}

func TestInventoryListOrderIsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	catID, depID := seedCatalog(t, db)
	repo := repository.NewInventoryRepository(db)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		item := model.InventoryItem{
			Folio: fmt.Sprintf("INV%03d", i), Brand: "Dell", Model: "Latitude",
			CategoryID: catID, DepartmentID: depID, Status: model.StatusBueno,
		}
		require.NoError(t, repo.Create(ctx, &item))
	}

	items, _, err := repo.List(ctx, dto.InventoryFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 4)
	// Rows created in the same instant fall back to id DESC, so the order
	// stays deterministic.
	for i := 1; i < len(items); i++ {
		assert.Greater(t, items[i-1].ID, items[i].ID)
	}
}

func TestRequestListOwnerScoping(t *testing.T) {
	db := openTestDB(t)
	_, depID := seedCatalog(t, db)
	repo := repository.NewRequestRepository(db)
	ctx := context.Background()

	for _, owner := range []uint{5, 5, 6} {
		require.NoError(t, repo.Create(ctx, &model.Request{
			UserID: owner, Description: "Falla", Priority: model.PriorityBaja,
			DepartmentID: depID, Status: model.RequestPending,
		}))
	}

	owner := uint(5)
	mine, total, err := repo.List(ctx, &owner, dto.RequestFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, r := range mine {
		assert.Equal(t, owner, r.UserID)
	}

	_, total, err = repo.List(ctx, nil, dto.RequestFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestRequestListSearchJoinsInventory(t *testing.T) {
	db := openTestDB(t)
	catID, depID := seedCatalog(t, db)
	ctx := context.Background()

	item := model.InventoryItem{Folio: "INV001", Brand: "Dell", Model: "Latitude", CategoryID: catID, DepartmentID: depID, Status: model.StatusBueno}
	require.NoError(t, db.Create(&item).Error)

	repo := repository.NewRequestRepository(db)
	require.NoError(t, repo.Create(ctx, &model.Request{
		UserID: 1, InventoryID: &item.ID, Description: "No enciende",
		Priority: model.PriorityAlta, DepartmentID: depID, Status: model.RequestPending,
	}))
	require.NoError(t, repo.Create(ctx, &model.Request{
		UserID: 1, Description: "Solicitud de papelería",
		Priority: model.PriorityBaja, DepartmentID: depID, Status: model.RequestPending,
	}))

	// Matches through the joined item's folio.
	rows, total, err := repo.List(ctx, nil, dto.RequestFilter{Page: 1, Limit: 10, Search: "inv001"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "No enciende", rows[0].Description)

	// And through the request's own description.
	_, total, err = repo.List(ctx, nil, dto.RequestFilter{Page: 1, Limit: 10, Search: "papelería"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestUserListFilters(t *testing.T) {
	db := openTestDB(t)
	_, depID := seedCatalog(t, db)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	users := []model.User{
		{Username: "admin", FirstName: "Ana", LastName: "Ruiz", Email: "ana@x.mx", PasswordHash: "h", Role: model.RoleAdmin, IsActive: true},
		{Username: "jlopez", FirstName: "Juan", LastName: "López", Email: "juan@x.mx", PasswordHash: "h", Role: model.RoleUser, DepartmentID: &depID, IsActive: true},
		{Username: "mbaja", FirstName: "Mario", LastName: "Baja", Email: "mario@x.mx", PasswordHash: "h", Role: model.RoleUser, IsActive: false},
	}
	for i := range users {
		require.NoError(t, repo.Create(ctx, &users[i]))
	}

	_, total, err := repo.List(ctx, dto.UserFilter{Page: 1, Limit: 10, Role: model.RoleUser})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	rows, total, err := repo.List(ctx, dto.UserFilter{Page: 1, Limit: 10, Status: "inactive"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "mbaja", rows[0].Username)

	rows, total, err = repo.List(ctx, dto.UserFilter{Page: 1, Limit: 10, Search: "lópez"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "jlopez", rows[0].Username)

	// FindByLogin resolves both username and email, active users only.
	u, err := repo.FindByLogin(ctx, "juan@x.mx")
	require.NoError(t, err)
	assert.Equal(t, "jlopez", u.Username)

	_, err = repo.FindByLogin(ctx, "mbaja")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
