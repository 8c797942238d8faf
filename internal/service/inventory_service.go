package service

import (
	"context"
	"errors"
	"time"

	"github.com/OliverHuron/SICAII/internal/apierror"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/repository"

	"gorm.io/gorm"
)

// InventoryService defines business operations for inventory items.
type InventoryService interface {
	List(ctx context.Context, filter dto.InventoryFilter) (dto.InventoryListResponse, error)
	Get(ctx context.Context, id uint) (dto.InventoryResponse, error)
	Create(ctx context.Context, req dto.CreateInventoryRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateInventoryRequest) error
	Delete(ctx context.Context, id uint) error
}

type inventoryService struct {
	repo        repository.InventoryRepository
	categories  repository.CategoryRepository
	departments repository.DepartmentRepository
	requests    repository.RequestRepository
}

func NewInventoryService(
	repo repository.InventoryRepository,
	categories repository.CategoryRepository,
	departments repository.DepartmentRepository,
	requests repository.RequestRepository,
) InventoryService {
	return &inventoryService{repo: repo, categories: categories, departments: departments, requests: requests}
}

func mapInventory(item model.InventoryItem) dto.InventoryResponse {
	resp := dto.InventoryResponse{
		ID:             item.ID,
		Folio:          item.Folio,
		Brand:          item.Brand,
		Model:          item.Model,
		CategoryID:     item.CategoryID,
		DepartmentID:   item.DepartmentID,
		Status:         item.Status,
		SerialNumber:   item.SerialNumber,
		PurchaseDate:   item.PurchaseDate,
		WarrantyExpiry: item.WarrantyExpiry,
		Notes:          item.Notes,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
	if item.Category != nil {
		resp.CategoryName = item.Category.Name
	}
	if item.Department != nil {
		resp.DepartmentName = item.Department.Name
	}
	return resp
}

// parseDate converts an optional "2006-01-02" string; format errors were
// already rejected by the DTO's datetime tag.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func (s *inventoryService) List(ctx context.Context, filter dto.InventoryFilter) (dto.InventoryListResponse, error) {
	filter.Normalize()
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.InventoryListResponse{}, err
	}
	p := dto.NewPagination(filter.Page, filter.Limit, total)
	resp := dto.InventoryListResponse{
		Items:      make([]dto.InventoryResponse, 0, len(items)),
		Page:       p.Page,
		TotalPages: p.TotalPages,
		Total:      total,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, mapInventory(item))
	}
	return resp, nil
}

func (s *inventoryService) Get(ctx context.Context, id uint) (dto.InventoryResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.InventoryResponse{}, apierror.NotFound("Elemento no encontrado")
		}
		return dto.InventoryResponse{}, err
	}
	return mapInventory(*item), nil
}

func (s *inventoryService) checkFolio(ctx context.Context, folio string, excludeID uint) error {
	existing, err := s.repo.FindByFolio(ctx, folio)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil && existing.ID != excludeID {
		return apierror.Conflict("El folio ya existe")
	}
	return nil
}

func (s *inventoryService) checkReferences(ctx context.Context, categoryID, departmentID *uint) error {
	if categoryID != nil {
		if _, err := s.categories.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Validation("Categoría no encontrada")
			}
			return err
		}
	}
	if departmentID != nil {
		if _, err := s.departments.FindByID(ctx, *departmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Validation("Departamento no encontrado")
			}
			return err
		}
	}
	return nil
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryRequest) (uint, error) {
	if err := s.checkFolio(ctx, req.Folio, 0); err != nil {
		return 0, err
	}
	if err := s.checkReferences(ctx, &req.CategoryID, &req.DepartmentID); err != nil {
		return 0, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusBueno
	}
	if !model.ValidInventoryStatus(status) {
		return 0, apierror.Validation("Estado de inventario inválido")
	}

	item := &model.InventoryItem{
		Folio:          req.Folio,
		Brand:          req.Brand,
		Model:          req.Model,
		CategoryID:     req.CategoryID,
		DepartmentID:   req.DepartmentID,
		Status:         status,
		SerialNumber:   req.SerialNumber,
		PurchaseDate:   parseDate(req.PurchaseDate),
		WarrantyExpiry: parseDate(req.WarrantyExpiry),
		Notes:          req.Notes,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (s *inventoryService) Update(ctx context.Context, id uint, req dto.UpdateInventoryRequest) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Elemento no encontrado")
		}
		return err
	}

	if req.Folio != nil && *req.Folio != item.Folio {
		if err := s.checkFolio(ctx, *req.Folio, id); err != nil {
			return err
		}
		item.Folio = *req.Folio
	}
	if err := s.checkReferences(ctx, req.CategoryID, req.DepartmentID); err != nil {
		return err
	}
	if req.Status != nil {
		if !model.ValidInventoryStatus(*req.Status) {
			return apierror.Validation("Estado de inventario inválido")
		}
		item.Status = *req.Status
	}

	if req.Brand != nil {
		item.Brand = *req.Brand
	}
	if req.Model != nil {
		item.Model = *req.Model
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.DepartmentID != nil {
		item.DepartmentID = *req.DepartmentID
	}
	if req.SerialNumber != nil {
		item.SerialNumber = req.SerialNumber
	}
	if req.PurchaseDate != nil {
		item.PurchaseDate = parseDate(req.PurchaseDate)
	}
	if req.WarrantyExpiry != nil {
		item.WarrantyExpiry = parseDate(req.WarrantyExpiry)
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}

	return s.repo.Update(ctx, item)
}

func (s *inventoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Elemento no encontrado")
		}
		return err
	}

	if n, err := s.requests.CountByInventory(ctx, id); err != nil {
		return err
	} else if n > 0 {
		return apierror.Conflict("No se puede eliminar el elemento porque tiene solicitudes relacionadas")
	}

	return s.repo.Delete(ctx, id)
}
