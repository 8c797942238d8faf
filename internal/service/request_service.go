package service

import (
	"context"
	"errors"

	"github.com/OliverHuron/SICAII/internal/apierror"
	"github.com/OliverHuron/SICAII/internal/authz"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/repository"

	"gorm.io/gorm"
)

// RequestService defines business operations for service/repair requests.
// Every operation receives the caller's permission profile: non-admins are
// restricted to their own rows and to the pending state for mutations.
type RequestService interface {
	List(ctx context.Context, caller authz.Principal, filter dto.RequestFilter) (dto.RequestListResponse, error)
	Get(ctx context.Context, caller authz.Principal, id uint) (dto.RequestResponse, error)
	Create(ctx context.Context, caller authz.Principal, req dto.CreateRequestRequest) (uint, error)
	Update(ctx context.Context, caller authz.Principal, id uint, req dto.UpdateRequestRequest) error
	Delete(ctx context.Context, caller authz.Principal, id uint) error
}

type requestService struct {
	repo        repository.RequestRepository
	inventory   repository.InventoryRepository
	departments repository.DepartmentRepository
}

func NewRequestService(
	repo repository.RequestRepository,
	inventory repository.InventoryRepository,
	departments repository.DepartmentRepository,
) RequestService {
	return &requestService{repo: repo, inventory: inventory, departments: departments}
}

func mapRequest(r model.Request) dto.RequestResponse {
	resp := dto.RequestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		InventoryID:     r.InventoryID,
		Description:     r.Description,
		Priority:        r.Priority,
		DepartmentID:    r.DepartmentID,
		Status:          r.Status,
		AdminNotes:      r.AdminNotes,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.User != nil {
		resp.UserName = r.User.Username
		resp.UserFirstName = r.User.FirstName
		resp.UserLastName = r.User.LastName
	}
	if r.Inventory != nil {
		resp.InventoryFolio = &r.Inventory.Folio
		resp.InventoryBrand = &r.Inventory.Brand
		resp.InventoryModel = &r.Inventory.Model
	}
	if r.Department != nil {
		resp.DepartmentName = r.Department.Name
	}
	return resp
}

func (s *requestService) List(ctx context.Context, caller authz.Principal, filter dto.RequestFilter) (dto.RequestListResponse, error) {
	filter.Normalize()

	var ownerID *uint
	if !caller.IsAdmin() {
		ownerID = &caller.UserID
	}
	reqs, total, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return dto.RequestListResponse{}, err
	}
	resp := dto.RequestListResponse{
		Requests:   make([]dto.RequestResponse, 0, len(reqs)),
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}
	for _, r := range reqs {
		resp.Requests = append(resp.Requests, mapRequest(r))
	}
	return resp, nil
}

func (s *requestService) Get(ctx context.Context, caller authz.Principal, id uint) (dto.RequestResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RequestResponse{}, apierror.NotFound("Solicitud no encontrada")
		}
		return dto.RequestResponse{}, err
	}
	// Non-admins cannot see other users' requests; the row is reported as
	// absent rather than forbidden.
	if !caller.IsAdmin() && !caller.Owns(r.UserID) {
		return dto.RequestResponse{}, apierror.NotFound("Solicitud no encontrada")
	}
	return mapRequest(*r), nil
}

func (s *requestService) checkReferences(ctx context.Context, inventoryID *uint, departmentID *uint) error {
	if inventoryID != nil {
		if _, err := s.inventory.FindByID(ctx, *inventoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.Validation("Elemento de inventario no encontrado")
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

func (s *requestService) Create(ctx context.Context, caller authz.Principal, req dto.CreateRequestRequest) (uint, error) {
	if !model.ValidRequestPriority(req.Priority) {
		return 0, apierror.Validation("Prioridad inválida")
	}
	if err := s.checkReferences(ctx, req.InventoryID, &req.DepartmentID); err != nil {
		return 0, err
	}

	// Only admins may attach administrative notes at creation time.
	var adminNotes *string
	if caller.IsAdmin() {
		adminNotes = req.AdminNotes
	}

	r := &model.Request{
		UserID:       caller.UserID,
		InventoryID:  req.InventoryID,
		Description:  req.Description,
		Priority:     req.Priority,
		DepartmentID: req.DepartmentID,
		Status:       model.RequestPending,
		AdminNotes:   adminNotes,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return 0, err
	}
	return r.ID, nil
}

func (s *requestService) Update(ctx context.Context, caller authz.Principal, id uint, req dto.UpdateRequestRequest) error {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Solicitud no encontrada")
		}
		return err
	}

	if !caller.IsAdmin() && !caller.Owns(r.UserID) {
		return apierror.Unauthorized("No autorizado")
	}
	if !caller.IsAdmin() && r.Status != model.RequestPending {
		return apierror.Validation("Solo se pueden editar solicitudes pendientes")
	}

	if req.Priority != nil && !model.ValidRequestPriority(*req.Priority) {
		return apierror.Validation("Prioridad inválida")
	}
	if err := s.checkReferences(ctx, req.InventoryID, req.DepartmentID); err != nil {
		return err
	}

	// Fields any owner may patch.
	if req.InventoryID != nil {
		r.InventoryID = req.InventoryID
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.Priority != nil {
		r.Priority = *req.Priority
	}
	if req.DepartmentID != nil {
		r.DepartmentID = *req.DepartmentID
	}

	// Admin-only fields; silently ignored for regular users, matching the
	// original contract.
	if caller.IsAdmin() {
		if req.Status != nil {
			if !model.ValidRequestStatus(*req.Status) {
				return apierror.Validation("Estado de solicitud inválido")
			}
			r.Status = *req.Status
		}
		if req.AdminNotes != nil {
			r.AdminNotes = req.AdminNotes
		}
		if req.RejectionReason != nil {
			r.RejectionReason = req.RejectionReason
		}
	}

	return s.repo.Update(ctx, r)
}

func (s *requestService) Delete(ctx context.Context, caller authz.Principal, id uint) error {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Solicitud no encontrada")
		}
		return err
	}

	if !caller.IsAdmin() && !caller.Owns(r.UserID) {
		return apierror.Unauthorized("No autorizado")
	}
	if !caller.IsAdmin() && r.Status != model.RequestPending {
		return apierror.Validation("Solo se pueden eliminar solicitudes pendientes")
	}

	return s.repo.Delete(ctx, id)
}
