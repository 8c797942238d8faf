package service

import (
	"context"
	"errors"

	"github.com/OliverHuron/SICAII/internal/apierror"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/repository"

	"gorm.io/gorm"
)

// DepartmentService defines business operations for departments.
type DepartmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Get(ctx context.Context, id uint) (dto.DepartmentResponse, error)
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (dto.DepartmentResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateDepartmentRequest) error
	Delete(ctx context.Context, id uint) error
}

type departmentService struct {
	repo      repository.DepartmentRepository
	inventory repository.InventoryRepository
	requests  repository.RequestRepository
	users     repository.UserRepository
}

func NewDepartmentService(
	repo repository.DepartmentRepository,
	inventory repository.InventoryRepository,
	requests repository.RequestRepository,
	users repository.UserRepository,
) DepartmentService {
	return &departmentService{repo: repo, inventory: inventory, requests: requests, users: users}
}

func mapDepartment(d model.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	deps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DepartmentResponse, 0, len(deps))
	for _, d := range deps {
		result = append(result, mapDepartment(d))
	}
	return result, nil
}

func (s *departmentService) Get(ctx context.Context, id uint) (dto.DepartmentResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DepartmentResponse{}, apierror.NotFound("Departamento no encontrado")
		}
		return dto.DepartmentResponse{}, err
	}
	return mapDepartment(*d), nil
}

func (s *departmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (dto.DepartmentResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.DepartmentResponse{}, err
	}
	if err == nil && existing != nil {
		return dto.DepartmentResponse{}, apierror.Conflict("Ya existe un departamento con ese nombre")
	}

	d := &model.Department{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, d); err != nil {
		return dto.DepartmentResponse{}, err
	}
	return mapDepartment(*d), nil
}

func (s *departmentService) Update(ctx context.Context, id uint, req dto.UpdateDepartmentRequest) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Departamento no encontrado")
		}
		return err
	}

	if req.Name != nil && *req.Name != d.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && existing.ID != id {
			return apierror.Conflict("Ya existe un departamento con ese nombre")
		}
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = req.Description
	}

	return s.repo.Update(ctx, d)
}

func (s *departmentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Departamento no encontrado")
		}
		return err
	}

	// Dependent-reference guards: no cascade is ever performed.
	if n, err := s.inventory.CountByDepartment(ctx, id); err != nil {
		return err
	} else if n > 0 {
		return apierror.Conflict("No se puede eliminar el departamento porque tiene elementos de inventario relacionados")
	}
	if n, err := s.requests.CountByDepartment(ctx, id); err != nil {
		return err
	} else if n > 0 {
		return apierror.Conflict("No se puede eliminar el departamento porque tiene solicitudes relacionadas")
	}
	if n, err := s.users.CountByDepartment(ctx, id); err != nil {
		return err
	} else if n > 0 {
		return apierror.Conflict("No se puede eliminar el departamento porque tiene usuarios relacionados")
	}

	return s.repo.Delete(ctx, id)
}
