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

// CategoryService defines business operations for inventory categories.
type CategoryService interface {
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id uint) (dto.CategoryResponse, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) error
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo      repository.CategoryRepository
	inventory repository.InventoryRepository
}

func NewCategoryService(repo repository.CategoryRepository, inventory repository.InventoryRepository) CategoryService {
	return &categoryService{repo: repo, inventory: inventory}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) Get(ctx context.Context, id uint) (dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, apierror.NotFound("Categoría no encontrada")
		}
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	_, err := s.repo.FindByName(ctx, req.Name)
	if err == nil {
		return dto.CategoryResponse{}, apierror.Conflict("Ya existe una categoría con ese nombre")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoryResponse{}, err
	}

	c := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Categoría no encontrada")
		}
		return err
	}

	if req.Name != nil && *req.Name != c.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && existing.ID != id {
			return apierror.Conflict("Ya existe una categoría con ese nombre")
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	return s.repo.Update(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Categoría no encontrada")
		}
		return err
	}

	if n, err := s.inventory.CountByCategory(ctx, id); err != nil {
		return err
	} else if n > 0 {
		return apierror.Conflict("No se puede eliminar la categoría porque tiene elementos de inventario relacionados")
	}

	return s.repo.Delete(ctx, id)
}
