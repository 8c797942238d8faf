package service

import (
	"context"
	"errors"

	"github.com/OliverHuron/SICAII/internal/apierror"
	"github.com/OliverHuron/SICAII/internal/authz"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/model"
	"github.com/OliverHuron/SICAII/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService defines the admin-only user management operations.
type UserService interface {
	List(ctx context.Context, filter dto.UserFilter) (dto.UserListResponse, error)
	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) error
	Delete(ctx context.Context, caller authz.Principal, id uint) error
}

type userService struct {
	repo        repository.UserRepository
	departments repository.DepartmentRepository
	requests    repository.RequestRepository
	bcryptCost  int
}

func NewUserService(
	repo repository.UserRepository,
	departments repository.DepartmentRepository,
	requests repository.RequestRepository,
	bcryptCost int,
) UserService {
	return &userService{repo: repo, departments: departments, requests: requests, bcryptCost: bcryptCost}
}

func mapUser(u model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.Department != nil {
		resp.DepartmentName = &u.Department.Name
	}
	return resp
}

func (s *userService) List(ctx context.Context, filter dto.UserFilter) (dto.UserListResponse, error) {
	filter.Normalize()
	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.UserListResponse{}, err
	}
	resp := dto.UserListResponse{
		Users:      make([]dto.UserResponse, 0, len(users)),
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, mapUser(u))
	}
	return resp, nil
}

func (s *userService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apierror.NotFound("Usuario no encontrado")
		}
		return dto.UserResponse{}, err
	}
	return mapUser(*u), nil
}

// checkUniqueness rejects usernames/emails already held by another user.
// excludeID is 0 on create.
func (s *userService) checkUniqueness(ctx context.Context, username, email *string, excludeID uint) error {
	if username != nil {
		existing, err := s.repo.FindByUsername(ctx, *username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && existing.ID != excludeID {
			return apierror.Conflict("El username ya existe")
		}
	}
	if email != nil {
		existing, err := s.repo.FindByEmail(ctx, *email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && existing.ID != excludeID {
			return apierror.Conflict("El email ya existe")
		}
	}
	return nil
}

func (s *userService) checkDepartment(ctx context.Context, departmentID *uint) error {
	if departmentID == nil {
		return nil
	}
	if _, err := s.departments.FindByID(ctx, *departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Validation("Departamento no encontrado")
		}
		return err
	}
	return nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (uint, error) {
	if err := s.checkUniqueness(ctx, &req.Username, &req.Email, 0); err != nil {
		return 0, err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return 0, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	u := &model.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
		IsActive:     active,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *userService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Usuario no encontrado")
		}
		return err
	}

	if err := s.checkUniqueness(ctx, req.Username, req.Email, id); err != nil {
		return err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return err
	}

	// Sparse patch: only fields present in the body change.
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.DepartmentID != nil {
		u.DepartmentID = req.DepartmentID
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	return s.repo.Update(ctx, u)
}

func (s *userService) Delete(ctx context.Context, caller authz.Principal, id uint) error {
	if caller.Owns(id) {
		return apierror.Validation("No puedes eliminar tu propio usuario")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Usuario no encontrado")
		}
		return err
	}

	if n, err := s.requests.CountByUser(ctx, id); err != nil {
		return err
	} else if n > 0 {
		return apierror.Conflict("No se puede eliminar el usuario porque tiene solicitudes relacionadas")
	}

	return s.repo.Delete(ctx, id)
}
