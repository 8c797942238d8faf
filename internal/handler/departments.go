package handler

import (
	"net/http"

	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/service"

	"github.com/gin-gonic/gin"
)

type DepartmentsHandler struct{ svc service.DepartmentService }

func NewDepartmentsHandler(svc service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{svc: svc}
}

// List GET /api/departments
func (h *DepartmentsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /api/departments/:id
func (h *DepartmentsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/departments
func (h *DepartmentsHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         resp.ID,
		"message":    "Departamento creado exitosamente",
		"department": resp,
	})
}

// Update PUT /api/departments/:id
func (h *DepartmentsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateDepartmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Departamento actualizado exitosamente"})
}

// Delete DELETE /api/departments/:id
func (h *DepartmentsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Departamento eliminado exitosamente"})
}
