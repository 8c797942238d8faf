package handler

import (
	"net/http"

	"github.com/OliverHuron/SICAII/internal/apierror"
	"github.com/OliverHuron/SICAII/internal/dto"
	"github.com/OliverHuron/SICAII/internal/middleware"
	"github.com/OliverHuron/SICAII/internal/service"

	"github.com/gin-gonic/gin"
)

type RequestsHandler struct{ svc service.RequestService }

func NewRequestsHandler(svc service.RequestService) *RequestsHandler {
	return &RequestsHandler{svc: svc}
}

// List GET /api/requests
func (h *RequestsHandler) List(c *gin.Context) {
	var filter dto.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), middleware.GetPrincipal(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /api/requests/:id
func (h *RequestsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/requests
func (h *RequestsHandler) Create(c *gin.Context) {
	var req dto.CreateRequestRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Solicitud creada exitosamente"})
}

// Update PUT /api/requests/:id
func (h *RequestsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRequestRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Solicitud actualizada exitosamente"})
}

// Delete DELETE /api/requests/:id
func (h *RequestsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Solicitud eliminada exitosamente"})
}
