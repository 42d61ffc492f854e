package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/service"
	"github.com/LuiSauter/data-mart/pkg/response"
)

// IndicatorHandler serves fact row CRUD.
type IndicatorHandler struct {
	indicatorSvc service.IndicatorService
}

// NewIndicatorHandler creates an IndicatorHandler.
func NewIndicatorHandler(indicatorSvc service.IndicatorService) *IndicatorHandler {
	return &IndicatorHandler{indicatorSvc: indicatorSvc}
}

// Create handles POST /api/v1/indicators
func (h *IndicatorHandler) Create(c *gin.Context) {
	var req dto.CreateIndicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	indicator, err := h.indicatorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, indicator)
}

// Get handles GET /api/v1/indicators/:id
func (h *IndicatorHandler) Get(c *gin.Context) {
	indicator, err := h.indicatorSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, indicator)
}

// List handles GET /api/v1/indicators
func (h *IndicatorHandler) List(c *gin.Context) {
	indicators, count, err := h.indicatorSvc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKCount(c, indicators, count)
}

// Update handles PATCH /api/v1/indicators/:id
func (h *IndicatorHandler) Update(c *gin.Context) {
	var req dto.CreateIndicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	indicator, err := h.indicatorSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, indicator)
}

// Delete handles DELETE /api/v1/indicators/:id
func (h *IndicatorHandler) Delete(c *gin.Context) {
	if err := h.indicatorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OKMessage(c, "Indicator deleted")
}

func (h *IndicatorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIndicatorNotFound),
		errors.Is(err, service.ErrIndicatorRelationMissing):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
