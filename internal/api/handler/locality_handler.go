package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/service"
	"github.com/LuiSauter/data-mart/pkg/response"
)

// LocalityHandler serves locality CRUD and the locality-grouped report.
type LocalityHandler struct {
	localitySvc service.LocalityService
	reportSvc   service.ReportService
}

// NewLocalityHandler creates a LocalityHandler.
func NewLocalityHandler(localitySvc service.LocalityService, reportSvc service.ReportService) *LocalityHandler {
	return &LocalityHandler{localitySvc: localitySvc, reportSvc: reportSvc}
}

// Create handles POST /api/v1/localities
func (h *LocalityHandler) Create(c *gin.Context) {
	var req dto.CreateLocalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	locality, err := h.localitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, locality)
}

// Get handles GET /api/v1/localities/:id
func (h *LocalityHandler) Get(c *gin.Context) {
	locality, err := h.localitySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, locality)
}

// List handles GET /api/v1/localities/all
func (h *LocalityHandler) List(c *gin.Context) {
	localities, count, err := h.localitySvc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKCount(c, localities, count)
}

// Update handles PATCH /api/v1/localities/:id
func (h *LocalityHandler) Update(c *gin.Context) {
	var req dto.CreateLocalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	locality, err := h.localitySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, locality)
}

// Delete handles DELETE /api/v1/localities/:id
func (h *LocalityHandler) Delete(c *gin.Context) {
	if err := h.localitySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OKMessage(c, "Locality deleted")
}

// Report handles GET /api/v1/localities
// Filters: modeName, facultyName, semesterPeriod+semesterYear.
func (h *LocalityHandler) Report(c *gin.Context) {
	var q dto.LocalityReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	groups, err := h.reportSvc.LocalityReport(c.Request.Context(), &q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, groups)
}

func (h *LocalityHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLocalityNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrLocalityNameExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUnknownAttribute):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
