package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/service"
	"github.com/LuiSauter/data-mart/pkg/response"
)

// ModeHandler serves delivery-mode CRUD and the mode-grouped report.
type ModeHandler struct {
	modeSvc   service.ModeService
	reportSvc service.ReportService
}

// NewModeHandler creates a ModeHandler.
func NewModeHandler(modeSvc service.ModeService, reportSvc service.ReportService) *ModeHandler {
	return &ModeHandler{modeSvc: modeSvc, reportSvc: reportSvc}
}

// Create handles POST /api/v1/modes
func (h *ModeHandler) Create(c *gin.Context) {
	var req dto.CreateModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	mode, err := h.modeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, mode)
}

// Get handles GET /api/v1/modes/:id
func (h *ModeHandler) Get(c *gin.Context) {
	mode, err := h.modeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, mode)
}

// List handles GET /api/v1/modes/all
func (h *ModeHandler) List(c *gin.Context) {
	modes, count, err := h.modeSvc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKCount(c, modes, count)
}

// Update handles PATCH /api/v1/modes/:id
func (h *ModeHandler) Update(c *gin.Context) {
	var req dto.CreateModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	mode, err := h.modeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, mode)
}

// Delete handles DELETE /api/v1/modes/:id
func (h *ModeHandler) Delete(c *gin.Context) {
	if err := h.modeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OKMessage(c, "Mode deleted")
}

// Report handles GET /api/v1/modes
// Filters: localidadName, facultyName, semesterPeriod+semesterYear.
func (h *ModeHandler) Report(c *gin.Context) {
	var q dto.ModeReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	groups, err := h.reportSvc.ModeReport(c.Request.Context(), &q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, groups)
}

func (h *ModeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrModeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrModeNameExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUnknownAttribute):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
