package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/service"
	"github.com/LuiSauter/data-mart/pkg/response"
)

// FacultyHandler serves faculty CRUD and the faculty-grouped report.
type FacultyHandler struct {
	facultySvc service.FacultyService
	reportSvc  service.ReportService
}

// NewFacultyHandler creates a FacultyHandler.
func NewFacultyHandler(facultySvc service.FacultyService, reportSvc service.ReportService) *FacultyHandler {
	return &FacultyHandler{facultySvc: facultySvc, reportSvc: reportSvc}
}

// Create handles POST /api/v1/faculties
func (h *FacultyHandler) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	faculty, err := h.facultySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, faculty)
}

// Get handles GET /api/v1/faculties/:id
func (h *FacultyHandler) Get(c *gin.Context) {
	faculty, err := h.facultySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, faculty)
}

// List handles GET /api/v1/faculties/all
func (h *FacultyHandler) List(c *gin.Context) {
	faculties, count, err := h.facultySvc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKCount(c, faculties, count)
}

// Update handles PATCH /api/v1/faculties/:id
func (h *FacultyHandler) Update(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	faculty, err := h.facultySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, faculty)
}

// Delete handles DELETE /api/v1/faculties/:id
func (h *FacultyHandler) Delete(c *gin.Context) {
	if err := h.facultySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OKMessage(c, "Faculty deleted")
}

// Report handles GET /api/v1/faculties
// Filters: localidadName, modeName, semesterPeriod+semesterYear.
func (h *FacultyHandler) Report(c *gin.Context) {
	var q dto.FacultyReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	groups, err := h.reportSvc.FacultyReport(c.Request.Context(), &q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, groups)
}

func (h *FacultyHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrFacultyNameExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUnknownAttribute):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
