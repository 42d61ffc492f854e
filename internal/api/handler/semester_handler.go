package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/service"
	"github.com/LuiSauter/data-mart/pkg/response"
)

// SemesterHandler serves semester CRUD and the semester-grouped report.
type SemesterHandler struct {
	semesterSvc service.SemesterService
	reportSvc   service.ReportService
}

// NewSemesterHandler creates a SemesterHandler.
func NewSemesterHandler(semesterSvc service.SemesterService, reportSvc service.ReportService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc, reportSvc: reportSvc}
}

// Create handles POST /api/v1/semesters
func (h *SemesterHandler) Create(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, semester)
}

// Get handles GET /api/v1/semesters/:id
func (h *SemesterHandler) Get(c *gin.Context) {
	semester, err := h.semesterSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, semester)
}

// List handles GET /api/v1/semesters/all
func (h *SemesterHandler) List(c *gin.Context) {
	semesters, count, err := h.semesterSvc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKCount(c, semesters, count)
}

// Update handles PATCH /api/v1/semesters/:id
func (h *SemesterHandler) Update(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	semester, err := h.semesterSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, semester)
}

// Delete handles DELETE /api/v1/semesters/:id
func (h *SemesterHandler) Delete(c *gin.Context) {
	if err := h.semesterSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OKMessage(c, "Semester deleted")
}

// Report handles GET /api/v1/semesters
// Filters: localidadName, facultyName, careerName, modeName.
func (h *SemesterHandler) Report(c *gin.Context) {
	var q dto.SemesterReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	groups, err := h.reportSvc.SemesterReport(c.Request.Context(), &q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, groups)
}

func (h *SemesterHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSemesterExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUnknownAttribute):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
