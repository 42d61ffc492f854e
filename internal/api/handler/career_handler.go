package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/service"
	"github.com/LuiSauter/data-mart/pkg/response"
)

// CareerHandler serves career CRUD and the career-grouped report.
type CareerHandler struct {
	careerSvc service.CareerService
	reportSvc service.ReportService
}

// NewCareerHandler creates a CareerHandler.
func NewCareerHandler(careerSvc service.CareerService, reportSvc service.ReportService) *CareerHandler {
	return &CareerHandler{careerSvc: careerSvc, reportSvc: reportSvc}
}

// Create handles POST /api/v1/careers
func (h *CareerHandler) Create(c *gin.Context) {
	var req dto.CreateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	career, err := h.careerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, career)
}

// Get handles GET /api/v1/careers/:id
func (h *CareerHandler) Get(c *gin.Context) {
	career, err := h.careerSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, career)
}

// List handles GET /api/v1/careers/all
func (h *CareerHandler) List(c *gin.Context) {
	careers, count, err := h.careerSvc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OKCount(c, careers, count)
}

// Update handles PATCH /api/v1/careers/:id
func (h *CareerHandler) Update(c *gin.Context) {
	var req dto.CreateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	career, err := h.careerSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, career)
}

// Delete handles DELETE /api/v1/careers/:id
func (h *CareerHandler) Delete(c *gin.Context) {
	if err := h.careerSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.OKMessage(c, "Career deleted")
}

// Report handles GET /api/v1/careers
// Filters: localidadName, facultyName, modeName, semesterPeriod+semesterYear.
func (h *CareerHandler) Report(c *gin.Context) {
	var q dto.CareerReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	groups, err := h.reportSvc.CareerReport(c.Request.Context(), &q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, groups)
}

func (h *CareerHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCareerNotFound), errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUnknownAttribute):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
