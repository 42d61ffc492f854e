package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/config"
	"github.com/LuiSauter/data-mart/internal/service"
	"github.com/LuiSauter/data-mart/pkg/response"
)

// ExcelHandler serves the spreadsheet upload endpoint.
type ExcelHandler struct {
	cfg      *config.Config
	excelSvc service.ExcelService
}

// NewExcelHandler creates an ExcelHandler.
func NewExcelHandler(cfg *config.Config, excelSvc service.ExcelService) *ExcelHandler {
	return &ExcelHandler{cfg: cfg, excelSvc: excelSvc}
}

// Upload handles POST /api/v1/excel/upload
// Expects a multipart form with the workbook under the "file" field.
func (h *ExcelHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file field")
		return
	}

	maxSize := int64(h.cfg.Upload.MaxSizeMB) * 1024 * 1024
	if maxSize > 0 && fileHeader.Size > maxSize {
		response.BadRequest(c, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.excelSvc.ProcessUpload(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadBadFile),
			errors.Is(err, service.ErrUploadNoSheet),
			errors.Is(err, service.ErrUploadNoRows):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.OK(c, gin.H{
		"message":   "Datos guardados exitosamente",
		"processed": result.Processed,
	})
}
