package handler

import (
	"github.com/LuiSauter/data-mart/config"
	"github.com/LuiSauter/data-mart/internal/service"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Faculty   *FacultyHandler
	Career    *CareerHandler
	Locality  *LocalityHandler
	Mode      *ModeHandler
	Semester  *SemesterHandler
	Indicator *IndicatorHandler
	Excel     *ExcelHandler
}

// NewHandler wires the handler graph.
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Faculty:   NewFacultyHandler(svc.Faculty, svc.Report),
		Career:    NewCareerHandler(svc.Career, svc.Report),
		Locality:  NewLocalityHandler(svc.Locality, svc.Report),
		Mode:      NewModeHandler(svc.Mode, svc.Report),
		Semester:  NewSemesterHandler(svc.Semester, svc.Report),
		Indicator: NewIndicatorHandler(svc.Indicator),
		Excel:     NewExcelHandler(cfg, svc.Excel),
	}
}
