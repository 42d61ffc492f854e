package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/model"
	"github.com/LuiSauter/data-mart/internal/service"
)

type mockFacultyService struct {
	createFn  func(ctx context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error)
	getByIDFn func(ctx context.Context, id string) (*model.Faculty, error)
	listFn    func(ctx context.Context) ([]model.Faculty, int64, error)
}

func (m *mockFacultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error) {
	return m.createFn(ctx, req)
}

func (m *mockFacultyService) GetByID(ctx context.Context, id string) (*model.Faculty, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockFacultyService) GetByName(context.Context, string) (*model.Faculty, error) {
	return nil, nil
}

func (m *mockFacultyService) List(ctx context.Context) ([]model.Faculty, int64, error) {
	return m.listFn(ctx)
}

func (m *mockFacultyService) Update(context.Context, string, *dto.CreateFacultyRequest) (*model.Faculty, error) {
	return nil, nil
}

func (m *mockFacultyService) Delete(context.Context, string) error { return nil }

type mockReportService struct {
	facultyFn func(ctx context.Context, q *dto.FacultyReportQuery) ([]dto.ReportGroup, error)
}

func (m *mockReportService) FacultyReport(ctx context.Context, q *dto.FacultyReportQuery) ([]dto.ReportGroup, error) {
	return m.facultyFn(ctx, q)
}

func (m *mockReportService) CareerReport(context.Context, *dto.CareerReportQuery) ([]dto.ReportGroup, error) {
	return nil, nil
}

func (m *mockReportService) LocalityReport(context.Context, *dto.LocalityReportQuery) ([]dto.ReportGroup, error) {
	return nil, nil
}

func (m *mockReportService) ModeReport(context.Context, *dto.ModeReportQuery) ([]dto.ReportGroup, error) {
	return nil, nil
}

func (m *mockReportService) SemesterReport(context.Context, *dto.SemesterReportQuery) ([]dto.ReportGroup, error) {
	return nil, nil
}

func newFacultyRouter(facultySvc service.FacultyService, reportSvc service.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFacultyHandler(facultySvc, reportSvc)
	r := gin.New()
	r.GET("/api/v1/faculties", h.Report)
	r.GET("/api/v1/faculties/all", h.List)
	r.POST("/api/v1/faculties", h.Create)
	r.GET("/api/v1/faculties/:id", h.Get)
	return r
}

func TestFacultyCreateEndpoint(t *testing.T) {
	svc := &mockFacultyService{
		createFn: func(_ context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error) {
			return &model.Faculty{BaseModel: model.BaseModel{ID: "fac-1"}, Name: req.Name}, nil
		},
	}
	r := newFacultyRouter(svc, &mockReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/faculties", strings.NewReader(`{"name":"Ingeniería"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	var body struct {
		StatusCode int `json:"statusCode"`
		Data       struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.ID != "fac-1" || body.Data.Name != "Ingeniería" {
		t.Errorf("data = %+v", body.Data)
	}
}

func TestFacultyCreateEndpointRejectsEmptyBody(t *testing.T) {
	r := newFacultyRouter(&mockFacultyService{}, &mockReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/faculties", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFacultyCreateEndpointConflict(t *testing.T) {
	svc := &mockFacultyService{
		createFn: func(context.Context, *dto.CreateFacultyRequest) (*model.Faculty, error) {
			return nil, service.ErrFacultyNameExists
		},
	}
	r := newFacultyRouter(svc, &mockReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/faculties", strings.NewReader(`{"name":"Ingeniería"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestFacultyGetEndpointNotFound(t *testing.T) {
	svc := &mockFacultyService{
		getByIDFn: func(context.Context, string) (*model.Faculty, error) {
			return nil, service.ErrFacultyNotFound
		},
	}
	r := newFacultyRouter(svc, &mockReportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/faculties/missing", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestFacultyReportEndpointBindsQuery(t *testing.T) {
	var gotQuery *dto.FacultyReportQuery
	report := &mockReportService{
		facultyFn: func(_ context.Context, q *dto.FacultyReportQuery) ([]dto.ReportGroup, error) {
			gotQuery = q
			return []dto.ReportGroup{
				{Label: "Ingeniería", Values: []dto.ReportValue{{Label: "Estudiantes inscritos", Value: 150}}},
			}, nil
		},
	}
	r := newFacultyRouter(&mockFacultyService{}, report)

	w := httptest.NewRecorder()
	url := "/api/v1/faculties?localidadName=Santa+Cruz&modeName=Presencial" +
		"&semesterPeriod=2&semesterYear=2023" +
		"&indicatorAttributes=t_inscritos&indicatorAttributes=aprobados_percent"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if gotQuery == nil {
		t.Fatal("report service was not invoked")
	}
	if gotQuery.LocalityName != "Santa Cruz" || gotQuery.ModeName != "Presencial" {
		t.Errorf("query = %+v", gotQuery)
	}
	if gotQuery.SemesterPeriod != "2" || gotQuery.SemesterYear != "2023" {
		t.Errorf("semester pair = (%q, %q)", gotQuery.SemesterPeriod, gotQuery.SemesterYear)
	}
	if len(gotQuery.Attributes) != 2 || gotQuery.Attributes[1] != "aprobados_percent" {
		t.Errorf("attributes = %v", gotQuery.Attributes)
	}
}

func TestFacultyReportEndpointUnknownAttribute(t *testing.T) {
	report := &mockReportService{
		facultyFn: func(_ context.Context, q *dto.FacultyReportQuery) ([]dto.ReportGroup, error) {
			return nil, fmt.Errorf("%w: %s", service.ErrUnknownAttribute, q.Attributes[0])
		},
	}
	r := newFacultyRouter(&mockFacultyService{}, report)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/faculties?indicatorAttributes=nope", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
