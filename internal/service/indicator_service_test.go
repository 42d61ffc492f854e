package service

import (
	"context"
	"errors"
	"testing"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/model"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validIndicatorRequest() *dto.CreateIndicatorRequest {
	return &dto.CreateIndicatorRequest{
		CareerID:   "car-1",
		LocalityID: "loc-1",
		ModeID:     "mod-1",
		SemesterID: "sem-1",

		TInscritos:            intPtr(100),
		TNuevos:               intPtr(40),
		TAnteriores:           intPtr(60),
		MatriculasInscritas:   intPtr(320),
		SinNota:               intPtr(5),
		SinNotaPercent:        floatPtr(5.0),
		Aprobados:             intPtr(70),
		AprobadosPercent:      floatPtr(70.0),
		Reprobados:            intPtr(25),
		ReprobadosPercent:     floatPtr(25.0),
		ReprobadosCon0:        intPtr(10),
		ReprobadosCon0Percent: floatPtr(10.0),
		Moras:                 intPtr(3),
		MorasPercent:          floatPtr(3.0),
		Retirados:             intPtr(2),
		PPA:                   floatPtr(61.5),
		Egresados:             intPtr(8),
		Titulados:             intPtr(6),
	}
}

func TestIndicatorCreateResolvesAllRelations(t *testing.T) {
	repo := newTestRepo()
	repo.Career = &mockCareerRepo{getByIDFn: func(_ context.Context, id string) (*model.Career, error) {
		return &model.Career{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	repo.Locality = &mockLocalityRepo{getByIDFn: func(_ context.Context, id string) (*model.Locality, error) {
		return &model.Locality{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	repo.Mode = &mockModeRepo{getByIDFn: func(_ context.Context, id string) (*model.Mode, error) {
		return &model.Mode{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	repo.Semester = &mockSemesterRepo{getByIDFn: func(_ context.Context, id string) (*model.Semester, error) {
		return &model.Semester{BaseModel: model.BaseModel{ID: id}}, nil
	}}

	var created *model.Indicator
	repo.Indicator = &mockIndicatorRepo{
		createFn: func(_ context.Context, ind *model.Indicator) error {
			created = ind
			return nil
		},
	}
	svc := NewIndicatorService(repo, nil, testLogger())

	got, err := svc.Create(context.Background(), validIndicatorRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created == nil {
		t.Fatal("indicator was not persisted")
	}
	if got.CareerID != "car-1" || got.SemesterID != "sem-1" {
		t.Errorf("foreign keys = %+v", got)
	}
	if got.TInscritos != 100 || got.AprobadosPercent != 70.0 {
		t.Errorf("measures = %+v", got)
	}
	if got.PPA == nil || *got.PPA != 61.5 {
		t.Errorf("ppa = %v", got.PPA)
	}
	if got.PPS != nil {
		t.Errorf("omitted pps should stay nil, got %v", got.PPS)
	}
}

func TestIndicatorCreateMissingRelation(t *testing.T) {
	repo := newTestRepo()
	// career resolves; the other three lookups default to not-found
	repo.Career = &mockCareerRepo{getByIDFn: func(_ context.Context, id string) (*model.Career, error) {
		return &model.Career{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	repo.Indicator = &mockIndicatorRepo{
		createFn: func(context.Context, *model.Indicator) error {
			t.Fatal("create must not run when a relation is missing")
			return nil
		},
	}
	svc := NewIndicatorService(repo, nil, testLogger())

	_, err := svc.Create(context.Background(), validIndicatorRequest())
	if !errors.Is(err, ErrIndicatorRelationMissing) {
		t.Fatalf("error = %v, want ErrIndicatorRelationMissing", err)
	}
}

func TestIndicatorGetByIDNotFound(t *testing.T) {
	svc := NewIndicatorService(newTestRepo(), nil, testLogger())

	_, err := svc.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrIndicatorNotFound) {
		t.Fatalf("error = %v, want ErrIndicatorNotFound", err)
	}
}

func TestIndicatorUpdateKeepsIdentity(t *testing.T) {
	repo := newTestRepo()
	repo.Indicator = &mockIndicatorRepo{
		getByIDFn: func(_ context.Context, id string) (*model.Indicator, error) {
			return &model.Indicator{BaseModel: model.BaseModel{ID: id}}, nil
		},
	}
	repo.Career = &mockCareerRepo{getByIDFn: func(_ context.Context, id string) (*model.Career, error) {
		return &model.Career{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	repo.Locality = &mockLocalityRepo{getByIDFn: func(_ context.Context, id string) (*model.Locality, error) {
		return &model.Locality{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	repo.Mode = &mockModeRepo{getByIDFn: func(_ context.Context, id string) (*model.Mode, error) {
		return &model.Mode{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	repo.Semester = &mockSemesterRepo{getByIDFn: func(_ context.Context, id string) (*model.Semester, error) {
		return &model.Semester{BaseModel: model.BaseModel{ID: id}}, nil
	}}
	svc := NewIndicatorService(repo, nil, testLogger())

	got, err := svc.Update(context.Background(), "ind-1", validIndicatorRequest())
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.ID != "ind-1" {
		t.Errorf("update must keep the row identity, got id %q", got.ID)
	}
}
