package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Faculty   FacultyRepository
	Career    CareerRepository
	Locality  LocalityRepository
	Mode      ModeRepository
	Semester  SemesterRepository
	Indicator IndicatorRepository
	Report    ReportRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Faculty:   NewFacultyRepo(db),
		Career:    NewCareerRepo(db),
		Locality:  NewLocalityRepo(db),
		Mode:      NewModeRepo(db),
		Semester:  NewSemesterRepo(db),
		Indicator: NewIndicatorRepo(db),
		Report:    NewReportRepo(db),
	}
}
