package model

// Semester is the academic-period classification dimension. Its natural key
// is the (period, year) pair; both are stored as text exactly as uploaded.
type Semester struct {
	BaseModel
	Period string `gorm:"type:varchar(10);not null;uniqueIndex:uq_semester_period_year" json:"period"`
	Year   string `gorm:"type:varchar(10);not null;uniqueIndex:uq_semester_period_year" json:"year"`
}

// TableName sets the table name.
func (Semester) TableName() string { return "semester" }
