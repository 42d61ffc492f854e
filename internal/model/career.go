package model

// Career is a classification dimension owned by a faculty.
type Career struct {
	BaseModel
	Name      string   `gorm:"type:varchar(255);not null;index:idx_career_name" json:"name"`
	Code      *string  `gorm:"type:varchar(50)"                                 json:"code,omitempty"`
	FacultyID string   `gorm:"type:uuid;not null;index:idx_career_faculty"      json:"faculty_id"`
	Faculty   *Faculty `gorm:"foreignKey:FacultyID"                             json:"faculty,omitempty"`
}

// TableName sets the table name.
func (Career) TableName() string { return "career" }
