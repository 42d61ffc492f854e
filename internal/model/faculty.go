package model

// Faculty is a classification dimension. Its name is the natural key; it is
// reached from indicators only through careers.
type Faculty struct {
	BaseModel
	Name    string   `gorm:"type:varchar(255);not null;uniqueIndex:uq_faculty_name" json:"name"`
	Careers []Career `gorm:"foreignKey:FacultyID"                                   json:"careers,omitempty"`
}

// TableName sets the table name.
func (Faculty) TableName() string { return "faculty" }
