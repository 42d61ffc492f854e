package model

// Locality is a classification dimension keyed by name.
type Locality struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null;uniqueIndex:uq_locality_name" json:"name"`
}

// TableName sets the table name.
func (Locality) TableName() string { return "locality" }
