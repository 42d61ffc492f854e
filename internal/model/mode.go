package model

// Mode is the delivery-mode classification dimension keyed by name.
type Mode struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null;uniqueIndex:uq_mode_name" json:"name"`
}

// TableName sets the table name.
func (Mode) TableName() string { return "mode" }
