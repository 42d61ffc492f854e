package model

// Indicator is the fact row: one semester's measured outcomes for one
// career/locality/mode combination. Percentage columns are stored exactly as
// uploaded and are never cross-checked against their count twin.
type Indicator struct {
	BaseModel
	CareerID   string `gorm:"type:uuid;not null;index:idx_indicator_career"   json:"career_id"`
	LocalityID string `gorm:"type:uuid;not null;index:idx_indicator_locality" json:"locality_id"`
	ModeID     string `gorm:"type:uuid;not null;index:idx_indicator_mode"     json:"mode_id"`
	SemesterID string `gorm:"type:uuid;not null;index:idx_indicator_semester" json:"semester_id"`

	Career   *Career   `gorm:"foreignKey:CareerID"   json:"career,omitempty"`
	Locality *Locality `gorm:"foreignKey:LocalityID" json:"locality,omitempty"`
	Mode     *Mode     `gorm:"foreignKey:ModeID"     json:"mode,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID" json:"semester,omitempty"`

	TInscritos            int     `gorm:"column:t_inscritos;not null"                   json:"t_inscritos"`
	TNuevos               int     `gorm:"column:t_nuevos;not null"                      json:"t_nuevos"`
	TAnteriores           int     `gorm:"column:t_anteriores;not null"                  json:"t_anteriores"`
	MatriculasInscritas   int     `gorm:"column:matriculas_inscritas;not null"          json:"matriculas_inscritas"`
	SinNota               int     `gorm:"column:sin_nota;not null"                      json:"sin_nota"`
	SinNotaPercent        float64 `gorm:"column:sin_nota_percent;not null"              json:"sin_nota_percent"`
	Aprobados             int     `gorm:"column:aprobados;not null"                     json:"aprobados"`
	AprobadosPercent      float64 `gorm:"column:aprobados_percent;not null"             json:"aprobados_percent"`
	Reprobados            int     `gorm:"column:reprobados;not null"                    json:"reprobados"`
	ReprobadosPercent     float64 `gorm:"column:reprobados_percent;not null"            json:"reprobados_percent"`
	ReprobadosCon0        int     `gorm:"column:reprobados_con_0;not null"              json:"reprobados_con_0"`
	ReprobadosCon0Percent float64 `gorm:"column:reprobados_con_0_percent;not null"      json:"reprobados_con_0_percent"`
	Moras                 int     `gorm:"column:moras;not null"                         json:"moras"`
	MorasPercent          float64 `gorm:"column:moras_percent;not null"                 json:"moras_percent"`
	Retirados             int     `gorm:"column:retirados;not null"                     json:"retirados"`

	// GPA-like averages, absent in some source files.
	PPA  *float64 `gorm:"column:ppa"  json:"ppa,omitempty"`
	PPS  *float64 `gorm:"column:pps"  json:"pps,omitempty"`
	PPA1 *float64 `gorm:"column:ppa1" json:"ppa1,omitempty"`
	PPAC *float64 `gorm:"column:ppac" json:"ppac,omitempty"`

	Egresados int `gorm:"column:egresados;not null" json:"egresados"`
	Titulados int `gorm:"column:titulados;not null" json:"titulados"`
}

// TableName sets the table name.
func (Indicator) TableName() string { return "indicator" }
