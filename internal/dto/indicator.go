package dto

// CreateIndicatorRequest carries the payload for creating or updating an
// indicator fact. All four dimension references are required; the four
// weighted averages may be omitted.
type CreateIndicatorRequest struct {
	CareerID   string `json:"careerId" binding:"required,uuid"`
	LocalityID string `json:"localityId" binding:"required,uuid"`
	ModeID     string `json:"modeId" binding:"required,uuid"`
	SemesterID string `json:"semesterId" binding:"required,uuid"`

	TInscritos            *int     `json:"t_inscritos" binding:"required"`
	TNuevos               *int     `json:"t_nuevos" binding:"required"`
	TAnteriores           *int     `json:"t_anteriores" binding:"required"`
	MatriculasInscritas   *int     `json:"matriculas_inscritas" binding:"required"`
	SinNota               *int     `json:"sin_nota" binding:"required"`
	SinNotaPercent        *float64 `json:"sin_nota_percent" binding:"required"`
	Aprobados             *int     `json:"aprobados" binding:"required"`
	AprobadosPercent      *float64 `json:"aprobados_percent" binding:"required"`
	Reprobados            *int     `json:"reprobados" binding:"required"`
	ReprobadosPercent     *float64 `json:"reprobados_percent" binding:"required"`
	ReprobadosCon0        *int     `json:"reprobados_con_0" binding:"required"`
	ReprobadosCon0Percent *float64 `json:"reprobados_con_0_percent" binding:"required"`
	Moras                 *int     `json:"moras" binding:"required"`
	MorasPercent          *float64 `json:"moras_percent" binding:"required"`
	Retirados             *int     `json:"retirados" binding:"required"`
	PPA                   *float64 `json:"ppa,omitempty"`
	PPS                   *float64 `json:"pps,omitempty"`
	PPA1                  *float64 `json:"ppa1,omitempty"`
	PPAC                  *float64 `json:"ppac,omitempty"`
	Egresados             *int     `json:"egresados" binding:"required"`
	Titulados             *int     `json:"titulados" binding:"required"`
}
