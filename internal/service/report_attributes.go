package service

import (
	"strings"

	"github.com/LuiSauter/data-mart/internal/repository"
)

// Attribute policy shared by every grouped report. Measures ending in
// "percent" and the weighted averages (pp-prefixed) are averaged; plain
// counts are summed. This table is the single source of truth: report
// queries for all five grouping dimensions consume it.

// indicatorAttributes enumerates every fact column eligible for aggregation.
// Requested attribute names are checked against this set before they are
// placed into a query.
var indicatorAttributes = map[string]bool{
	"t_inscritos":              true,
	"t_nuevos":                 true,
	"t_anteriores":             true,
	"matriculas_inscritas":     true,
	"sin_nota":                 true,
	"sin_nota_percent":         true,
	"aprobados":                true,
	"aprobados_percent":        true,
	"reprobados":               true,
	"reprobados_percent":       true,
	"reprobados_con_0":         true,
	"reprobados_con_0_percent": true,
	"moras":                    true,
	"moras_percent":            true,
	"retirados":                true,
	"ppa":                      true,
	"pps":                      true,
	"ppa1":                     true,
	"ppac":                     true,
	"egresados":                true,
	"titulados":                true,
}

// attributeLabels maps qualified aggregate aliases to display labels.
// Aliases without an entry fall back to the alias itself.
var attributeLabels = map[string]string{
	"sum_t_inscritos":              "Estudiantes inscritos",
	"sum_t_nuevos":                 "Estudiantes nuevos",
	"sum_t_anteriores":             "Estudiantes anteriores",
	"sum_matriculas_inscritas":     "Matrículas inscritas",
	"sum_sin_nota":                 "Estudiantes sin nota",
	"avg_sin_nota_percent":         "Porcentaje sin nota",
	"sum_aprobados":                "Estudiantes aprobados",
	"avg_aprobados_percent":        "Porcentaje de aprobados",
	"sum_reprobados":               "Estudiantes reprobados",
	"avg_reprobados_percent":       "Porcentaje de reprobados",
	"sum_reprobados_con_0":         "Reprobados con nota cero",
	"avg_reprobados_con_0_percent": "Porcentaje de reprobados con nota cero",
	"sum_moras":                    "Estudiantes en mora",
	"avg_moras_percent":            "Porcentaje en mora",
	"sum_retirados":                "Estudiantes retirados",
	"avg_ppa":                      "Promedio ponderado acumulado",
	"avg_pps":                      "Promedio ponderado semestral",
	"avg_ppa1":                     "Promedio ponderado del primer año",
	"avg_ppac":                     "Promedio ponderado acumulado de la carrera",
	"sum_egresados":                "Estudiantes egresados",
	"sum_titulados":                "Estudiantes titulados",
}

// IsIndicatorAttribute reports whether name is a known measure column.
func IsIndicatorAttribute(name string) bool {
	return indicatorAttributes[name]
}

// ClassifyAttribute picks the aggregation operator for a measure. Percentage
// columns are checked first; the pp prefix covers the four weighted averages.
// Everything else is a count and gets summed.
func ClassifyAttribute(name string) repository.AggregateOp {
	if strings.HasSuffix(name, "percent") {
		return repository.OpAvg
	}
	if strings.HasPrefix(name, "pp") {
		return repository.OpAvg
	}
	return repository.OpSum
}

// AggregateColumn builds the typed aggregate for a measure, aliased
// "{op}_{name}".
func AggregateColumn(name string) repository.AggregateColumn {
	op := ClassifyAttribute(name)
	return repository.AggregateColumn{
		Op:        op,
		Attribute: name,
		Alias:     string(op) + "_" + name,
	}
}

// AttributeLabel resolves the display label for a qualified alias, falling
// back to the alias verbatim.
func AttributeLabel(alias string) string {
	if label, ok := attributeLabels[alias]; ok {
		return label
	}
	return alias
}
