package repository

import "testing"

func TestSafeIdentifier(t *testing.T) {
	valid := []string{"t_inscritos", "avg_ppa", "sum_reprobados_con_0", "ppa1"}
	for _, s := range valid {
		if !safeIdentifier(s) {
			t.Errorf("safeIdentifier(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"T_INSCRITOS",
		"name; DROP TABLE indicator",
		"indicator.t_inscritos",
		"t inscritos",
		"t-inscritos",
		`t"ins`,
	}
	for _, s := range invalid {
		if safeIdentifier(s) {
			t.Errorf("safeIdentifier(%q) = true, want false", s)
		}
	}
}
