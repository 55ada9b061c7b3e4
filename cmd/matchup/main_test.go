package main

import (
	"reflect"
	"testing"

	"github.com/wbcassist/wbcmatch/internal/matchup"
	"github.com/wbcassist/wbcmatch/internal/models"
)

func TestEnemyTypeArg(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"all", []string{}},
		{" ALL ", []string{}},
		{"infantry", []string{"infantry"}},
		{"fliers, titans", []string{"fliers", "titans"}},
	}
	for _, tt := range tests {
		got := enemyTypeArg(tt.in)
		if (got == nil) != (tt.want == nil) || !reflect.DeepEqual(append([]string{}, got...), append([]string{}, tt.want...)) {
			t.Errorf("enemyTypeArg(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestEnemyTypeAllSelection(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want []models.UnitType
	}{
		{"unset follows type", "", nil},
		{"all is unfiltered", "all", []models.UnitType{}},
		{"explicit", "dragon", []models.UnitType{models.Dragon}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := matchup.ParseSelection("Orcs", []string{"Humans"}, []string{"infantry"}, enemyTypeArg(tt.arg))
			if err != nil {
				t.Fatalf("ParseSelection: %v", err)
			}
			if (sel.EnemyTypes == nil) != (tt.want == nil) || len(sel.EnemyTypes) != len(tt.want) {
				t.Fatalf("EnemyTypes = %#v, want %#v", sel.EnemyTypes, tt.want)
			}
			for i := range tt.want {
				if sel.EnemyTypes[i] != tt.want[i] {
					t.Errorf("EnemyTypes = %v, want %v", sel.EnemyTypes, tt.want)
				}
			}
		})
	}
}
