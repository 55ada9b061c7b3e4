package ingestion

import (
	"strings"
	"testing"

	"github.com/wbcassist/wbcmatch/data"
	"github.com/wbcassist/wbcmatch/internal/models"
)

func TestParseBundledDataset(t *testing.T) {
	units, err := ParseFS(data.Dataset)
	if err != nil {
		t.Fatalf("ParseFS: %v", err)
	}

	races := map[models.Race]int{}
	for _, u := range units {
		races[u.Race]++
		if u.Name == "Guardian Skull" {
			t.Errorf("unit without a race should be dropped")
		}
	}
	if len(races) != 16 {
		t.Errorf("got %d races, want 16", len(races))
	}

	find := func(r models.Race, name string) *models.Unit {
		for i := range units {
			if units[i].Race == r && units[i].Name == name {
				return &units[i]
			}
		}
		return nil
	}

	tests := []struct {
		race   models.Race
		name   string
		typ    models.UnitType
		flying bool
	}{
		{models.Humans, "Peasant", models.Builder, false},
		{models.Knights, "Peasant", models.Builder, false},
		{models.HighElves, "Archer", models.Infantry, false},
		{models.HighElves, "Great Eagle", models.Flier, true},
		{models.HighElves, "Crystal Dragon", models.Dragon, true},
		{models.Dwarves, "Gyrocopter", models.Infantry, true},
		{models.Orcs, "Orc Warlord", models.Titan, false},
	}
	for _, tt := range tests {
		u := find(tt.race, tt.name)
		if u == nil {
			t.Errorf("%s %s not found", tt.race, tt.name)
			continue
		}
		if u.Type != tt.typ {
			t.Errorf("%s %s type = %s, want %s", tt.race, tt.name, u.Type, tt.typ)
		}
		if u.Flying != tt.flying {
			t.Errorf("%s %s flying = %v, want %v", tt.race, tt.name, u.Flying, tt.flying)
		}
	}

	// rosters come out grouped by race and ordered by tier
	for i := 1; i < len(units); i++ {
		a, b := units[i-1], units[i]
		if a.Race > b.Race || (a.Race == b.Race && a.Tier > b.Tier) {
			t.Fatalf("units out of order at %d: %s/%d before %s/%d", i, a.Race, a.Tier, b.Race, b.Tier)
		}
	}
}

func TestParseErrors(t *testing.T) {
	const goodUnit = `{"id":"HSWD","name":"Swordsman","damage":12,"range":0,"combat":6,
		"damageType":"slashing","attackType":"ground","hits":80,"armour":6,"speed":10,
		"resistance":2,"resilience":[],"vulnerability":["fire"],
		"production":{"time":15,"gold":50,"metal":5,"stone":0,"crystal":0},"ability":""}`

	tests := []struct {
		name    string
		races   string
		units   string
		wantErr string
	}{
		{"unknown race", `[{"name":"Gnolls","units":[]}]`, `[]`, "unknown race"},
		{"unknown unit id", `[{"name":"Humans","units":[{"id":"XXXX","tier":1}]}]`, `[` + goodUnit + `]`, "unknown unit id"},
		{"duplicate race", `[{"name":"Humans","units":[]},{"name":"humans","units":[]}]`, `[]`, "listed twice"},
		{"negative stat", `[{"name":"Humans","units":[{"id":"HSWD","tier":1}]}]`,
			`[` + strings.Replace(goodUnit, `"hits":80`, `"hits":-1`, 1) + `]`, "negative hits"},
		{"bad damage type", `[{"name":"Humans","units":[{"id":"HSWD","tier":1}]}]`,
			`[` + strings.Replace(goodUnit, `"slashing"`, `"sonic"`, 1) + `]`, "unknown damage type"},
		{"bad json", `[`, `[]`, "decode races.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.races), strings.NewReader(tt.units))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		id   string
		want models.UnitType
	}{
		{"AHBX", models.Builder},
		{"ATUX", models.Titan},
		{"AADR", models.Dragon},
		{"AAWA", models.Flier},
		{"AAEG", models.Flier},
		{"VGYR", models.Infantry},
		{"OGRT", models.Infantry},
	}
	for _, tt := range tests {
		if got := Classify(tt.id); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestParseTraits(t *testing.T) {
	got := ParseTraits("Flying. Breath weapon. flying.")
	if len(got) != 2 || got[0] != "flying" || got[1] != "breath weapon" {
		t.Errorf("ParseTraits = %v", got)
	}
	if got := ParseTraits(""); len(got) != 0 {
		t.Errorf("ParseTraits(\"\") = %v, want empty", got)
	}
}
