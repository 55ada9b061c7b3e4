package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseRace(t *testing.T) {
	tests := []struct {
		in   string
		want Race
	}{
		{"Barbarians", Barbarians},
		{"dark elves", DarkElves},
		{"dark-elves", DarkElves},
		{"  High Elves ", HighElves},
		{"WOOD-ELVES", WoodElves},
		{"plaguelords", Plaguelords},
	}
	for _, tt := range tests {
		got, err := ParseRace(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRace(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "Gnolls", "elves"} {
		if _, err := ParseRace(bad); err == nil {
			t.Errorf("ParseRace(%q) succeeded", bad)
		}
	}
}

func TestAllRaces(t *testing.T) {
	races := AllRaces()
	if len(races) != 16 || races[0] != Barbarians || races[15] != WoodElves {
		t.Fatalf("AllRaces() = %v", races)
	}
	seen := map[string]bool{}
	for _, r := range races {
		if seen[r.Slug()] {
			t.Errorf("duplicate slug %q", r.Slug())
		}
		seen[r.Slug()] = true
	}
	if DarkDwarves.Slug() != "dark-dwarves" {
		t.Errorf("DarkDwarves.Slug() = %q", DarkDwarves.Slug())
	}
	if RaceUnknown.Valid() || RaceUnknown.Slug() != "" {
		t.Error("zero race should be invalid")
	}
}

func TestParseUnitType(t *testing.T) {
	tests := []struct {
		in   string
		want UnitType
	}{
		{"builder", Builder},
		{"Builders", Builder},
		{"infantry", Infantry},
		{"T1 Fliers", Flier},
		{"dragons", Dragon},
		{"Titan", Titan},
	}
	for _, tt := range tests {
		got, err := ParseUnitType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseUnitType(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseUnitType("hero"); err == nil {
		t.Error("ParseUnitType(hero) succeeded")
	}
}

func TestParseDamageType(t *testing.T) {
	if d, err := ParseDamageType("Electrical"); err != nil || d != Electric {
		t.Errorf("ParseDamageType(Electrical) = %v, %v", d, err)
	}
	for _, d := range AllDamageTypes() {
		back, err := ParseDamageType(d.String())
		if err != nil || back != d {
			t.Errorf("ParseDamageType(%q) = %v, %v", d.String(), back, err)
		}
		if d.Icon() == "" {
			t.Errorf("%s has no icon", d)
		}
	}
}

func TestAttackReaches(t *testing.T) {
	tests := []struct {
		a      AttackType
		flying bool
		want   bool
	}{
		{AttackGround, false, true},
		{AttackGround, true, false},
		{AttackAir, false, false},
		{AttackAir, true, true},
		{AttackBoth, false, true},
		{AttackBoth, true, true},
		{AttackUnknown, false, false},
	}
	for _, tt := range tests {
		if got := tt.a.Reaches(tt.flying); got != tt.want {
			t.Errorf("%v.Reaches(%v) = %v, want %v", tt.a, tt.flying, got, tt.want)
		}
	}
}

func TestIndicatorMirror(t *testing.T) {
	for _, i := range []Indicator{Favorable, Neutral, Unfavorable} {
		if i.Mirror().Mirror() != i {
			t.Errorf("%v mirrored twice is %v", i, i.Mirror().Mirror())
		}
	}
	if Favorable.Mirror() != Unfavorable || Neutral.Mirror() != Neutral {
		t.Error("unexpected mirror")
	}
}

func TestUnitJSON(t *testing.T) {
	u := Unit{
		ID: "AHAX", Name: "Archer", Race: HighElves, Type: Infantry,
		DamageType: Piercing, AttackType: AttackBoth,
		Vulnerability: []DamageType{Slashing},
	}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	var back Unit
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	if back.Race != HighElves || back.Type != Infantry || back.DamageType != Piercing ||
		back.AttackType != AttackBoth || len(back.Vulnerability) != 1 || back.Vulnerability[0] != Slashing {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestCloneEncodesEmptyLists(t *testing.T) {
	u := Unit{Name: "Red Dragon", Race: Orcs, Type: Dragon, DamageType: Fire, AttackType: AttackBoth}
	c := u.Clone()
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"resilience":[]`, `"vulnerability":[]`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("%s does not contain %s", b, want)
		}
	}

	src := Unit{Resilience: []DamageType{Fire}, Vulnerability: []DamageType{Cold}}
	dup := src.Clone()
	dup.Resilience[0] = Death
	dup.Vulnerability[0] = Death
	if src.Resilience[0] != Fire || src.Vulnerability[0] != Cold {
		t.Errorf("clone shares slices with its source: %+v", src)
	}
}

func TestValidate(t *testing.T) {
	good := Unit{Name: "Archer", Race: Humans, Type: Infantry, DamageType: Piercing, AttackType: AttackBoth}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := []func(u *Unit){
		func(u *Unit) { u.Name = " " },
		func(u *Unit) { u.Race = RaceUnknown },
		func(u *Unit) { u.Type = UnitTypeUnknown },
		func(u *Unit) { u.DamageType = DamageUnknown },
		func(u *Unit) { u.AttackType = AttackUnknown },
		func(u *Unit) { u.Armour = -1 },
		func(u *Unit) { u.Production.Gold = -5 },
		func(u *Unit) { u.Resilience = []DamageType{DamageUnknown} },
	}
	for i, mutate := range bad {
		u := good.Clone()
		mutate(&u)
		if err := u.Validate(); err == nil {
			t.Errorf("case %d: expected error for %+v", i, u)
		}
	}
}
