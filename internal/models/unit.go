package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type UnitType uint8

const (
	UnitTypeUnknown UnitType = iota
	Builder
	Infantry
	Flier
	Dragon
	Titan
)

var unitTypeNames = [...]string{
	UnitTypeUnknown: "",
	Builder:         "builder",
	Infantry:        "infantry",
	Flier:           "flier",
	Dragon:          "dragon",
	Titan:           "titan",
}

// AllUnitTypes lists every unit type in canonical order.
func AllUnitTypes() []UnitType {
	return []UnitType{Builder, Infantry, Flier, Dragon, Titan}
}

func (t UnitType) Valid() bool {
	return t >= Builder && t <= Titan
}

func (t UnitType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("UnitType(%d)", uint8(t))
	}
	return unitTypeNames[t]
}

// ParseUnitType is case-insensitive and also takes the plural labels of the
// type checkboxes ("builders", "fliers", "t1 fliers").
func ParseUnitType(s string) (UnitType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "t1 ")
	for t := Builder; t <= Titan; t++ {
		name := unitTypeNames[t]
		if key == name || key == name+"s" {
			return t, nil
		}
	}
	return UnitTypeUnknown, fmt.Errorf("unknown unit type %q", s)
}

func (t UnitType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *UnitType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseUnitType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type DamageType uint8

const (
	DamageUnknown DamageType = iota
	Crushing
	Piercing
	Slashing
	Cold
	Electric
	Fire
	Magic
	Poison
	Death
)

var damageTypeNames = [...]string{
	DamageUnknown: "",
	Crushing:      "crushing",
	Piercing:      "piercing",
	Slashing:      "slashing",
	Cold:          "cold",
	Electric:      "electric",
	Fire:          "fire",
	Magic:         "magic",
	Poison:        "poison",
	Death:         "death",
}

var damageTypeIcons = [...]string{
	DamageUnknown: "",
	Crushing:      "🔨",
	Piercing:      "🏹",
	Slashing:      "🗡️",
	Cold:          "❄️",
	Electric:      "⚡",
	Fire:          "🔥",
	Magic:         "✨",
	Poison:        "☠️",
	Death:         "💀",
}

// AllDamageTypes lists every damage type in canonical order.
func AllDamageTypes() []DamageType {
	out := make([]DamageType, 0, len(damageTypeNames)-1)
	for d := Crushing; d <= Death; d++ {
		out = append(out, d)
	}
	return out
}

func (d DamageType) Valid() bool {
	return d >= Crushing && d <= Death
}

func (d DamageType) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DamageType(%d)", uint8(d))
	}
	return damageTypeNames[d]
}

// Icon is the glyph shown for the damage type in unit cards.
func (d DamageType) Icon() string {
	if !d.Valid() {
		return ""
	}
	return damageTypeIcons[d]
}

func ParseDamageType(s string) (DamageType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "electrical" {
		key = "electric"
	}
	for d := Crushing; d <= Death; d++ {
		if damageTypeNames[d] == key {
			return d, nil
		}
	}
	return DamageUnknown, fmt.Errorf("unknown damage type %q", s)
}

func (d DamageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DamageType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDamageType(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AttackType says which targets a unit can hit.
type AttackType uint8

const (
	AttackUnknown AttackType = iota
	AttackGround
	AttackAir
	AttackBoth
)

var attackTypeNames = [...]string{
	AttackUnknown: "",
	AttackGround:  "ground",
	AttackAir:     "air",
	AttackBoth:    "both",
}

func (a AttackType) Valid() bool {
	return a >= AttackGround && a <= AttackBoth
}

func (a AttackType) String() string {
	if !a.Valid() {
		return fmt.Sprintf("AttackType(%d)", uint8(a))
	}
	return attackTypeNames[a]
}

func ParseAttackType(s string) (AttackType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a := AttackGround; a <= AttackBoth; a++ {
		if attackTypeNames[a] == key {
			return a, nil
		}
	}
	return AttackUnknown, fmt.Errorf("unknown attack type %q", s)
}

// Reaches reports whether an attack of this type can hit a target that is
// (or is not) flying.
func (a AttackType) Reaches(targetFlying bool) bool {
	switch a {
	case AttackBoth:
		return true
	case AttackAir:
		return targetFlying
	case AttackGround:
		return !targetFlying
	}
	return false
}

func (a AttackType) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AttackType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAttackType(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

type Production struct {
	Time    int `json:"time"`
	Gold    int `json:"gold"`
	Metal   int `json:"metal"`
	Stone   int `json:"stone"`
	Crystal int `json:"crystal"`
}

// Unit is one recruitable unit of one race. (Race, Name) is unique.
type Unit struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Race          Race         `json:"race"`
	Type          UnitType     `json:"type"`
	Tier          int          `json:"tier"`
	Damage        int          `json:"damage"`
	Range         int          `json:"range"`
	Combat        int          `json:"combat"`
	Hits          int          `json:"hits"`
	Armour        int          `json:"armour"`
	Speed         int          `json:"speed"`
	Resistance    int          `json:"resistance"`
	DamageType    DamageType   `json:"damage_type"`
	AttackType    AttackType   `json:"attack_type"`
	Flying        bool         `json:"flying"`
	Resilience    []DamageType `json:"resilience"`
	Vulnerability []DamageType `json:"vulnerability"`
	Ability       string       `json:"ability,omitempty"`
	Traits        []string     `json:"traits,omitempty"`
	Production    Production   `json:"production"`
}

func (u Unit) ResistsDamage(d DamageType) bool {
	return containsDamage(u.Resilience, d)
}

func (u Unit) VulnerableTo(d DamageType) bool {
	return containsDamage(u.Vulnerability, d)
}

// CanHit reports whether u's attack type reaches the target.
func (u Unit) CanHit(target Unit) bool {
	return u.AttackType.Reaches(target.Flying)
}

// Validate checks the invariants the matchup engine relies on.
func (u Unit) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("unit %q: empty name", u.ID)
	}
	if !u.Race.Valid() {
		return fmt.Errorf("unit %q: invalid race", u.Name)
	}
	if !u.Type.Valid() {
		return fmt.Errorf("unit %q: invalid unit type", u.Name)
	}
	if !u.DamageType.Valid() {
		return fmt.Errorf("unit %q: invalid damage type", u.Name)
	}
	if !u.AttackType.Valid() {
		return fmt.Errorf("unit %q: invalid attack type", u.Name)
	}
	stats := []struct {
		name string
		v    int
	}{
		{"tier", u.Tier}, {"damage", u.Damage}, {"range", u.Range}, {"combat", u.Combat},
		{"hits", u.Hits}, {"armour", u.Armour}, {"speed", u.Speed}, {"resistance", u.Resistance},
		{"time", u.Production.Time}, {"gold", u.Production.Gold}, {"metal", u.Production.Metal},
		{"stone", u.Production.Stone}, {"crystal", u.Production.Crystal},
	}
	for _, s := range stats {
		if s.v < 0 {
			return fmt.Errorf("unit %q: negative %s %d", u.Name, s.name, s.v)
		}
	}
	for _, d := range append(append([]DamageType{}, u.Resilience...), u.Vulnerability...) {
		if !d.Valid() {
			return fmt.Errorf("unit %q: invalid damage type in resilience/vulnerability", u.Name)
		}
	}
	return nil
}

// Clone returns a copy that shares no slices with u. Resilience and
// vulnerability are never nil so they encode as [] rather than null.
func (u Unit) Clone() Unit {
	c := u
	c.Resilience = append([]DamageType{}, u.Resilience...)
	c.Vulnerability = append([]DamageType{}, u.Vulnerability...)
	c.Traits = append([]string(nil), u.Traits...)
	return c
}

func containsDamage(list []DamageType, d DamageType) bool {
	for _, x := range list {
		if x == d {
			return true
		}
	}
	return false
}
