package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// Race is one of the sixteen playable factions. The zero value is not a race.
type Race uint8

const (
	RaceUnknown Race = iota
	Barbarians
	Daemons
	DarkDwarves
	DarkElves
	Dwarves
	Fey
	HighElves
	Humans
	Knights
	Minotaurs
	Orcs
	Plaguelords
	Ssrathi
	Swarm
	Undead
	WoodElves
)

var raceNames = [...]string{
	RaceUnknown: "",
	Barbarians:  "Barbarians",
	Daemons:     "Daemons",
	DarkDwarves: "Dark Dwarves",
	DarkElves:   "Dark Elves",
	Dwarves:     "Dwarves",
	Fey:         "Fey",
	HighElves:   "High Elves",
	Humans:      "Humans",
	Knights:     "Knights",
	Minotaurs:   "Minotaurs",
	Orcs:        "Orcs",
	Plaguelords: "Plaguelords",
	Ssrathi:     "Ssrathi",
	Swarm:       "Swarm",
	Undead:      "Undead",
	WoodElves:   "Wood Elves",
}

// AllRaces lists every race in canonical order.
func AllRaces() []Race {
	out := make([]Race, 0, len(raceNames)-1)
	for r := Barbarians; r <= WoodElves; r++ {
		out = append(out, r)
	}
	return out
}

func (r Race) Valid() bool {
	return r >= Barbarians && r <= WoodElves
}

func (r Race) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Race(%d)", uint8(r))
	}
	return raceNames[r]
}

// Slug is the URL form of the race name, e.g. "dark-elves".
func (r Race) Slug() string {
	if !r.Valid() {
		return ""
	}
	return slug.Make(raceNames[r])
}

// ParseRace accepts a display name or a slug, case-insensitively.
func ParseRace(s string) (Race, error) {
	key := strings.TrimSpace(s)
	if key == "" {
		return RaceUnknown, fmt.Errorf("empty race")
	}
	keySlug := slug.Make(key)
	for r := Barbarians; r <= WoodElves; r++ {
		if strings.EqualFold(raceNames[r], key) || r.Slug() == keySlug {
			return r, nil
		}
	}
	return RaceUnknown, fmt.Errorf("unknown race %q", s)
}

func (r Race) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Race) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRace(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
