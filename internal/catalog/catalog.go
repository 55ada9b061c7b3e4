// Package catalog holds the unit dataset as an immutable in-memory table.
//
// A Catalog is built once at startup and only read afterwards, so it is safe
// to share between goroutines without locking. Every accessor hands out
// copies; nothing a caller does can change the catalog.
package catalog

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/wbcassist/wbcmatch/data"
	"github.com/wbcassist/wbcmatch/internal/ingestion"
	"github.com/wbcassist/wbcmatch/internal/models"
)

type unitKey struct {
	race models.Race
	name string
}

type Catalog struct {
	byRace map[models.Race][]models.Unit // sorted by name
	index  map[unitKey]int               // position in byRace[race]
	races  []models.Race
	types  []models.UnitType
	total  int
}

// New validates units and builds a catalog from them.
func New(units []models.Unit) (*Catalog, error) {
	c := &Catalog{
		byRace: make(map[models.Race][]models.Unit),
		index:  make(map[unitKey]int, len(units)),
	}

	seen := make(map[unitKey]bool, len(units))
	typeSeen := map[models.UnitType]bool{}
	for _, u := range units {
		if err := u.Validate(); err != nil {
			return nil, err
		}
		k := unitKey{u.Race, u.Name}
		if seen[k] {
			return nil, fmt.Errorf("duplicate unit %s/%s", u.Race, u.Name)
		}
		seen[k] = true
		typeSeen[u.Type] = true
		c.byRace[u.Race] = append(c.byRace[u.Race], u.Clone())
	}

	for race, roster := range c.byRace {
		sort.Slice(roster, func(i, j int) bool { return roster[i].Name < roster[j].Name })
		for i, u := range roster {
			c.index[unitKey{race, u.Name}] = i
		}
		c.total += len(roster)
	}
	for _, r := range models.AllRaces() {
		if len(c.byRace[r]) > 0 {
			c.races = append(c.races, r)
		}
	}
	for _, t := range models.AllUnitTypes() {
		if typeSeen[t] {
			c.types = append(c.types, t)
		}
	}
	return c, nil
}

// FromFS parses a community-format dataset (races.json + units.json).
func FromFS(fsys fs.FS) (*Catalog, error) {
	units, err := ingestion.ParseFS(fsys)
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return New(units)
}

// Bundled loads the dataset embedded in the binary.
func Bundled() (*Catalog, error) {
	return FromFS(data.Dataset)
}

// Races returns the races that have units, in canonical order.
func (c *Catalog) Races() []models.Race {
	return append([]models.Race(nil), c.races...)
}

// UnitTypes returns the unit types present in the dataset, in canonical order.
func (c *Catalog) UnitTypes() []models.UnitType {
	return append([]models.UnitType(nil), c.types...)
}

// Units returns the roster of race sorted by name.
func (c *Catalog) Units(race models.Race) []models.Unit {
	roster := c.byRace[race]
	out := make([]models.Unit, len(roster))
	for i, u := range roster {
		out[i] = u.Clone()
	}
	return out
}

// Unit looks up a unit by race and exact name.
func (c *Catalog) Unit(race models.Race, name string) (models.Unit, bool) {
	i, ok := c.index[unitKey{race, name}]
	if !ok {
		return models.Unit{}, false
	}
	return c.byRace[race][i].Clone(), true
}

// All returns every unit ordered by race, tier and name.
func (c *Catalog) All() []models.Unit {
	out := make([]models.Unit, 0, c.total)
	for _, r := range c.races {
		out = append(out, c.Units(r)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Race != out[j].Race {
			return out[i].Race < out[j].Race
		}
		return out[i].Tier < out[j].Tier
	})
	return out
}

// Count returns the number of units of race.
func (c *Catalog) Count(race models.Race) int {
	return len(c.byRace[race])
}

func (c *Catalog) Len() int {
	return c.total
}
