// Package matchup pairs a player's units with the units of enemy races and
// rates every pairing with a configurable comparison policy.
package matchup

import (
	"errors"
	"fmt"

	"github.com/wbcassist/wbcmatch/internal/catalog"
	"github.com/wbcassist/wbcmatch/internal/models"
)

// ErrInvalidSelection is returned for a selection the engine cannot answer:
// unknown race or unit type, an empty enemy set, or an enemy set that
// contains the player's race.
var ErrInvalidSelection = errors.New("invalid selection")

func invalidSelection(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSelection, fmt.Sprintf(format, args...))
}

// Selection is one query. Types restricts both sides to the given unit types
// (empty means all); EnemyTypes, when non-nil, replaces Types for the enemy side.
// In JSON a null enemy_types follows types and [] leaves the enemy side
// unfiltered, so the field is always written.
type Selection struct {
	Player     models.Race       `json:"player"`
	Enemies    []models.Race     `json:"enemies"`
	Types      []models.UnitType `json:"types,omitempty"`
	EnemyTypes []models.UnitType `json:"enemy_types"`
}

type Engine struct {
	catalog    *catalog.Catalog
	policy     Policy
	maxEnemies int
}

type Option func(*Engine)

// WithMaxEnemyRaces caps the size of the enemy set. Zero means no cap.
func WithMaxEnemyRaces(n int) Option {
	return func(e *Engine) { e.maxEnemies = n }
}

func New(cat *catalog.Catalog, policy Policy, opts ...Option) *Engine {
	e := &Engine{catalog: cat, policy: policy}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Policy() Policy {
	weights := make(map[Dimension]float64, len(e.policy.Weights))
	for d, w := range e.policy.Weights {
		weights[d] = w
	}
	return Policy{Weights: weights, Margin: e.policy.Margin}
}

func (e *Engine) MaxEnemyRaces() int {
	return e.maxEnemies
}

// Races lists the selectable races in canonical order.
func (e *Engine) Races() []models.Race {
	return e.catalog.Races()
}

// UnitTypes lists the unit types present in the dataset.
func (e *Engine) UnitTypes() []models.UnitType {
	return e.catalog.UnitTypes()
}

type query struct {
	player      models.Race
	enemies     []models.Race // deduplicated, canonical order
	playerTypes map[models.UnitType]bool
	enemyTypes  map[models.UnitType]bool
}

func (e *Engine) validate(sel Selection) (query, error) {
	if !sel.Player.Valid() {
		return query{}, invalidSelection("unknown player race %s", sel.Player)
	}
	if len(sel.Enemies) == 0 {
		return query{}, invalidSelection("no enemy race selected")
	}

	picked := map[models.Race]bool{}
	for _, r := range sel.Enemies {
		if !r.Valid() {
			return query{}, invalidSelection("unknown enemy race %s", r)
		}
		if r == sel.Player {
			return query{}, invalidSelection("%s cannot be matched against itself", r)
		}
		picked[r] = true
	}
	if e.maxEnemies > 0 && len(picked) > e.maxEnemies {
		return query{}, invalidSelection("at most %d enemy races, got %d", e.maxEnemies, len(picked))
	}

	q := query{player: sel.Player}
	for _, r := range models.AllRaces() {
		if picked[r] {
			q.enemies = append(q.enemies, r)
		}
	}

	var err error
	if q.playerTypes, err = typeSet(sel.Types); err != nil {
		return query{}, err
	}
	q.enemyTypes = q.playerTypes
	if sel.EnemyTypes != nil {
		if q.enemyTypes, err = typeSet(sel.EnemyTypes); err != nil {
			return query{}, err
		}
	}
	return q, nil
}

// typeSet returns nil (no restriction) for an empty filter.
func typeSet(types []models.UnitType) (map[models.UnitType]bool, error) {
	if len(types) == 0 {
		return nil, nil
	}
	set := make(map[models.UnitType]bool, len(types))
	for _, t := range types {
		if !t.Valid() {
			return nil, invalidSelection("unknown unit type %s", t)
		}
		set[t] = true
	}
	return set, nil
}

func filterUnits(units []models.Unit, types map[models.UnitType]bool) []models.Unit {
	if types == nil {
		return units
	}
	out := units[:0]
	for _, u := range units {
		if types[u.Type] {
			out = append(out, u)
		}
	}
	return out
}

// Compute pairs every player unit with every enemy unit that passes the type
// filters. Records are ordered by enemy race, enemy unit name, then player
// unit name.
func (e *Engine) Compute(sel Selection) ([]models.MatchupRecord, error) {
	q, err := e.validate(sel)
	if err != nil {
		return nil, err
	}

	players := filterUnits(e.catalog.Units(q.player), q.playerTypes)
	records := []models.MatchupRecord{}
	for _, race := range q.enemies {
		enemies := filterUnits(e.catalog.Units(race), q.enemyTypes)
		for _, en := range enemies {
			for _, p := range players {
				records = append(records, e.pair(p, en))
			}
		}
	}
	return records, nil
}

func (e *Engine) pair(p, en models.Unit) models.MatchupRecord {
	score, breakdown := e.policy.Score(p, en)
	return models.MatchupRecord{
		Player:    p,
		Enemy:     en,
		Score:     score,
		Indicator: e.policy.Classify(score),
		Breakdown: breakdown,
		Counters: models.Counters{
			PlayerResists:    p.ResistsDamage(en.DamageType),
			EnemyVulnerable:  en.VulnerableTo(p.DamageType),
			PlayerVulnerable: p.VulnerableTo(en.DamageType),
			PlayerCanHit:     p.CanHit(en),
			EnemyCanHit:      en.CanHit(p),
		},
	}
}
