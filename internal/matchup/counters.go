package matchup

import (
	"sort"

	"github.com/wbcassist/wbcmatch/internal/models"
)

// UnitCounters summarizes, for one player unit, which enemy units it
// counters and which counter it.
type UnitCounters struct {
	Unit models.Unit `json:"unit"`
	// StrongAgainst: enemies the unit can hit whose damage type it resists.
	StrongAgainst []models.Unit `json:"strong_against"`
	// EnemyVulnerable: enemies the unit can hit that are vulnerable to its damage type.
	EnemyVulnerable []models.Unit `json:"enemy_vulnerable"`
	// WeakAgainst: enemies that can hit the unit with a damage type it is vulnerable to.
	WeakAgainst []models.Unit `json:"weak_against"`
}

// Counters groups the matchups of sel by player unit, in player name order.
func (e *Engine) Counters(sel Selection) ([]UnitCounters, error) {
	records, err := e.Compute(sel)
	if err != nil {
		return nil, err
	}
	return GroupCounters(records), nil
}

// GroupCounters folds matchup records into per-player-unit counters. Enemy
// lists keep the record order.
func GroupCounters(records []models.MatchupRecord) []UnitCounters {
	index := map[string]int{}
	out := []UnitCounters{}
	for _, r := range records {
		i, ok := index[r.Player.Name]
		if !ok {
			i = len(out)
			index[r.Player.Name] = i
			out = append(out, UnitCounters{
				Unit:            r.Player,
				StrongAgainst:   []models.Unit{},
				EnemyVulnerable: []models.Unit{},
				WeakAgainst:     []models.Unit{},
			})
		}
		uc := &out[i]
		c := r.Counters
		if c.PlayerCanHit && c.PlayerResists {
			uc.StrongAgainst = append(uc.StrongAgainst, r.Enemy)
		}
		if c.PlayerCanHit && c.EnemyVulnerable {
			uc.EnemyVulnerable = append(uc.EnemyVulnerable, r.Enemy)
		}
		if c.EnemyCanHit && c.PlayerVulnerable {
			uc.WeakAgainst = append(uc.WeakAgainst, r.Enemy)
		}
	}
	sortCounters(out)
	return out
}

func sortCounters(out []UnitCounters) {
	sort.SliceStable(out, func(i, j int) bool { return out[i].Unit.Name < out[j].Unit.Name })
}
