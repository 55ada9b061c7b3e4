package models

import (
	"encoding/json"
	"fmt"
)

// Indicator is the qualitative verdict of a matchup, from the player's side.
type Indicator int8

const (
	Unfavorable Indicator = -1
	Neutral     Indicator = 0
	Favorable   Indicator = 1
)

func (i Indicator) String() string {
	switch i {
	case Favorable:
		return "favorable"
	case Unfavorable:
		return "unfavorable"
	case Neutral:
		return "neutral"
	}
	return fmt.Sprintf("Indicator(%d)", int8(i))
}

// Mirror is the verdict seen from the opponent's side.
func (i Indicator) Mirror() Indicator {
	return -i
}

func (i Indicator) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// Counters are the damage-type and reach facts behind the "strong against"
// and "weak against" lists.
type Counters struct {
	PlayerResists    bool `json:"player_resists"`
	EnemyVulnerable  bool `json:"enemy_vulnerable"`
	PlayerVulnerable bool `json:"player_vulnerable"`
	PlayerCanHit     bool `json:"player_can_hit"`
	EnemyCanHit      bool `json:"enemy_can_hit"`
}

type MatchupRecord struct {
	Player    Unit               `json:"player"`
	Enemy     Unit               `json:"enemy"`
	Score     float64            `json:"score"`
	Indicator Indicator          `json:"indicator"`
	Breakdown map[string]float64 `json:"breakdown"`
	Counters  Counters           `json:"counters"`
}
