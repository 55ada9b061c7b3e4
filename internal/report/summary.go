package report

import (
	"github.com/wbcassist/wbcmatch/internal/models"
)

// Tally counts verdicts.
type Tally struct {
	Total       int `json:"total"`
	Favorable   int `json:"favorable"`
	Neutral     int `json:"neutral"`
	Unfavorable int `json:"unfavorable"`
}

func (t *Tally) add(i models.Indicator) {
	t.Total++
	switch i {
	case models.Favorable:
		t.Favorable++
	case models.Unfavorable:
		t.Unfavorable++
	default:
		t.Neutral++
	}
}

type RaceTally struct {
	Race models.Race `json:"race"`
	Tally
}

// Summary is the verdict count of a matchup result, overall and per enemy
// race in the order the races first appear in the records.
type Summary struct {
	Tally
	ByEnemy []RaceTally `json:"by_enemy"`
}

func Summarize(records []models.MatchupRecord) Summary {
	s := Summary{ByEnemy: []RaceTally{}}
	index := map[models.Race]int{}
	for _, r := range records {
		s.add(r.Indicator)
		i, ok := index[r.Enemy.Race]
		if !ok {
			i = len(s.ByEnemy)
			index[r.Enemy.Race] = i
			s.ByEnemy = append(s.ByEnemy, RaceTally{Race: r.Enemy.Race})
		}
		s.ByEnemy[i].add(r.Indicator)
	}
	return s
}
