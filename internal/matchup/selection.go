package matchup

import (
	"github.com/wbcassist/wbcmatch/internal/models"
)

// ParseSelection builds a Selection from user-facing names. A nil enemyTypes
// leaves EnemyTypes unset so Types applies to both sides.
func ParseSelection(player string, enemies, types, enemyTypes []string) (Selection, error) {
	var sel Selection
	var err error

	if sel.Player, err = models.ParseRace(player); err != nil {
		return Selection{}, invalidSelection("player race: %v", err)
	}
	for _, name := range enemies {
		r, err := models.ParseRace(name)
		if err != nil {
			return Selection{}, invalidSelection("enemy race: %v", err)
		}
		sel.Enemies = append(sel.Enemies, r)
	}
	if sel.Types, err = parseTypes(types); err != nil {
		return Selection{}, err
	}
	if enemyTypes != nil {
		if sel.EnemyTypes, err = parseTypes(enemyTypes); err != nil {
			return Selection{}, err
		}
		if sel.EnemyTypes == nil {
			sel.EnemyTypes = []models.UnitType{}
		}
	}
	return sel, nil
}

func parseTypes(names []string) ([]models.UnitType, error) {
	var out []models.UnitType
	for _, name := range names {
		t, err := models.ParseUnitType(name)
		if err != nil {
			return nil, invalidSelection("%v", err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Swap returns the selection seen from the other side: the enemy at index i
// becomes the player and the player takes its place among the enemies. The
// type filters follow their side.
func (s Selection) Swap(i int) (Selection, error) {
	if i < 0 || i >= len(s.Enemies) {
		return Selection{}, invalidSelection("no enemy race at position %d", i)
	}
	out := Selection{
		Player:  s.Enemies[i],
		Enemies: append([]models.Race(nil), s.Enemies...),
		Types:   append([]models.UnitType(nil), s.Types...),
	}
	out.Enemies[i] = s.Player
	if s.EnemyTypes != nil {
		out.Types = append([]models.UnitType(nil), s.EnemyTypes...)
		out.EnemyTypes = append([]models.UnitType{}, s.Types...)
	}
	return out, nil
}
