package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wbcassist/wbcmatch/internal/models"
)

var matchupColumns = []Column{
	{Key: "enemy_race", Label: "Enemy Race", Type: "text", Align: "left"},
	{Key: "enemy", Label: "Enemy", Type: "text", Align: "left"},
	{Key: "enemy_damage", Label: "Enemy Damage", Type: "text", Align: "left"},
	{Key: "player", Label: "Unit", Type: "text", Align: "left"},
	{Key: "player_damage", Label: "Damage", Type: "text", Align: "left"},
	{Key: "score", Label: "Score", Type: "number", Align: "right"},
	{Key: "verdict", Label: "Verdict", Type: "verdict", Align: "center"},
	{Key: "notes", Label: "Notes", Type: "text", Align: "left"},
}

// MatchupTable lays out one row per record, in record order.
func MatchupTable(title string, records []models.MatchupRecord) *TableData {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Enemy.Race.String(),
			r.Enemy.Name,
			damageLabel(r.Enemy.DamageType),
			r.Player.Name,
			damageLabel(r.Player.DamageType),
			fmt.Sprintf("%.2f", r.Score),
			r.Indicator.String(),
			notes(r.Counters),
		})
	}

	s := Summarize(records)
	return &TableData{
		Title:   title,
		Columns: append([]Column(nil), matchupColumns...),
		Rows:    rows,
		Summary: &TableSummary{
			Label: "Total",
			Values: map[string]string{
				"favorable":   strconv.Itoa(s.Favorable),
				"neutral":     strconv.Itoa(s.Neutral),
				"unfavorable": strconv.Itoa(s.Unfavorable),
			},
		},
	}
}

func notes(c models.Counters) string {
	var out []string
	if !c.PlayerCanHit {
		out = append(out, "cannot hit")
	}
	if !c.EnemyCanHit {
		out = append(out, "out of reach")
	}
	if c.PlayerCanHit && c.PlayerResists {
		out = append(out, "resists")
	}
	if c.PlayerCanHit && c.EnemyVulnerable {
		out = append(out, "exploits weakness")
	}
	if c.EnemyCanHit && c.PlayerVulnerable {
		out = append(out, "vulnerable")
	}
	return strings.Join(out, ", ")
}

func damageLabel(d models.DamageType) string {
	return d.Icon() + " " + d.String()
}

var unitColumns = []Column{
	{Key: "race", Label: "Race", Type: "text", Align: "left"},
	{Key: "name", Label: "Unit", Type: "text", Align: "left"},
	{Key: "type", Label: "Type", Type: "text", Align: "left"},
	{Key: "tier", Label: "Tier", Type: "number", Align: "right"},
	{Key: "damage", Label: "Damage", Type: "number", Align: "right"},
	{Key: "damage_type", Label: "Damage Type", Type: "text", Align: "left"},
	{Key: "attack_type", Label: "Attack", Type: "text", Align: "left"},
	{Key: "range", Label: "Range", Type: "number", Align: "right"},
	{Key: "combat", Label: "Combat", Type: "number", Align: "right"},
	{Key: "hits", Label: "Hits", Type: "number", Align: "right"},
	{Key: "armour", Label: "Armour", Type: "number", Align: "right"},
	{Key: "speed", Label: "Speed", Type: "number", Align: "right"},
	{Key: "resistance", Label: "Resistance", Type: "number", Align: "right"},
	{Key: "resilience", Label: "Resilient To", Type: "text", Align: "left"},
	{Key: "vulnerability", Label: "Vulnerable To", Type: "text", Align: "left"},
	{Key: "gold", Label: "Gold", Type: "number", Align: "right"},
}

// UnitTable is the browse view of a list of units.
func UnitTable(title string, units []models.Unit) *TableData {
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{
			u.Race.String(),
			u.Name,
			u.Type.String(),
			strconv.Itoa(u.Tier),
			strconv.Itoa(u.Damage),
			damageLabel(u.DamageType),
			u.AttackType.String(),
			strconv.Itoa(u.Range),
			strconv.Itoa(u.Combat),
			strconv.Itoa(u.Hits),
			strconv.Itoa(u.Armour),
			strconv.Itoa(u.Speed),
			strconv.Itoa(u.Resistance),
			damageList(u.Resilience),
			damageList(u.Vulnerability),
			strconv.Itoa(u.Production.Gold),
		})
	}
	return &TableData{
		Title:   title,
		Columns: append([]Column(nil), unitColumns...),
		Rows:    rows,
	}
}

func damageList(list []models.DamageType) string {
	parts := make([]string, len(list))
	for i, d := range list {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}
