package db

import (
	"fmt"
	"strings"

	"github.com/wbcassist/wbcmatch/internal/ingestion"
	"github.com/wbcassist/wbcmatch/internal/models"
)

// Column order shared by the Postgres staging tables and the SQLite catalog.
const unitColumns = `race_id, code, name, unit_type, tier, damage, attack_range, combat,
	hits, armour, speed, resistance, damage_type, attack_type, flying,
	resilience, vulnerability, ability,
	prod_time, prod_gold, prod_metal, prod_stone, prod_crystal`

const unitColumnCount = 23

func sqliteDDL() []string {
	return []string{
		`CREATE TABLE races (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE units (
			race_id INTEGER NOT NULL REFERENCES races(id) ON DELETE CASCADE,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			unit_type TEXT NOT NULL,
			tier INTEGER NOT NULL DEFAULT 0,
			damage INTEGER NOT NULL,
			attack_range INTEGER NOT NULL,
			combat INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			armour INTEGER NOT NULL,
			speed INTEGER NOT NULL,
			resistance INTEGER NOT NULL,
			damage_type TEXT NOT NULL,
			attack_type TEXT NOT NULL,
			flying INTEGER NOT NULL DEFAULT 0,
			resilience TEXT NOT NULL DEFAULT '',
			vulnerability TEXT NOT NULL DEFAULT '',
			ability TEXT NOT NULL DEFAULT '',
			prod_time INTEGER NOT NULL DEFAULT 0,
			prod_gold INTEGER NOT NULL DEFAULT 0,
			prod_metal INTEGER NOT NULL DEFAULT 0,
			prod_stone INTEGER NOT NULL DEFAULT 0,
			prod_crystal INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (race_id, code),
			UNIQUE (race_id, name)
		)`,
		`CREATE INDEX idx_units_type ON units(unit_type)`,
	}
}

func postgresDDL() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS races (
			id SMALLINT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS units (
			race_id SMALLINT NOT NULL REFERENCES races(id) ON DELETE CASCADE,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			unit_type TEXT NOT NULL,
			tier INTEGER NOT NULL DEFAULT 0,
			damage INTEGER NOT NULL,
			attack_range INTEGER NOT NULL,
			combat INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			armour INTEGER NOT NULL,
			speed INTEGER NOT NULL,
			resistance INTEGER NOT NULL,
			damage_type TEXT NOT NULL,
			attack_type TEXT NOT NULL,
			flying BOOLEAN NOT NULL DEFAULT FALSE,
			resilience TEXT NOT NULL DEFAULT '',
			vulnerability TEXT NOT NULL DEFAULT '',
			ability TEXT NOT NULL DEFAULT '',
			prod_time INTEGER NOT NULL DEFAULT 0,
			prod_gold INTEGER NOT NULL DEFAULT 0,
			prod_metal INTEGER NOT NULL DEFAULT 0,
			prod_stone INTEGER NOT NULL DEFAULT 0,
			prod_crystal INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (race_id, code),
			UNIQUE (race_id, name)
		)`,
	}
}

func unitRow(u models.Unit) []any {
	return []any{
		int(u.Race), u.ID, u.Name, u.Type.String(), u.Tier, u.Damage, u.Range, u.Combat,
		u.Hits, u.Armour, u.Speed, u.Resistance, u.DamageType.String(), u.AttackType.String(), u.Flying,
		joinDamage(u.Resilience), joinDamage(u.Vulnerability), u.Ability,
		u.Production.Time, u.Production.Gold, u.Production.Metal, u.Production.Stone, u.Production.Crystal,
	}
}

// scanUnit reads one row in unitColumns order. scan is the Scan method of
// either a database/sql or a pgx row.
func scanUnit(scan func(dest ...any) error) (models.Unit, error) {
	var (
		u                      models.Unit
		raceID                 int
		unitType, dmg, attack  string
		resilience, vulnerable string
	)
	err := scan(&raceID, &u.ID, &u.Name, &unitType, &u.Tier, &u.Damage, &u.Range, &u.Combat,
		&u.Hits, &u.Armour, &u.Speed, &u.Resistance, &dmg, &attack, &u.Flying,
		&resilience, &vulnerable, &u.Ability,
		&u.Production.Time, &u.Production.Gold, &u.Production.Metal, &u.Production.Stone, &u.Production.Crystal)
	if err != nil {
		return models.Unit{}, err
	}

	u.Race = models.Race(raceID)
	if !u.Race.Valid() {
		return models.Unit{}, fmt.Errorf("unit %q: unknown race id %d", u.ID, raceID)
	}
	if u.Type, err = models.ParseUnitType(unitType); err != nil {
		return models.Unit{}, fmt.Errorf("unit %q: %w", u.ID, err)
	}
	if u.DamageType, err = models.ParseDamageType(dmg); err != nil {
		return models.Unit{}, fmt.Errorf("unit %q: %w", u.ID, err)
	}
	if u.AttackType, err = models.ParseAttackType(attack); err != nil {
		return models.Unit{}, fmt.Errorf("unit %q: %w", u.ID, err)
	}
	if u.Resilience, err = splitDamage(resilience); err != nil {
		return models.Unit{}, fmt.Errorf("unit %q resilience: %w", u.ID, err)
	}
	if u.Vulnerability, err = splitDamage(vulnerable); err != nil {
		return models.Unit{}, fmt.Errorf("unit %q vulnerability: %w", u.ID, err)
	}
	u.Traits = ingestion.ParseTraits(u.Ability)
	return u, nil
}

func joinDamage(list []models.DamageType) string {
	parts := make([]string, len(list))
	for i, d := range list {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}

func splitDamage(s string) ([]models.DamageType, error) {
	out := []models.DamageType{}
	if s == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		d, err := models.ParseDamageType(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// placeholders renders "?,?,?" or "$1,$2,$3".
func placeholders(n int, numbered bool) string {
	parts := make([]string, n)
	for i := range parts {
		if numbered {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ",")
}
