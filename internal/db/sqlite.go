package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/wbcassist/wbcmatch/internal/models"

	_ "modernc.org/sqlite"
)

// ConnectSQLite opens an existing catalog file read-only.
func ConnectSQLite(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// CreateSQLite replaces whatever is at path with an empty catalog.
func CreateSQLite(path string) (*sql.DB, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove old catalog: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	for _, ddl := range sqliteDDL() {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create table: %w", err)
		}
	}

	return db, nil
}

// WriteSQLite inserts the races and units into a catalog made by
// CreateSQLite, in a single transaction.
func WriteSQLite(ctx context.Context, db *sql.DB, units []models.Unit) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	raceStmt, err := tx.PrepareContext(ctx, "INSERT INTO races (id, name, slug) VALUES (?,?,?)")
	if err != nil {
		return fmt.Errorf("prepare races: %w", err)
	}
	defer raceStmt.Close()
	unitStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO units ("+unitColumns+") VALUES ("+placeholders(unitColumnCount, false)+")")
	if err != nil {
		return fmt.Errorf("prepare units: %w", err)
	}
	defer unitStmt.Close()

	for _, race := range racesOf(units) {
		if _, err := raceStmt.ExecContext(ctx, int(race), race.String(), race.Slug()); err != nil {
			return fmt.Errorf("insert race %s: %w", race, err)
		}
	}
	for _, u := range units {
		if _, err := unitStmt.ExecContext(ctx, unitRow(u)...); err != nil {
			return fmt.Errorf("insert unit %s/%s: %w", u.Race, u.Name, err)
		}
	}
	return tx.Commit()
}

// LoadUnits reads every unit from a SQLite catalog, ordered by race then
// tier then name.
func LoadUnits(ctx context.Context, db *sql.DB) ([]models.Unit, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT "+unitColumns+" FROM units ORDER BY race_id, tier, name")
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		u, err := scanUnit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read units: %w", err)
	}
	return units, nil
}

// racesOf lists the distinct races of units in canonical order.
func racesOf(units []models.Unit) []models.Race {
	seen := map[models.Race]bool{}
	for _, u := range units {
		seen[u.Race] = true
	}
	var out []models.Race
	for _, r := range models.AllRaces() {
		if seen[r] {
			out = append(out, r)
		}
	}
	return out
}
