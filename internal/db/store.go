package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wbcassist/wbcmatch/internal/models"
)

// Store is the Postgres staging database the dataset is ingested into before
// it is exported to a SQLite catalog.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, ddl := range postgresDDL() {
		if _, err := s.Pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func (s *Store) UpsertRace(ctx context.Context, tx pgx.Tx, race models.Race) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO races (id, name, slug)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug`,
		int(race), race.String(), race.Slug())
	return err
}

func (s *Store) InsertUnit(ctx context.Context, tx pgx.Tx, u models.Unit) error {
	_, err := tx.Exec(ctx,
		"INSERT INTO units ("+unitColumns+") VALUES ("+placeholders(unitColumnCount, true)+")",
		unitRow(u)...)
	return err
}

// IngestRace replaces the roster of one race. units must all belong to race.
func (s *Store) IngestRace(ctx context.Context, race models.Race, units []models.Unit) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.UpsertRace(ctx, tx, race); err != nil {
		return fmt.Errorf("upsert race %s: %w", race, err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM units WHERE race_id = $1", int(race)); err != nil {
		return fmt.Errorf("clear roster %s: %w", race, err)
	}
	for _, u := range units {
		if u.Race != race {
			return fmt.Errorf("unit %q belongs to %s, not %s", u.Name, u.Race, race)
		}
		if err := s.InsertUnit(ctx, tx, u); err != nil {
			return fmt.Errorf("insert unit %q: %w", u.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// ReadUnits returns every staged unit, ordered by race then tier then name.
func (s *Store) ReadUnits(ctx context.Context) ([]models.Unit, error) {
	rows, err := s.Pool.Query(ctx, "SELECT "+unitColumns+" FROM units ORDER BY race_id, tier, name")
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

// GroupByRace splits units into per-race rosters for IngestRace.
func GroupByRace(units []models.Unit) map[models.Race][]models.Unit {
	out := map[models.Race][]models.Unit{}
	for _, u := range units {
		out[u.Race] = append(out[u.Race], u)
	}
	return out
}
