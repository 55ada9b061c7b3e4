package db

import (
	"context"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/wbcassist/wbcmatch/data"
	"github.com/wbcassist/wbcmatch/internal/ingestion"
	"github.com/wbcassist/wbcmatch/internal/models"
)

func sortUnits(units []models.Unit) {
	sort.Slice(units, func(i, j int) bool {
		a, b := units[i], units[j]
		if a.Race != b.Race {
			return a.Race < b.Race
		}
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.Name < b.Name
	})
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	units, err := ingestion.ParseFS(data.Dataset)
	if err != nil {
		t.Fatalf("parse dataset: %v", err)
	}

	path := filepath.Join(t.TempDir(), "wbc.db")
	w, err := CreateSQLite(path)
	if err != nil {
		t.Fatalf("CreateSQLite: %v", err)
	}
	if err := WriteSQLite(ctx, w, units); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}
	w.Close()

	r, err := ConnectSQLite(path)
	if err != nil {
		t.Fatalf("ConnectSQLite: %v", err)
	}
	defer r.Close()

	got, err := LoadUnits(ctx, r)
	if err != nil {
		t.Fatalf("LoadUnits: %v", err)
	}
	if len(got) != len(units) {
		t.Fatalf("loaded %d units, want %d", len(got), len(units))
	}
	want := append([]models.Unit(nil), units...)
	sortUnits(want)
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("unit %d:\n got %+v\nwant %+v", i, got[i], want[i])
		}
	}

	var races int
	if err := r.QueryRowContext(ctx, "SELECT COUNT(*) FROM races").Scan(&races); err != nil {
		t.Fatal(err)
	}
	if races != len(racesOf(units)) {
		t.Errorf("races table has %d rows, want %d", races, len(racesOf(units)))
	}

	if _, err := r.ExecContext(ctx, "DELETE FROM units"); err == nil {
		t.Error("read-only connection accepted a write")
	}
}

func TestConnectSQLiteMissingFile(t *testing.T) {
	if _, err := ConnectSQLite(filepath.Join(t.TempDir(), "absent.db")); err == nil {
		t.Error("expected error for missing catalog")
	}
}

func TestWriteSQLiteRejectsDuplicateNames(t *testing.T) {
	u := models.Unit{
		ID: "AHAX", Name: "Archer", Race: models.Humans, Type: models.Infantry,
		DamageType: models.Piercing, AttackType: models.AttackBoth,
	}
	dup := u
	dup.ID = "AHAY"

	w, err := CreateSQLite(filepath.Join(t.TempDir(), "dup.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := WriteSQLite(context.Background(), w, []models.Unit{u, dup}); err == nil {
		t.Error("expected unique constraint error")
	}
	var n int
	if err := w.QueryRow("SELECT COUNT(*) FROM units").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("failed write left %d rows behind", n)
	}
}

func TestDamageListColumns(t *testing.T) {
	tests := []struct {
		in   []models.DamageType
		text string
	}{
		{[]models.DamageType{}, ""},
		{[]models.DamageType{models.Fire}, "fire"},
		{[]models.DamageType{models.Piercing, models.Cold, models.Death}, "piercing,cold,death"},
	}
	for _, tt := range tests {
		if got := joinDamage(tt.in); got != tt.text {
			t.Errorf("joinDamage(%v) = %q, want %q", tt.in, got, tt.text)
		}
		back, err := splitDamage(tt.text)
		if err != nil {
			t.Fatalf("splitDamage(%q): %v", tt.text, err)
		}
		if !reflect.DeepEqual(back, tt.in) {
			t.Errorf("splitDamage(%q) = %v, want %v", tt.text, back, tt.in)
		}
	}
	if _, err := splitDamage("fire,lava"); err == nil {
		t.Error("expected error for unknown damage type")
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(3, false); got != "?,?,?" {
		t.Errorf("placeholders(3, false) = %q", got)
	}
	if got := placeholders(3, true); got != "$1,$2,$3" {
		t.Errorf("placeholders(3, true) = %q", got)
	}
}
