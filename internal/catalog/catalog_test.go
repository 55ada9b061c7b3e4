package catalog

import (
	"strings"
	"testing"

	"github.com/wbcassist/wbcmatch/internal/models"
)

func unit(race models.Race, name string, typ models.UnitType) models.Unit {
	return models.Unit{
		ID: "TEST", Name: name, Race: race, Type: typ, Tier: 1,
		Damage: 10, Hits: 50, Armour: 2, Speed: 10, Combat: 3,
		DamageType: models.Slashing, AttackType: models.AttackGround,
		Resilience: []models.DamageType{models.Cold},
	}
}

func TestNew(t *testing.T) {
	c, err := New([]models.Unit{
		unit(models.Orcs, "Troll", models.Infantry),
		unit(models.Orcs, "Grunt", models.Infantry),
		unit(models.Humans, "Peasant", models.Builder),
		unit(models.Orcs, "Peasant", models.Builder),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	races := c.Races()
	if len(races) != 2 || races[0] != models.Humans || races[1] != models.Orcs {
		t.Errorf("Races = %v, want [Humans Orcs]", races)
	}
	types := c.UnitTypes()
	if len(types) != 2 || types[0] != models.Builder || types[1] != models.Infantry {
		t.Errorf("UnitTypes = %v", types)
	}

	orcs := c.Units(models.Orcs)
	var names []string
	for _, u := range orcs {
		names = append(names, u.Name)
	}
	if got := strings.Join(names, ","); got != "Grunt,Peasant,Troll" {
		t.Errorf("Orc roster = %s", got)
	}
	if c.Len() != 4 || c.Count(models.Orcs) != 3 || c.Count(models.Undead) != 0 {
		t.Errorf("Len=%d Count(Orcs)=%d", c.Len(), c.Count(models.Orcs))
	}
}

func TestNewRejectsBadUnits(t *testing.T) {
	neg := unit(models.Orcs, "Grunt", models.Infantry)
	neg.Armour = -1
	noType := unit(models.Orcs, "Grunt", models.UnitTypeUnknown)

	tests := []struct {
		name  string
		units []models.Unit
	}{
		{"duplicate", []models.Unit{unit(models.Orcs, "Grunt", models.Infantry), unit(models.Orcs, "Grunt", models.Infantry)}},
		{"negative stat", []models.Unit{neg}},
		{"unknown type", []models.Unit{noType}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.units); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, err := New([]models.Unit{unit(models.Orcs, "Grunt", models.Infantry)})
	if err != nil {
		t.Fatal(err)
	}
	roster := c.Units(models.Orcs)
	roster[0].Damage = 999
	roster[0].Resilience[0] = models.Fire

	u, ok := c.Unit(models.Orcs, "Grunt")
	if !ok {
		t.Fatal("Grunt not found")
	}
	if u.Damage != 10 || u.Resilience[0] != models.Cold {
		t.Errorf("catalog mutated through returned slice: %+v", u)
	}
	if _, ok := c.Unit(models.Orcs, "grunt"); ok {
		t.Error("lookup should be exact")
	}
}

func TestBundled(t *testing.T) {
	c, err := Bundled()
	if err != nil {
		t.Fatalf("Bundled: %v", err)
	}
	if got := len(c.Races()); got != 16 {
		t.Errorf("got %d races, want 16", got)
	}
	if got := len(c.UnitTypes()); got != 5 {
		t.Errorf("got %d unit types, want 5", got)
	}
	all := c.All()
	if len(all) != c.Len() {
		t.Errorf("All returned %d units, Len %d", len(all), c.Len())
	}
	// The embedded dataset is a sample; cmd/fetch-dataset pulls the full one.
	for _, r := range c.Races() {
		if n := c.Count(r); n == 0 || n > 8 {
			t.Errorf("%s has %d bundled units, want 1..8", r, n)
		}
	}
}
