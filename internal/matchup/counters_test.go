package matchup

import (
	"testing"

	"github.com/wbcassist/wbcmatch/internal/models"
)

func TestGroupCounters(t *testing.T) {
	knight := testUnit("Knight", 14, 6, models.Slashing, models.AttackGround, false)
	knight.Resilience = []models.DamageType{models.Piercing}
	knight.Vulnerability = []models.DamageType{models.Fire}
	archer := testUnit("Archer", 10, 1, models.Piercing, models.AttackBoth, false)
	archer.Vulnerability = []models.DamageType{models.Slashing}
	drake := testUnit("Drake", 30, 8, models.Fire, models.AttackBoth, true)
	grunt := testUnit("Grunt", 12, 4, models.Crushing, models.AttackGround, false)

	p := Policy{Weights: map[Dimension]float64{DimOffense: 1}, Margin: 0.5}
	e := &Engine{policy: p}
	var records []models.MatchupRecord
	for _, en := range []models.Unit{archer, drake, grunt} {
		for _, pl := range []models.Unit{knight, grunt} {
			records = append(records, e.pair(pl, en))
		}
	}

	got := GroupCounters(records)
	if len(got) != 2 || got[0].Unit.Name != "Grunt" || got[1].Unit.Name != "Knight" {
		t.Fatalf("unexpected grouping: %+v", got)
	}

	k := got[1]
	names := func(us []models.Unit) []string {
		out := []string{}
		for _, u := range us {
			out = append(out, u.Name)
		}
		return out
	}
	if n := names(k.StrongAgainst); len(n) != 1 || n[0] != "Archer" {
		t.Errorf("Knight strong against %v, want [Archer]", n)
	}
	if n := names(k.EnemyVulnerable); len(n) != 1 || n[0] != "Archer" {
		t.Errorf("Knight enemy vulnerable %v, want [Archer]", n)
	}
	// the drake flies and breathes fire; the knight cannot reach it but is still weak to it
	if n := names(k.WeakAgainst); len(n) != 1 || n[0] != "Drake" {
		t.Errorf("Knight weak against %v, want [Drake]", n)
	}
	if len(got[0].StrongAgainst) != 0 || len(got[0].WeakAgainst) != 0 {
		t.Errorf("Grunt should have no counters: %+v", got[0])
	}
}

func TestEngineCounters(t *testing.T) {
	e, _ := newTestEngine(t)
	sel := Selection{Player: models.Humans, Enemies: []models.Race{models.Orcs, models.Undead}}
	counters, err := e.Counters(sel)
	if err != nil {
		t.Fatal(err)
	}
	if len(counters) != e.catalog.Count(models.Humans) {
		t.Errorf("got %d player units, want %d", len(counters), e.catalog.Count(models.Humans))
	}
	for _, uc := range counters {
		for _, en := range uc.WeakAgainst {
			if !en.CanHit(uc.Unit) || !uc.Unit.VulnerableTo(en.DamageType) {
				t.Errorf("%s listed weak against %s without cause", uc.Unit.Name, en.Name)
			}
		}
		for _, en := range uc.StrongAgainst {
			if !uc.Unit.CanHit(en) || !uc.Unit.ResistsDamage(en.DamageType) {
				t.Errorf("%s listed strong against %s without cause", uc.Unit.Name, en.Name)
			}
		}
	}
	if _, err := e.Counters(Selection{Player: models.Humans}); err == nil {
		t.Error("expected invalid selection error")
	}
}
