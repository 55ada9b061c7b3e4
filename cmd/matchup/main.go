package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wbcassist/wbcmatch/internal/catalog"
	"github.com/wbcassist/wbcmatch/internal/matchup"
	"github.com/wbcassist/wbcmatch/internal/models"
	"github.com/wbcassist/wbcmatch/internal/report"
)

func main() {
	player := flag.String("player", "", "Your race")
	enemy := flag.String("enemy", "", "Comma separated enemy races")
	types := flag.String("type", "", "Comma separated unit types (default all)")
	enemyTypes := flag.String("enemy-type", "", `Comma separated unit types for the enemy side, "all" for no filter (default: same as -type)`)
	policyPath := flag.String("policy", "", "Comparison policy YAML (default: built in)")
	maxEnemies := flag.Int("max-enemies", 5, "Largest accepted enemy set, 0 for no limit")
	counters := flag.Bool("counters", false, "Print strong/weak lists per unit instead of the matchup table")
	xlsxPath := flag.String("xlsx", "", "Also write the matchup table to this XLSX file")
	flag.Parse()

	cat, err := catalog.Bundled()
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	policy := mustPolicy(*policyPath)
	engine := matchup.New(cat, policy, matchup.WithMaxEnemyRaces(*maxEnemies))

	sel, err := matchup.ParseSelection(*player, split(*enemy), split(*types), enemyTypeArg(*enemyTypes))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	records, err := engine.Compute(sel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	title := fmt.Sprintf("%s vs %s", sel.Player, joinRaces(sel.Enemies))
	if *counters {
		printCounters(matchup.GroupCounters(records))
	} else if err := report.WriteText(os.Stdout, report.MatchupTable(title, records)); err != nil {
		log.Fatalf("print: %v", err)
	}

	if *xlsxPath != "" {
		f, err := os.Create(*xlsxPath)
		if err != nil {
			log.Fatalf("create %s: %v", *xlsxPath, err)
		}
		if err := report.WriteXLSX(f, report.MatchupTable(title, records)); err != nil {
			f.Close()
			log.Fatalf("write %s: %v", *xlsxPath, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close %s: %v", *xlsxPath, err)
		}
		fmt.Printf("\nWrote %s\n", *xlsxPath)
	}
}

func mustPolicy(path string) matchup.Policy {
	var p matchup.Policy
	var err error
	if path == "" {
		p, err = matchup.DefaultPolicy()
	} else {
		p, err = matchup.LoadPolicy(path)
	}
	if err != nil {
		log.Fatalf("load policy: %v", err)
	}
	return p
}

func printCounters(list []matchup.UnitCounters) {
	for _, uc := range list {
		fmt.Printf("%s %s (%s)\n", uc.Unit.DamageType.Icon(), uc.Unit.Name, uc.Unit.Type)
		fmt.Printf("  strong against:   %s\n", unitNames(uc.StrongAgainst))
		fmt.Printf("  exploits:         %s\n", unitNames(uc.EnemyVulnerable))
		fmt.Printf("  weak against:     %s\n", unitNames(uc.WeakAgainst))
	}
}

func unitNames(units []models.Unit) string {
	if len(units) == 0 {
		return "-"
	}
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name + " (" + u.Race.String() + ")"
	}
	return strings.Join(names, ", ")
}

func joinRaces(races []models.Race) string {
	names := make([]string, len(races))
	for i, r := range races {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}

// enemyTypeArg reads -enemy-type. Unset follows -type; "all" keeps every
// enemy unit even when -type narrows the player side.
func enemyTypeArg(s string) []string {
	switch {
	case strings.TrimSpace(s) == "":
		return nil
	case strings.EqualFold(strings.TrimSpace(s), "all"):
		return []string{}
	}
	return split(s)
}

func split(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
