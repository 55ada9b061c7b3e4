package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/wbcassist/wbcmatch/internal/models"
)

const (
	RacesFile = "races.json"
	UnitsFile = "units.json"
)

// Community dataset locations (xandros15/wbc-sg-races).
const (
	RacesURL = "https://raw.githubusercontent.com/xandros15/wbc-sg-races/gh-pages/races.json"
	UnitsURL = "https://raw.githubusercontent.com/xandros15/wbc-sg-races/gh-pages/units.json"
)

// SourceRace is one entry of races.json.
type SourceRace struct {
	Name  string           `json:"name"`
	Units []SourceRaceUnit `json:"units"`
}

type SourceRaceUnit struct {
	ID   string `json:"id"`
	Tier int    `json:"tier"`
}

// SourceUnit is one entry of units.json.
type SourceUnit struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Damage        int              `json:"damage"`
	Range         int              `json:"range"`
	Combat        int              `json:"combat"`
	DamageType    string           `json:"damageType"`
	AttackType    string           `json:"attackType"`
	Hits          int              `json:"hits"`
	Armour        int              `json:"armour"`
	Speed         int              `json:"speed"`
	Resistance    int              `json:"resistance"`
	Resilience    []string         `json:"resilience"`
	Vulnerability []string         `json:"vulnerability"`
	Production    SourceProduction `json:"production"`
	Ability       string           `json:"ability"`
}

type SourceProduction struct {
	Time    int `json:"time"`
	Gold    int `json:"gold"`
	Metal   int `json:"metal"`
	Stone   int `json:"stone"`
	Crystal int `json:"crystal"`
}

// Unit codes of the categories the type checkboxes filter on. Everything else
// is infantry, including flying units outside these lists such as the
// Gyrocopter.
var (
	builderIDs = codeSet("AHBX", "ABBX", "AEBX", "AEAX", "AUBX", "ADBX",
		"AFBX", "ALBX", "AVBX", "AABX", "AOBX", "ARBX")
	t1FlierIDs = codeSet("AAEG", "AAPH", "AALH", "AABA", "AADF", "AAFB", "AAWA")
	dragonIDs  = codeSet("AADB", "AADR", "AADG", "AADW", "AADC", "AADU")
	titanIDs   = codeSet("ATDX", "ATPX", "ATEX", "ATHX", "ATBX", "ATFX", "ATMX",
		"ATLX", "ATWX", "ATVX", "ATKX", "ATAX", "ATOX", "ATGX", "ATRX", "ATUX")
)

func codeSet(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

// ParseDir reads races.json and units.json from a directory.
func ParseDir(dir string) ([]models.Unit, error) {
	return ParseFS(os.DirFS(dir))
}

// ParseFS reads races.json and units.json from the root of fsys.
func ParseFS(fsys fs.FS) ([]models.Unit, error) {
	rf, err := fsys.Open(RacesFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", RacesFile, err)
	}
	defer rf.Close()

	uf, err := fsys.Open(UnitsFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", UnitsFile, err)
	}
	defer uf.Close()

	return Parse(rf, uf)
}

// Parse decodes both source files and joins them into validated units.
func Parse(racesJSON, unitsJSON io.Reader) ([]models.Unit, error) {
	var races []SourceRace
	if err := json.NewDecoder(racesJSON).Decode(&races); err != nil {
		return nil, fmt.Errorf("decode %s: %w", RacesFile, err)
	}
	var units []SourceUnit
	if err := json.NewDecoder(unitsJSON).Decode(&units); err != nil {
		return nil, fmt.Errorf("decode %s: %w", UnitsFile, err)
	}
	return Join(races, units)
}

// Join merges unit stats onto race rosters. A unit code may appear in more
// than one roster; units no race lists are dropped.
func Join(races []SourceRace, units []SourceUnit) ([]models.Unit, error) {
	byID := make(map[string]SourceUnit, len(units))
	for _, u := range units {
		if u.ID == "" {
			return nil, fmt.Errorf("unit %q: missing id", u.Name)
		}
		if _, dup := byID[u.ID]; dup {
			return nil, fmt.Errorf("duplicate unit id %q", u.ID)
		}
		byID[u.ID] = u
	}

	var out []models.Unit
	seenRace := map[models.Race]bool{}
	for _, sr := range races {
		race, err := models.ParseRace(sr.Name)
		if err != nil {
			return nil, err
		}
		if seenRace[race] {
			return nil, fmt.Errorf("race %s listed twice", race)
		}
		seenRace[race] = true

		names := map[string]bool{}
		for _, ru := range sr.Units {
			su, ok := byID[ru.ID]
			if !ok {
				return nil, fmt.Errorf("race %s: unknown unit id %q", race, ru.ID)
			}
			u, err := convertUnit(race, ru.Tier, su)
			if err != nil {
				return nil, fmt.Errorf("race %s: %w", race, err)
			}
			if names[u.Name] {
				return nil, fmt.Errorf("race %s: duplicate unit name %q", race, u.Name)
			}
			names[u.Name] = true
			out = append(out, u)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Race != out[j].Race {
			return out[i].Race < out[j].Race
		}
		return out[i].Tier < out[j].Tier
	})
	return out, nil
}

func convertUnit(race models.Race, tier int, su SourceUnit) (models.Unit, error) {
	dt, err := models.ParseDamageType(su.DamageType)
	if err != nil {
		return models.Unit{}, fmt.Errorf("unit %q: %w", su.Name, err)
	}
	at, err := models.ParseAttackType(su.AttackType)
	if err != nil {
		return models.Unit{}, fmt.Errorf("unit %q: %w", su.Name, err)
	}
	resil, err := parseDamageList(su.Resilience)
	if err != nil {
		return models.Unit{}, fmt.Errorf("unit %q resilience: %w", su.Name, err)
	}
	vuln, err := parseDamageList(su.Vulnerability)
	if err != nil {
		return models.Unit{}, fmt.Errorf("unit %q vulnerability: %w", su.Name, err)
	}

	traits := ParseTraits(su.Ability)
	flying := hasTrait(traits, "flying")

	u := models.Unit{
		ID:            su.ID,
		Name:          strings.TrimSpace(su.Name),
		Race:          race,
		Type:          Classify(su.ID),
		Tier:          tier,
		Damage:        su.Damage,
		Range:         su.Range,
		Combat:        su.Combat,
		Hits:          su.Hits,
		Armour:        su.Armour,
		Speed:         su.Speed,
		Resistance:    su.Resistance,
		DamageType:    dt,
		AttackType:    at,
		Flying:        flying,
		Resilience:    resil,
		Vulnerability: vuln,
		Ability:       strings.TrimSpace(su.Ability),
		Traits:        traits,
		Production: models.Production{
			Time:    su.Production.Time,
			Gold:    su.Production.Gold,
			Metal:   su.Production.Metal,
			Stone:   su.Production.Stone,
			Crystal: su.Production.Crystal,
		},
	}
	if err := u.Validate(); err != nil {
		return models.Unit{}, err
	}
	return u, nil
}

// Classify maps a unit code to its type checkbox category.
func Classify(id string) models.UnitType {
	switch {
	case builderIDs[id]:
		return models.Builder
	case titanIDs[id]:
		return models.Titan
	case dragonIDs[id]:
		return models.Dragon
	case t1FlierIDs[id]:
		return models.Flier
	default:
		return models.Infantry
	}
}

// ParseTraits splits an ability description like "Flying. Breath weapon." into
// lowercase tags.
func ParseTraits(ability string) []string {
	var out []string
	for _, part := range strings.Split(ability, ".") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || hasTrait(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

func hasTrait(traits []string, tag string) bool {
	for _, t := range traits {
		if t == tag {
			return true
		}
	}
	return false
}

func parseDamageList(vals []string) ([]models.DamageType, error) {
	out := make([]models.DamageType, 0, len(vals))
	for _, v := range vals {
		d, err := models.ParseDamageType(v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
