package matchup

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wbcassist/wbcmatch/data"
	"github.com/wbcassist/wbcmatch/internal/models"
)

// Dimension names one comparison between two units. Every dimension yields a
// term in [-1, 1] with t(a, b) == -t(b, a).
type Dimension string

const (
	DimOffense    Dimension = "offense"     // damage past the opponent's armour, 0 if it cannot hit
	DimDamageType Dimension = "damage_type" // vulnerabilities and resilience against each other's damage
	DimCombat     Dimension = "combat"
	DimHits       Dimension = "hits"
	DimReach      Dimension = "reach" // can hit minus can be hit
	DimRange      Dimension = "range"
	DimResistance Dimension = "resistance"
	DimSpeed      Dimension = "speed"
)

// Dimensions are summed in this order so that a swapped pair produces the
// exact negation of the score.
var allDimensions = []Dimension{
	DimOffense, DimDamageType, DimCombat, DimHits, DimReach, DimRange, DimResistance, DimSpeed,
}

func AllDimensions() []Dimension {
	return append([]Dimension(nil), allDimensions...)
}

func knownDimension(d Dimension) bool {
	for _, k := range allDimensions {
		if k == d {
			return true
		}
	}
	return false
}

// Policy turns the per-dimension terms into a verdict: score is the weighted
// sum of terms; above Margin is favorable, below -Margin unfavorable.
type Policy struct {
	Weights map[Dimension]float64 `yaml:"weights" json:"weights"`
	Margin  float64               `yaml:"margin" json:"margin"`
}

func (p Policy) Validate() error {
	if math.IsNaN(p.Margin) || math.IsInf(p.Margin, 0) || p.Margin < 0 {
		return fmt.Errorf("margin must be a non-negative number, got %v", p.Margin)
	}
	if len(p.Weights) == 0 {
		return errors.New("policy has no weights")
	}
	for d, w := range p.Weights {
		if !knownDimension(d) {
			return fmt.Errorf("unknown dimension %q", d)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("weight for %s must be a non-negative number, got %v", d, w)
		}
	}
	return nil
}

// ParsePolicy decodes and validates a YAML policy document.
func ParsePolicy(b []byte) (Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Policy{}, fmt.Errorf("decode policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid policy: %w", err)
	}
	return p, nil
}

func LoadPolicy(path string) (Policy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy: %w", err)
	}
	return ParsePolicy(b)
}

// DefaultPolicy is the policy shipped with the dataset.
func DefaultPolicy() (Policy, error) {
	return ParsePolicy(data.DefaultPolicy)
}

// Score compares a against b. The breakdown holds the weighted contribution of
// every dimension the policy weights.
func (p Policy) Score(a, b models.Unit) (float64, map[string]float64) {
	terms := Terms(a, b)
	breakdown := make(map[string]float64, len(p.Weights))
	score := 0.0
	for _, d := range allDimensions {
		w, ok := p.Weights[d]
		if !ok {
			continue
		}
		c := w * terms[d]
		breakdown[string(d)] = c
		score += c
	}
	return score, breakdown
}

func (p Policy) Classify(score float64) models.Indicator {
	switch {
	case score > p.Margin:
		return models.Favorable
	case score < -p.Margin:
		return models.Unfavorable
	}
	return models.Neutral
}

// Terms computes the unweighted comparison of a against b for every dimension.
func Terms(a, b models.Unit) map[Dimension]float64 {
	aHits, bHits := a.CanHit(b), b.CanHit(a)
	return map[Dimension]float64{
		DimOffense:    rel(effectiveOffense(a, b, aHits), effectiveOffense(b, a, bHits)),
		DimDamageType: damageTypeTerm(a, b, aHits, bHits),
		DimCombat:     rel(a.Combat, b.Combat),
		DimHits:       rel(a.Hits, b.Hits),
		DimReach:      float64(b2i(aHits) - b2i(bHits)),
		DimRange:      rel(a.Range, b.Range),
		DimResistance: rel(a.Resistance, b.Resistance),
		DimSpeed:      rel(a.Speed, b.Speed),
	}
}

func effectiveOffense(attacker, target models.Unit, canHit bool) int {
	if !canHit {
		return 0
	}
	return max(attacker.Damage-target.Armour, 0)
}

func damageTypeTerm(a, b models.Unit, aHits, bHits bool) float64 {
	v := 0
	if aHits {
		if b.VulnerableTo(a.DamageType) {
			v++
		}
		if b.ResistsDamage(a.DamageType) {
			v--
		}
	}
	if bHits {
		if a.VulnerableTo(b.DamageType) {
			v--
		}
		if a.ResistsDamage(b.DamageType) {
			v++
		}
	}
	return float64(v) / 2
}

// rel is the difference of two non-negative stats relative to the larger one.
func rel(a, b int) float64 {
	m := max(a, b)
	if m == 0 {
		return 0
	}
	return float64(a-b) / float64(m)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
