// Package rules holds the versioned tax rule table. The table is loaded once
// from an embedded YAML source and never mutated afterwards; lookups return
// copies of immutable entries.
package rules

import (
	_ "embed"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/taxmitra/itr-engine/dto"
)

//go:embed rules.yaml
var rulesYAML []byte

// Slab is one contiguous income band taxed at a fixed marginal rate.
// A Limit of 0 means the band is unbounded.
type Slab struct {
	Limit float64 `yaml:"limit"`
	Rate  float64 `yaml:"rate"`
}

// Upper returns the slab's upper bound, +Inf for the unbounded band.
func (s Slab) Upper() float64 {
	if s.Limit <= 0 {
		return math.Inf(1)
	}
	return s.Limit
}

// Rebate87A is the Section 87A waiver: full or partial relief for taxpayers
// whose net income does not exceed IncomeLimit.
type Rebate87A struct {
	IncomeLimit float64 `yaml:"income_limit"`
	MaxRebate   float64 `yaml:"max_rebate"`
}

// TaxYearRule is one (assessment year, regime) entry of the rule table.
type TaxYearRule struct {
	AssessmentYear   string     `yaml:"assessment_year"`
	Regime           dto.Regime `yaml:"regime"`
	Slabs            []Slab     `yaml:"slabs"`
	SeniorSlabs      []Slab     `yaml:"senior_slabs"`
	SuperSeniorSlabs []Slab     `yaml:"super_senior_slabs"`
	CessRate         float64    `yaml:"cess_rate"`
	Rebate           Rebate87A  `yaml:"rebate_87a"`
}

// SlabsForAge selects the slab set for a taxpayer's age. The new regime has
// a single schedule regardless of age; the old regime switches to senior
// slabs at 60 and super-senior slabs at 80 where those bands exist.
func (r TaxYearRule) SlabsForAge(age int) []Slab {
	if r.Regime == dto.RegimeOld {
		if age >= 80 && len(r.SuperSeniorSlabs) > 0 {
			return r.SuperSeniorSlabs
		}
		if age >= 60 && len(r.SeniorSlabs) > 0 {
			return r.SeniorSlabs
		}
	}
	return r.Slabs
}

func (r TaxYearRule) validate() error {
	if r.AssessmentYear == "" {
		return fmt.Errorf("rule missing assessment year")
	}
	if r.Regime != dto.RegimeOld && r.Regime != dto.RegimeNew {
		return fmt.Errorf("rule %s: unknown regime %q", r.AssessmentYear, r.Regime)
	}
	if r.Regime == dto.RegimeNew && (len(r.SeniorSlabs) > 0 || len(r.SuperSeniorSlabs) > 0) {
		return fmt.Errorf("rule %s-new: new regime must not carry age-banded slabs", r.AssessmentYear)
	}
	if r.CessRate < 0 || r.CessRate > 1 {
		return fmt.Errorf("rule %s: cess rate %v out of range", r.AssessmentYear, r.CessRate)
	}
	if r.Rebate.IncomeLimit < 0 || r.Rebate.MaxRebate < 0 {
		return fmt.Errorf("rule %s: negative rebate parameters", r.AssessmentYear)
	}
	for name, slabs := range map[string][]Slab{
		"slabs":              r.Slabs,
		"senior_slabs":       r.SeniorSlabs,
		"super_senior_slabs": r.SuperSeniorSlabs,
	} {
		if name == "slabs" && len(slabs) == 0 {
			return fmt.Errorf("rule %s: empty slab set", r.AssessmentYear)
		}
		if err := validateSlabs(slabs); err != nil {
			return fmt.Errorf("rule %s %s: %w", r.AssessmentYear, name, err)
		}
	}
	return nil
}

func validateSlabs(slabs []Slab) error {
	prev := 0.0
	for i, s := range slabs {
		if s.Rate < 0 || s.Rate > 1 {
			return fmt.Errorf("slab %d: rate %v out of range", i, s.Rate)
		}
		if s.Limit <= 0 {
			if i != len(slabs)-1 {
				return fmt.Errorf("slab %d: unbounded slab must come last", i)
			}
			continue
		}
		if s.Limit <= prev {
			return fmt.Errorf("slab %d: bound %v not increasing", i, s.Limit)
		}
		prev = s.Limit
	}
	if n := len(slabs); n > 0 && slabs[n-1].Limit > 0 {
		return fmt.Errorf("last slab must be unbounded")
	}
	return nil
}

// defaultKey names the fallback rule used when a lookup misses: the most
// recent old-regime entry.
const defaultKey = "2024-25"

var table map[string]TaxYearRule

func init() {
	t, err := load(rulesYAML)
	if err != nil {
		panic(fmt.Sprintf("rules: %v", err))
	}
	table = t
}

func load(src []byte) (map[string]TaxYearRule, error) {
	var doc struct {
		Rules []TaxYearRule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("parsing rule table: %w", err)
	}

	t := make(map[string]TaxYearRule, len(doc.Rules))
	for _, r := range doc.Rules {
		if err := r.validate(); err != nil {
			return nil, err
		}
		key := Key(r.AssessmentYear, r.Regime)
		if _, dup := t[key]; dup {
			return nil, fmt.Errorf("duplicate rule key %s", key)
		}
		t[key] = r
	}
	if _, ok := t[defaultKey]; !ok {
		return nil, fmt.Errorf("fallback rule %s missing from table", defaultKey)
	}
	return t, nil
}

// Key maps (assessment year, regime) to the table's disjoint key scheme:
// the bare year for the old regime, year + "-new" for the new one.
func Key(ay string, regime dto.Regime) string {
	if regime == dto.RegimeNew {
		return ay + "-new"
	}
	return ay
}

// Lookup resolves the rule for an assessment year and regime. The second
// return is false when no entry exists; callers decide the fallback policy.
func Lookup(ay string, regime dto.Regime) (TaxYearRule, bool) {
	r, ok := table[Key(ay, regime)]
	return r, ok
}

// Default returns the fallback rule applied when a lookup misses.
func Default() TaxYearRule {
	return table[defaultKey]
}

// List reports the table's entries, sorted by key, for the rules endpoint.
func List() []dto.RuleInfo {
	infos := make([]dto.RuleInfo, 0, len(table))
	for key, r := range table {
		infos = append(infos, dto.RuleInfo{
			Key:            key,
			AssessmentYear: r.AssessmentYear,
			Regime:         r.Regime,
			SlabCount:      len(r.Slabs),
			HasSeniorSlabs: len(r.SeniorSlabs) > 0,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}
