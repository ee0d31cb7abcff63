package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxmitra/itr-engine/dto"
)

func TestLookupKnownYears(t *testing.T) {
	old, ok := Lookup("2024-25", dto.RegimeOld)
	require.True(t, ok)
	assert.Equal(t, dto.RegimeOld, old.Regime)
	assert.Equal(t, 0.04, old.CessRate)
	assert.Equal(t, 500000.0, old.Rebate.IncomeLimit)
	assert.NotEmpty(t, old.SeniorSlabs)
	assert.NotEmpty(t, old.SuperSeniorSlabs)

	new25, ok := Lookup("2024-25", dto.RegimeNew)
	require.True(t, ok)
	assert.Equal(t, dto.RegimeNew, new25.Regime)
	assert.Equal(t, 700000.0, new25.Rebate.IncomeLimit)
	assert.Equal(t, 25000.0, new25.Rebate.MaxRebate)
	assert.Empty(t, new25.SeniorSlabs)
	assert.Empty(t, new25.SuperSeniorSlabs)

	_, ok = Lookup("2023-24", dto.RegimeOld)
	assert.True(t, ok)
}

func TestLookupMiss(t *testing.T) {
	_, ok := Lookup("1999-00", dto.RegimeOld)
	assert.False(t, ok)

	_, ok = Lookup("2023-24", dto.RegimeNew)
	assert.False(t, ok)
}

func TestDefaultRule(t *testing.T) {
	def := Default()
	assert.Equal(t, "2024-25", def.AssessmentYear)
	assert.Equal(t, dto.RegimeOld, def.Regime)
}

func TestKeyScheme(t *testing.T) {
	assert.Equal(t, "2024-25", Key("2024-25", dto.RegimeOld))
	assert.Equal(t, "2024-25-new", Key("2024-25", dto.RegimeNew))
}

func TestSlabsForAge(t *testing.T) {
	old, _ := Lookup("2024-25", dto.RegimeOld)

	assert.Equal(t, 250000.0, old.SlabsForAge(45)[0].Limit)
	assert.Equal(t, 300000.0, old.SlabsForAge(60)[0].Limit)
	assert.Equal(t, 300000.0, old.SlabsForAge(79)[0].Limit)
	assert.Equal(t, 500000.0, old.SlabsForAge(80)[0].Limit)

	// New regime has a single schedule regardless of age.
	new25, _ := Lookup("2024-25", dto.RegimeNew)
	assert.Equal(t, new25.Slabs, new25.SlabsForAge(25))
	assert.Equal(t, new25.Slabs, new25.SlabsForAge(85))
}

func TestSlabBoundsAscendingAndTerminated(t *testing.T) {
	for _, info := range List() {
		rule, ok := Lookup(info.AssessmentYear, info.Regime)
		require.True(t, ok)
		for _, slabs := range [][]Slab{rule.Slabs, rule.SeniorSlabs, rule.SuperSeniorSlabs} {
			if len(slabs) == 0 {
				continue
			}
			prev := 0.0
			for _, s := range slabs[:len(slabs)-1] {
				assert.Greater(t, s.Limit, prev, "bounds must strictly increase")
				prev = s.Limit
			}
			assert.LessOrEqual(t, slabs[len(slabs)-1].Limit, 0.0, "last slab must be unbounded")
		}
	}
}

func TestLoadRejectsBadSlabOrder(t *testing.T) {
	src := []byte(`
rules:
  - assessment_year: "2024-25"
    regime: Old
    slabs:
      - { limit: 500000, rate: 0.05 }
      - { limit: 250000, rate: 0 }
      - { limit: 0, rate: 0.30 }
    cess_rate: 0.04
    rebate_87a: { income_limit: 500000, max_rebate: 12500 }
`)
	_, err := load(src)
	assert.Error(t, err)
}

func TestLoadRejectsSeniorSlabsInNewRegime(t *testing.T) {
	src := []byte(`
rules:
  - assessment_year: "2024-25"
    regime: New
    slabs:
      - { limit: 300000, rate: 0 }
      - { limit: 0, rate: 0.30 }
    senior_slabs:
      - { limit: 300000, rate: 0 }
      - { limit: 0, rate: 0.30 }
    cess_rate: 0.04
    rebate_87a: { income_limit: 700000, max_rebate: 25000 }
`)
	_, err := load(src)
	assert.Error(t, err)
}
