package service

import (
	"math"

	"go.uber.org/zap"

	"github.com/taxmitra/itr-engine/dto"
	"github.com/taxmitra/itr-engine/logger"
	"github.com/taxmitra/itr-engine/rules"
)

// TaxService computes tax liability from net taxable income. It is stateless;
// all rule data lives in the immutable rule table.
type TaxService struct{}

func NewTaxService() *TaxService {
	return &TaxService{}
}

// Compute applies progressive slab taxation, the 87A rebate and cess for the
// given assessment year and regime. An unknown (year, regime) pair degrades
// to the default rule with a warning instead of failing: a summary with
// current-year tax figures beats no summary for the uploading accountant.
func (s *TaxService) Compute(netIncome float64, age int, ay string, regime dto.Regime) dto.TaxComputationResult {
	rule, ok := rules.Lookup(ay, regime)
	if !ok {
		logger.Log.Warn("no tax rule for assessment year, using fallback",
			zap.String("assessment_year", ay),
			zap.String("regime", string(regime)),
			zap.String("fallback", rules.Default().AssessmentYear))
		rule = rules.Default()
	}

	slabs := rule.SlabsForAge(age)

	// Walk the slabs in ascending bound order; each rupee is taxed at
	// exactly one marginal rate.
	tax := 0.0
	prevLimit := 0.0
	for _, slab := range slabs {
		taxableInSlab := math.Min(slab.Upper(), netIncome) - prevLimit
		if taxableInSlab <= 0 {
			break
		}
		tax += taxableInSlab * slab.Rate
		prevLimit = slab.Upper()
	}

	rebate := 0.0
	if netIncome <= rule.Rebate.IncomeLimit {
		rebate = math.Min(tax, rule.Rebate.MaxRebate)
	}

	taxAfterRebate := math.Max(0, tax-rebate)
	cess := taxAfterRebate * rule.CessRate

	return dto.TaxComputationResult{
		TaxOnIncome:       taxAfterRebate,
		Rebate87A:         rebate,
		Cess:              cess,
		TotalTaxLiability: taxAfterRebate + cess,
	}
}
