package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taxmitra/itr-engine/dto"
)

func TestComputeOldRegimeAboveRebateLimit(t *testing.T) {
	service := NewTaxService()

	// 0-250k at 0%, 250k-500k at 5% = 12,500, 500k-600k at 20% = 20,000.
	result := service.Compute(600000, 45, "2024-25", dto.RegimeOld)

	assert.InDelta(t, 32500, result.TaxOnIncome, 0.01)
	assert.InDelta(t, 0, result.Rebate87A, 0.01)
	assert.InDelta(t, 1300, result.Cess, 0.01)
	assert.InDelta(t, 33800, result.TotalTaxLiability, 0.01)
}

func TestComputeOldRegimeFullRebate(t *testing.T) {
	service := NewTaxService()

	// Tax 7,500; income within the 87A limit so the rebate wipes it out.
	result := service.Compute(400000, 45, "2024-25", dto.RegimeOld)

	assert.InDelta(t, 7500, result.Rebate87A, 0.01)
	assert.InDelta(t, 0, result.TaxOnIncome, 0.01)
	assert.InDelta(t, 0, result.Cess, 0.01)
	assert.InDelta(t, 0, result.TotalTaxLiability, 0.01)
}

func TestComputeSeniorSlabsAt65(t *testing.T) {
	service := NewTaxService()

	general := service.Compute(1200000, 45, "2024-25", dto.RegimeOld)
	senior := service.Compute(1200000, 65, "2024-25", dto.RegimeOld)

	// Senior exemption limit is 300k instead of 250k: 2,500 less slab tax.
	assert.InDelta(t, 172500, general.TaxOnIncome, 0.01)
	assert.InDelta(t, 170000, senior.TaxOnIncome, 0.01)
	assert.InDelta(t, 176800, senior.TotalTaxLiability, 0.01)
}

func TestComputeSuperSeniorSlabsAt85(t *testing.T) {
	service := NewTaxService()

	senior := service.Compute(1200000, 79, "2024-25", dto.RegimeOld)
	superSenior := service.Compute(1200000, 80, "2024-25", dto.RegimeOld)

	assert.Less(t, superSenior.TaxOnIncome, senior.TaxOnIncome)
	// 500k exempt, 500k at 20%, 200k at 30%.
	assert.InDelta(t, 160000, superSenior.TaxOnIncome, 0.01)
}

func TestComputeNewRegimeIgnoresAge(t *testing.T) {
	service := NewTaxService()

	young := service.Compute(1000000, 25, "2024-25", dto.RegimeNew)
	old := service.Compute(1000000, 70, "2024-25", dto.RegimeNew)

	assert.Equal(t, young, old)
	// 300k at 0%, 300k at 5%, 300k at 10%, 100k at 15% = 60,000.
	assert.InDelta(t, 60000, young.TaxOnIncome, 0.01)
	assert.InDelta(t, 62400, young.TotalTaxLiability, 0.01)
}

func TestComputeNewRegimeRebate(t *testing.T) {
	service := NewTaxService()

	// Tax 25,000 at exactly the 700k limit; rebate covers it fully.
	result := service.Compute(700000, 30, "2024-25", dto.RegimeNew)

	assert.InDelta(t, 25000, result.Rebate87A, 0.01)
	assert.InDelta(t, 0, result.TotalTaxLiability, 0.01)
}

func TestComputeUnknownYearFallsBack(t *testing.T) {
	service := NewTaxService()

	fallback := service.Compute(600000, 45, "1999-00", dto.RegimeOld)
	current := service.Compute(600000, 45, "2024-25", dto.RegimeOld)

	assert.Equal(t, current, fallback)
}

func TestComputeNonPositiveIncome(t *testing.T) {
	service := NewTaxService()

	for _, income := range []float64{0, -1, -500000} {
		result := service.Compute(income, 45, "2024-25", dto.RegimeOld)
		assert.Zero(t, result.TotalTaxLiability)
		assert.Zero(t, result.TaxOnIncome)
		assert.Zero(t, result.Cess)
	}
}

func TestComputeMonotonicInIncome(t *testing.T) {
	service := NewTaxService()

	incomes := []float64{100000, 400000, 500001, 600000, 900000, 1500000, 5000000}
	prev := -1.0
	for _, income := range incomes {
		result := service.Compute(income, 45, "2024-25", dto.RegimeOld)
		assert.GreaterOrEqual(t, result.TotalTaxLiability, prev,
			"total tax must not decrease with income")
		prev = result.TotalTaxLiability
	}
}

func TestComputeCessIsExactFractionOfTax(t *testing.T) {
	service := NewTaxService()

	result := service.Compute(2350000, 45, "2024-25", dto.RegimeOld)
	assert.InDelta(t, result.TaxOnIncome*0.04, result.Cess, 1e-9)
	assert.InDelta(t, result.TaxOnIncome+result.Cess, result.TotalTaxLiability, 1e-9)
}
