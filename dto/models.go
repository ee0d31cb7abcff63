package dto

import "time"

type Regime string

const (
	RegimeOld Regime = "Old"
	RegimeNew Regime = "New"
)

// IncomeDetails holds the per-head income figures extracted from the return.
// GrossTotalIncome is taken from the document as filed, not re-summed.
type IncomeDetails struct {
	Salary                float64 `json:"salary"`
	HouseProperty         float64 `json:"house_property"`
	BusinessIncome        float64 `json:"business_income"`
	CapitalGainsShortTerm float64 `json:"capital_gains_short_term"`
	CapitalGainsLongTerm  float64 `json:"capital_gains_long_term"`
	OtherSources          float64 `json:"other_sources"`
	GrossTotalIncome      float64 `json:"gross_total_income"`
}

type Deductions struct {
	Section80C      float64 `json:"section_80c"`
	Section80D      float64 `json:"section_80d"`
	Section80G      float64 `json:"section_80g"`
	TotalDeductions float64 `json:"total_deductions"`
}

// TaxPaid aggregates the four prepaid-tax components. TotalTaxPaid is always
// the sum of the components, never a document-provided figure.
type TaxPaid struct {
	TDSSalary         float64 `json:"tds_salary"`
	TDSOthers         float64 `json:"tds_others"`
	AdvanceTax        float64 `json:"advance_tax"`
	SelfAssessmentTax float64 `json:"self_assessment_tax"`
	TotalTaxPaid      float64 `json:"total_tax_paid"`
}

// TaxComputationResult is the output of the tax engine. TaxOnIncome is the
// slab tax after the 87A rebate has been applied.
type TaxComputationResult struct {
	TaxOnIncome       float64 `json:"tax_on_income"`
	Rebate87A         float64 `json:"rebate_87a"`
	Cess              float64 `json:"cess"`
	TotalTaxLiability float64 `json:"total_tax_liability"`
}

// FinalSettlement nets tax liability against tax already paid. At most one of
// RefundDue and TaxPayable is non-zero.
type FinalSettlement struct {
	TaxLiability float64 `json:"tax_liability"`
	TaxPaid      float64 `json:"tax_paid"`
	RefundDue    float64 `json:"refund_due"`
	TaxPayable   float64 `json:"tax_payable"`
}

// ClientSummary is the canonical record produced from one uploaded return.
// It is immutable once built; storage and rendering belong to the callers.
type ClientSummary struct {
	ClientID         string               `json:"client_id"`
	Name             string               `json:"name"`
	PAN              string               `json:"pan"`
	AssessmentYear   string               `json:"assessment_year"`
	FilingStatus     string               `json:"filing_status"`
	Age              int                  `json:"age"`
	TaxRegime        Regime               `json:"tax_regime"`
	IncomeDetails    IncomeDetails        `json:"income_details"`
	Deductions       Deductions           `json:"deductions"`
	NetTaxableIncome float64              `json:"net_taxable_income"`
	TaxComputation   TaxComputationResult `json:"tax_computation"`
	TaxPaid          TaxPaid              `json:"tax_paid"`
	FinalSettlement  FinalSettlement      `json:"final_settlement"`
	UploadedAt       time.Time            `json:"uploaded_at"`
}
