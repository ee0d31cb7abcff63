package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/taxmitra/itr-engine/dto"
	"github.com/taxmitra/itr-engine/logger"
	"github.com/taxmitra/itr-engine/utils"
)

// Field defaults for absent document sections.
const (
	defaultIdentity       = "N/A"
	defaultFilingStatus   = "Filed"
	defaultAssessmentYear = "2024-25"
)

// ITRService turns an uploaded return into the canonical ClientSummary.
type ITRService struct {
	taxService   *TaxService
	pdfProcessor PDFProcessor
}

func NewITRService(taxService *TaxService, pdfProcessor PDFProcessor) *ITRService {
	return &ITRService{
		taxService:   taxService,
		pdfProcessor: pdfProcessor,
	}
}

// NormalizeJSON decodes a raw ITR JSON upload and normalizes it. Only input
// that cannot be decoded at all is an error; missing sections fall back to
// the documented defaults.
func (s *ITRService) NormalizeJSON(raw []byte) (*dto.ClientSummary, error) {
	var doc dto.ITRDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrMalformedDocument, err)
	}
	return s.Normalize(&doc), nil
}

// NormalizePDF extracts the text layer of an acknowledgment PDF, recovers the
// fields it carries and routes them through the same normalizer.
func (s *ITRService) NormalizePDF(raw []byte) (*dto.ClientSummary, error) {
	text, err := s.pdfProcessor.ExtractText(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrMalformedDocument, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: PDF has no extractable text", dto.ErrMalformedDocument)
	}
	return s.Normalize(utils.ParseAcknowledgment(text)), nil
}

// Normalize assembles the summary record. Output is identical for identical
// input apart from the UploadedAt timestamp.
func (s *ITRService) Normalize(doc *dto.ITRDocument) *dto.ClientSummary {
	form := doc.ITRForm
	if form == nil {
		form = &dto.ITRFormSection{}
	}
	gen := doc.PartAGen1
	if gen == nil {
		gen = &dto.PartAGen1Section{}
	}
	filing := doc.FilingStatus
	if filing == nil {
		filing = &dto.FilingStatusSection{}
	}
	tti := doc.PartBTTI
	if tti == nil {
		tti = &dto.PartBTTISection{}
	}
	totalIncome := doc.PartATotalIncome
	if totalIncome == nil {
		totalIncome = &dto.TotalIncomeSection{}
	}
	dedSection := totalIncome.Deductions
	if dedSection == nil {
		dedSection = &dto.DeductionsSection{}
	}
	cg := doc.ScheduleCG
	if cg == nil {
		cg = &dto.ScheduleCGSection{}
	}
	paidSection := doc.TaxPaid
	if paidSection == nil {
		paidSection = &dto.TaxPaidSection{}
	}

	age := utils.CalculateAge(gen.DOB, time.Now())

	regime := dto.RegimeOld
	if tti.IsOptingForNewTaxRegime == "Y" {
		regime = dto.RegimeNew
	}

	income := dto.IncomeDetails{
		Salary:                totalIncome.Salaries,
		HouseProperty:         totalIncome.IncomeFromHP,
		BusinessIncome:        totalIncome.IncomeFromBP,
		CapitalGainsShortTerm: cg.TotalSTCG,
		CapitalGainsLongTerm:  cg.TotalLTCG,
		OtherSources:          totalIncome.IncomeFromOS,
		// Taken as filed, not re-summed from the heads above.
		GrossTotalIncome: totalIncome.GrossTotalIncome,
	}

	deductions := dto.Deductions{
		Section80C:      dedSection.Section80C,
		Section80D:      dedSection.Section80D,
		Section80G:      dedSection.Section80G,
		TotalDeductions: totalIncome.TotalDeductions,
	}

	// May go negative; the slab walk yields zero tax for non-positive income.
	netTaxableIncome := income.GrossTotalIncome - deductions.TotalDeductions

	ay := stringOr(form.AssessmentYear, defaultAssessmentYear)

	computation := s.taxService.Compute(netTaxableIncome, age, ay, regime)

	taxPaid := sumTaxPaid(paidSection)

	settlement := dto.FinalSettlement{
		TaxLiability: computation.TotalTaxLiability,
		TaxPaid:      taxPaid.TotalTaxPaid,
		RefundDue:    max0(taxPaid.TotalTaxPaid - computation.TotalTaxLiability),
		TaxPayable:   max0(computation.TotalTaxLiability - taxPaid.TotalTaxPaid),
	}

	summary := &dto.ClientSummary{
		Name:             stringOr(gen.Name, defaultIdentity),
		PAN:              stringOr(gen.PAN, defaultIdentity),
		AssessmentYear:   ay,
		FilingStatus:     stringOr(filing.Status, defaultFilingStatus),
		Age:              age,
		TaxRegime:        regime,
		IncomeDetails:    income,
		Deductions:       deductions,
		NetTaxableIncome: netTaxableIncome,
		TaxComputation:   computation,
		TaxPaid:          taxPaid,
		FinalSettlement:  settlement,
		UploadedAt:       time.Now().UTC(),
	}

	logger.Log.Info("normalized ITR document",
		zap.String("pan", summary.PAN),
		zap.String("assessment_year", summary.AssessmentYear),
		zap.String("regime", string(summary.TaxRegime)),
		zap.Float64("net_taxable_income", summary.NetTaxableIncome),
		zap.Float64("total_tax", summary.TaxComputation.TotalTaxLiability))

	return summary
}

// sumTaxPaid re-sums every prepaid-tax component from its line items. Unlike
// gross total income, the document's own total is not trusted here.
func sumTaxPaid(section *dto.TaxPaidSection) dto.TaxPaid {
	paid := dto.TaxPaid{}
	for _, e := range section.TDSOnSalaries {
		paid.TDSSalary += e.TotalTDSSalary
	}
	for _, e := range section.TDSOnOthThanSals {
		paid.TDSOthers += e.TotalTDSonOthThanSals
	}
	for _, e := range section.AdvanceTax {
		paid.AdvanceTax += e.Amt
	}
	for _, e := range section.SelfAssessmentTax {
		paid.SelfAssessmentTax += e.Amt
	}
	paid.TotalTaxPaid = paid.TDSSalary + paid.TDSOthers + paid.AdvanceTax + paid.SelfAssessmentTax
	return paid
}

func stringOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
