package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/taxmitra/itr-engine/dto"
)

var (
	panRegex = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	ayRegex  = regexp.MustCompile(`(?i)assessment\s*year[\s:]*((?:19|20)\d{2}-\d{2})`)
	dobRegex = regexp.MustCompile(`(0[1-9]|[12][0-9]|3[01])[/-](0[1-9]|1[0-2])[/-][0-9]{4}`)

	nameRegex = regexp.MustCompile(`(?i)name[\s:]+([A-Za-z][A-Za-z .]+)`)
	formRegex = regexp.MustCompile(`(?i)\b(ITR[- ]?[1-7])\b`)
)

// ParseAcknowledgment extracts the fields the normalizer needs from the text
// of an ITR-V / acknowledgment PDF. Anything it cannot find is left at the
// zero value and picks up the normalizer's defaults.
func ParseAcknowledgment(text string) *dto.ITRDocument {
	doc := &dto.ITRDocument{
		ITRForm:   &dto.ITRFormSection{},
		PartAGen1: &dto.PartAGen1Section{},
		PartBTTI:  &dto.PartBTTISection{},
		PartATotalIncome: &dto.TotalIncomeSection{
			Deductions: &dto.DeductionsSection{},
		},
	}

	doc.PartAGen1.PAN = panRegex.FindString(strings.ToUpper(text))
	doc.PartAGen1.DOB = dobRegex.FindString(text)

	if m := nameRegex.FindStringSubmatch(text); len(m) > 1 {
		doc.PartAGen1.Name = strings.TrimSpace(m[1])
	}
	if m := ayRegex.FindStringSubmatch(text); len(m) > 1 {
		doc.ITRForm.AssessmentYear = m[1]
	}
	if m := formRegex.FindStringSubmatch(text); len(m) > 1 {
		doc.ITRForm.FormName = strings.ReplaceAll(strings.ToUpper(m[1]), " ", "-")
	}

	// Section 115BAC is the new-regime option; acknowledgments print it as
	// "Opted for New Tax Regime u/s 115BAC? Yes".
	if regexp.MustCompile(`(?i)115BAC[^\n]*\byes\b`).MatchString(text) ||
		regexp.MustCompile(`(?i)new\s*tax\s*regime[^\n]*\byes\b`).MatchString(text) {
		doc.PartBTTI.IsOptingForNewTaxRegime = "Y"
	}

	doc.PartATotalIncome.GrossTotalIncome = extractLabeledAmount(text,
		`gross\s*total\s*income`)
	doc.PartATotalIncome.TotalDeductions = extractLabeledAmount(text,
		`total\s*deductions?`, `deductions?\s*under\s*chapter\s*VI-?A`)
	doc.PartATotalIncome.Salaries = extractLabeledAmount(text,
		`income\s*from\s*salar(?:y|ies)`, `salar(?:y|ies)`)
	doc.PartATotalIncome.IncomeFromHP = extractLabeledAmount(text,
		`income\s*from\s*house\s*property`)
	doc.PartATotalIncome.IncomeFromOS = extractLabeledAmount(text,
		`income\s*from\s*other\s*sources`)

	// Acknowledgments carry a single consolidated taxes-paid figure; feed it
	// through as one TDS line so the normalizer's re-summing still applies.
	if paid := extractLabeledAmount(text, `total\s*taxes?\s*paid`, `taxes?\s*paid`); paid > 0 {
		doc.TaxPaid = &dto.TaxPaidSection{
			TDSOnSalaries: []dto.TDSSalaryEntry{{TotalTDSSalary: paid}},
		}
	}

	return doc
}

// extractLabeledAmount tries each label pattern in priority order and returns
// the first amount found after it, 0 when nothing matches.
func extractLabeledAmount(text string, labels ...string) float64 {
	for _, label := range labels {
		re := regexp.MustCompile(`(?i)` + label + `[\s:]*(?:Rs\.?|INR|₹)?\s*([0-9][0-9,]*\.?\d*)`)
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			amountStr := strings.ReplaceAll(m[1], ",", "")
			if amount, err := strconv.ParseFloat(amountStr, 64); err == nil {
				return amount
			}
		}
	}
	return 0
}
