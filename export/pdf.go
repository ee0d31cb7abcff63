package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/taxmitra/itr-engine/dto"
)

// Standard PDF fonts are Latin-1 only, so amounts are labelled "Rs." rather
// than the rupee sign.
func moneyPDF(amount float64) string {
	return "Rs. " + FormatINR(amount)
}

// WritePDF renders the per-client summary report: a header block followed by
// the income, deduction, tax computation and settlement tables.
func WritePDF(w io.Writer, c *dto.ClientSummary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "ITR Summary Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Client Name: %s", c.Name),
		fmt.Sprintf("PAN: %s", c.PAN),
		fmt.Sprintf("Assessment Year: %s", c.AssessmentYear),
		fmt.Sprintf("Filing Status: %s", c.FilingStatus),
		fmt.Sprintf("Tax Regime: %s", c.TaxRegime),
		fmt.Sprintf("Age: %d", c.Age),
	} {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	writeTable(pdf, "Income Details", "Income Head", [][2]string{
		{"Salary", moneyPDF(c.IncomeDetails.Salary)},
		{"House Property", moneyPDF(c.IncomeDetails.HouseProperty)},
		{"Business Income", moneyPDF(c.IncomeDetails.BusinessIncome)},
		{"Capital Gains (ST)", moneyPDF(c.IncomeDetails.CapitalGainsShortTerm)},
		{"Capital Gains (LT)", moneyPDF(c.IncomeDetails.CapitalGainsLongTerm)},
		{"Other Sources", moneyPDF(c.IncomeDetails.OtherSources)},
		{"Gross Total Income", moneyPDF(c.IncomeDetails.GrossTotalIncome)},
	})

	writeTable(pdf, "Deductions", "Section", [][2]string{
		{"80C", moneyPDF(c.Deductions.Section80C)},
		{"80D", moneyPDF(c.Deductions.Section80D)},
		{"80G", moneyPDF(c.Deductions.Section80G)},
		{"Total Deductions", moneyPDF(c.Deductions.TotalDeductions)},
	})

	writeTable(pdf, "Tax Computation & Payment", "Description", [][2]string{
		{"Net Taxable Income", moneyPDF(c.NetTaxableIncome)},
		{"Tax on Income", moneyPDF(c.TaxComputation.TaxOnIncome)},
		{"87A Rebate", moneyPDF(c.TaxComputation.Rebate87A)},
		{"Cess", moneyPDF(c.TaxComputation.Cess)},
		{"Total Tax Liability", moneyPDF(c.TaxComputation.TotalTaxLiability)},
		{"TDS (Salary)", moneyPDF(c.TaxPaid.TDSSalary)},
		{"TDS (Others)", moneyPDF(c.TaxPaid.TDSOthers)},
		{"Advance Tax", moneyPDF(c.TaxPaid.AdvanceTax)},
		{"Self-Assessment Tax", moneyPDF(c.TaxPaid.SelfAssessmentTax)},
		{"Total Tax Paid", moneyPDF(c.TaxPaid.TotalTaxPaid)},
	})

	writeTable(pdf, "Final Settlement", "Description", [][2]string{
		{"Tax Liability", moneyPDF(c.FinalSettlement.TaxLiability)},
		{"Total Tax Paid", moneyPDF(c.FinalSettlement.TaxPaid)},
		{"Refund Due", moneyPDF(c.FinalSettlement.RefundDue)},
		{"Tax Payable", moneyPDF(c.FinalSettlement.TaxPayable)},
	})

	return pdf.Output(w)
}

func writeTable(pdf *fpdf.Fpdf, title, labelHeader string, rows [][2]string) {
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(90, 7, labelHeader, "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(90, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "R", false, 0, "")
	}
}
