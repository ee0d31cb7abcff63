// Package export renders stored summaries into the tabular formats the
// dashboard offers for download. Field ordering is a fixed contract shared by
// every format.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/taxmitra/itr-engine/dto"
)

// Headers is the fixed export column ordering.
var Headers = []string{
	"Name", "PAN", "Assessment Year", "Filing Status", "Tax Regime", "Age",
	"Gross Total Income", "Total Deductions", "Net Taxable Income",
	"Tax on Income", "87A Rebate", "Cess", "Total Tax Liability",
	"Total Tax Paid", "Refund Due", "Tax Payable",
}

// Row renders one summary in the Headers ordering.
func Row(c *dto.ClientSummary) []string {
	return []string{
		c.Name,
		c.PAN,
		c.AssessmentYear,
		c.FilingStatus,
		string(c.TaxRegime),
		strconv.Itoa(c.Age),
		FormatINR(c.IncomeDetails.GrossTotalIncome),
		FormatINR(c.Deductions.TotalDeductions),
		FormatINR(c.NetTaxableIncome),
		FormatINR(c.TaxComputation.TaxOnIncome),
		FormatINR(c.TaxComputation.Rebate87A),
		FormatINR(c.TaxComputation.Cess),
		FormatINR(c.TaxComputation.TotalTaxLiability),
		FormatINR(c.TaxPaid.TotalTaxPaid),
		FormatINR(c.FinalSettlement.RefundDue),
		FormatINR(c.FinalSettlement.TaxPayable),
	}
}

// WriteCSV writes all summaries as CSV, header row first.
func WriteCSV(w io.Writer, clients []*dto.ClientSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, c := range clients {
		if err := cw.Write(Row(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
