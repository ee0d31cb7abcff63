package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/taxmitra/itr-engine/dto"
)

const sheetName = "ITR Summary"

// WriteXLSX writes all summaries as a single-sheet workbook with the same
// column ordering as the CSV export.
func WriteXLSX(w io.Writer, clients []*dto.ClientSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, c := range clients {
		for col, value := range Row(c) {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
