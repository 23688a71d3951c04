package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

var csvHeader = []string{
	"Sheet", "Description", "Unit", "Qty", "MatUnit", "Hours/Qty",
	"Rate/Type", "Notes", "Materials", "Labor", "LineTotalPreFactor",
}

// RateDescriptor describes the rate a line bills at: "crew@<sheet rate>" for
// crew lines, "custom@<rate>" for custom lines (empty rate when unset).
func RateDescriptor(line Line, sheet Sheet, inputs ProjectInputs) string {
	if line.RateType == RateTypeCrew {
		return "crew@" + FormatNumber(EffectiveSheetRate(sheet, inputs))
	}
	if line.Rate == nil || finite(*line.Rate) == 0 {
		return "custom@"
	}
	return "custom@" + FormatNumber(*line.Rate)
}

// ExportCSV writes one row per line of every sheet, with materials, labor and
// the pre-markup line total fixed to 2 decimals.
func ExportCSV(p Project) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}

	for _, sheet := range p.Sheets {
		for _, line := range sheet.Lines {
			c := CalcLine(line, sheet, p.Inputs)
			row := []string{
				sheet.Name,
				line.Desc,
				line.Unit,
				FormatNumber(NormalizeLine(line).Qty),
				FormatNumber(line.MatUnit),
				FormatNumber(line.HoursPerQty),
				RateDescriptor(line, sheet, p.Inputs),
				line.Notes,
				fixed2(c.Materials),
				fixed2(c.Labor),
				fixed2(c.Total),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("csv: write row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}
