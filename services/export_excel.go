package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const summarySheetName = "Summary"

type excelStyles struct {
	title        int
	subtitle     int
	header       int
	row          int
	money        int
	summaryLabel int
	summaryValue int
}

// GenerateExcel creates an estimate workbook from the given ExportData: a
// Summary worksheet followed by one worksheet per estimate sheet. It returns
// the file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeSummarySheet(f, styles, data); err != nil {
		return nil, err
	}

	used := map[string]bool{summarySheetName: true}
	for _, es := range data.Sheets {
		name := worksheetName(es.Name, used)
		used[name] = true
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", name, err)
		}
		if err := writeLineSheet(f, styles, name, es); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	// Title style: bold, 16pt.
	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	s.row, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create row style: %w", err)
	}

	moneyFmt := `"$"#,##0.00`
	s.money, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return s, fmt.Errorf("create money style: %w", err)
	}

	s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}

	s.summaryValue, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}
	return s, nil
}

// writeSummarySheet lays out the internal summary: per-sheet pre-markup
// totals, then the project roll-up down to the grand total.
func writeSummarySheet(f *excelize.File, st excelStyles, data ExportData) error {
	sheet := summarySheetName
	columns := []string{"A", "B", "C", "D"}
	widths := []float64{32, 16, 16, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheet, "A1", "D1", st.title)

	f.SetCellValue(sheet, "A2", "Client: "+sanitizeExcelCell(data.ClientName))
	f.SetCellValue(sheet, "A3", "Address: "+sanitizeExcelCell(data.ProjectAddress))
	f.SetCellValue(sheet, "A4", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheet, "A2", "A4", st.subtitle)

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{"Service", "Materials", "Labor", "Total (pre-markup)"}
	for i, h := range headers {
		f.SetCellValue(sheet, columns[i]+"6", h)
	}
	f.SetCellStyle(sheet, "A6", "D6", st.header)

	row := 7
	for _, es := range data.Sheets {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(es.Name))
		f.SetCellValue(sheet, "B"+r, es.Totals.Materials)
		f.SetCellValue(sheet, "C"+r, es.Totals.Labor)
		f.SetCellValue(sheet, "D"+r, es.Totals.Total)
		f.SetCellStyle(sheet, "A"+r, "A"+r, st.row)
		f.SetCellStyle(sheet, "B"+r, "D"+r, st.money)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	t := data.Totals
	summary := []struct {
		label string
		value float64
	}{
		{"Subtotal:", t.Subtotal},
		{fmt.Sprintf("Markup (%s%%):", FormatNumber(data.MarkupPercent)), t.MarkupAmount},
		{"Travel / fees:", t.TravelAmount},
		{"Disposal fee:", t.DisposalAmount},
		{"Discount:", -t.DiscountAmount},
		{fmt.Sprintf("Tax (%s%%):", FormatNumber(data.TaxPercent)), t.TaxAmount},
		{"Grand Total:", t.GrandTotal},
	}
	for _, s := range summary {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "C"+r, s.label)
		f.SetCellStyle(sheet, "C"+r, "C"+r, st.summaryLabel)
		f.SetCellValue(sheet, "D"+r, s.value)
		f.SetCellStyle(sheet, "D"+r, "D"+r, st.summaryValue)
		row++
	}
	return nil
}

// writeLineSheet lists every line of one estimate sheet with its computed cost.
func writeLineSheet(f *excelize.File, st excelStyles, name string, es ExportSheet) error {
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	lastCol := columns[len(columns)-1]

	widths := []float64{34, 8, 10, 12, 12, 14, 30, 14, 14, 16}
	for i, col := range columns {
		if err := f.SetColWidth(name, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := f.MergeCell(name, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(name, "A1", sanitizeExcelCell(es.Name))
	f.SetCellStyle(name, "A1", lastCol+"1", st.title)

	headers := []string{"Description", "Unit", "Qty", "Mat $/unit", "Hours/qty", "Rate", "Notes", "Materials", "Labor", "Line total"}
	for i, h := range headers {
		f.SetCellValue(name, columns[i]+"3", h)
	}
	f.SetCellStyle(name, "A3", lastCol+"3", st.header)

	row := 4
	for _, r := range es.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(name, "A"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(name, "B"+rowStr, sanitizeExcelCell(r.Unit))
		f.SetCellValue(name, "C"+rowStr, r.Qty)
		f.SetCellValue(name, "D"+rowStr, r.MatUnit)
		f.SetCellValue(name, "E"+rowStr, r.HoursPerQty)
		f.SetCellValue(name, "F"+rowStr, r.Rate)
		f.SetCellValue(name, "G"+rowStr, sanitizeExcelCell(r.Notes))
		f.SetCellValue(name, "H"+rowStr, r.Materials)
		f.SetCellValue(name, "I"+rowStr, r.Labor)
		f.SetCellValue(name, "J"+rowStr, r.Total)
		f.SetCellStyle(name, "A"+rowStr, "G"+rowStr, st.row)
		f.SetCellStyle(name, "H"+rowStr, "J"+rowStr, st.money)
		row++
	}

	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(name, "G"+totalRow, "Sheet total:")
	f.SetCellStyle(name, "G"+totalRow, "G"+totalRow, st.summaryLabel)
	f.SetCellValue(name, "H"+totalRow, es.Totals.Materials)
	f.SetCellValue(name, "I"+totalRow, es.Totals.Labor)
	f.SetCellValue(name, "J"+totalRow, es.Totals.Total)
	f.SetCellStyle(name, "H"+totalRow, "J"+totalRow, st.summaryValue)
	return nil
}

// worksheetName turns an estimate sheet name into a valid, unused worksheet
// name: no []:*?/\ characters, at most 31 characters.
func worksheetName(name string, used map[string]bool) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = "Sheet"
	}
	if len([]rune(name)) > 31 {
		name = string([]rune(name)[:31])
	}

	candidate := name
	for n := 2; used[candidate]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := []rune(name)
		if len(base)+len(suffix) > 31 {
			base = base[:31-len(suffix)]
		}
		candidate = string(base) + suffix
	}
	return candidate
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
