package services

import "time"

// ExportRow represents a single line in the estimate export.
type ExportRow struct {
	Description string
	Unit        string
	Qty         float64
	MatUnit     float64
	HoursPerQty float64
	Rate        string // rate descriptor, see RateDescriptor
	Notes       string
	Materials   float64
	Labor       float64
	Total       float64 // pre-markup
}

// ExportSheet groups the rows of one sheet with its totals.
type ExportSheet struct {
	Name   string
	Rows   []ExportRow
	Totals SheetTotals
}

// ExportData holds all data needed for the workbook export.
type ExportData struct {
	Title          string
	ClientName     string
	ProjectAddress string
	CreatedDate    string
	Sheets         []ExportSheet
	Totals         ProjectTotals
	MarkupPercent  float64
	TaxPercent     float64
}

// BuildExportData computes every line and sheet of the project into export rows.
func BuildExportData(p Project, title string, created time.Time) ExportData {
	totals := CalcProject(p)
	data := ExportData{
		Title:          title,
		ClientName:     p.Inputs.ClientName,
		ProjectAddress: p.Inputs.ProjectAddress,
		CreatedDate:    created.Format("02 Jan 2006"),
		Totals:         totals,
		MarkupPercent:  finite(p.Inputs.Markup),
		TaxPercent:     finite(p.Inputs.Tax),
	}

	for i, sheet := range p.Sheets {
		es := ExportSheet{Name: sheet.Name, Totals: totals.Sheets[i]}
		for _, line := range sheet.Lines {
			c := CalcLine(line, sheet, p.Inputs)
			es.Rows = append(es.Rows, ExportRow{
				Description: line.Desc,
				Unit:        line.Unit,
				Qty:         NormalizeLine(line).Qty,
				MatUnit:     line.MatUnit,
				HoursPerQty: line.HoursPerQty,
				Rate:        RateDescriptor(line, sheet, p.Inputs),
				Notes:       line.Notes,
				Materials:   c.Materials,
				Labor:       c.Labor,
				Total:       c.Total,
			})
		}
		data.Sheets = append(data.Sheets, es)
	}
	return data
}
