// Package services provides the estimate pricing engine, its document
// codec and the CSV, Excel and PDF exports built on top of it.
package services

import "strings"

// LineTotals holds the calculated cost of a single line.
type LineTotals struct {
	Materials float64
	Labor     float64
	Total     float64 // Materials + Labor
	Rate      float64 // hourly rate actually charged
}

// SheetTotals holds the aggregated totals for one sheet.
type SheetTotals struct {
	Name      string
	Materials float64
	Labor     float64
	Total     float64
}

// ProjectTotals holds the project roll-up from subtotal to grand total.
type ProjectTotals struct {
	Sheets         []SheetTotals
	Subtotal       float64
	MarkupAmount   float64
	TravelAmount   float64
	DisposalAmount float64
	DiscountAmount float64
	TaxBase        float64 // subtotal + markup + travel + disposal - discount
	TaxAmount      float64
	GrandTotal     float64
}

// areaUnit is the only unit whose quantity may come from length x width.
const areaUnit = "sqft"

// IsAreaUnit reports whether unit is square feet, compared case-insensitively,
// so that a line's quantity may be derived from its length and width.
func IsAreaUnit(unit string) bool {
	return strings.ToLower(unit) == areaUnit
}

// EffectiveSheetRate returns the hourly rate a sheet charges for crew lines.
func EffectiveSheetRate(sheet Sheet, inputs ProjectInputs) float64 {
	if sheet.UseGlobalRate {
		return finite(inputs.CrewRate)
	}
	if sheet.SheetRate == nil {
		return 0
	}
	return finite(*sheet.SheetRate)
}

// ResolveLineRate returns the hourly rate charged for a line. Crew lines use
// the sheet rate. Custom lines use their own rate, falling back to the sheet
// rate when that rate is zero or unset, so a zero custom rate cannot be
// expressed.
func ResolveLineRate(line Line, sheet Sheet, inputs ProjectInputs) float64 {
	if line.RateType == RateTypeCrew {
		return EffectiveSheetRate(sheet, inputs)
	}
	if line.Rate != nil {
		if rate := finite(*line.Rate); rate != 0 {
			return rate
		}
	}
	return EffectiveSheetRate(sheet, inputs)
}

// NormalizeLine returns the line with its quantity derived from length x width
// when dimension mode is on for an area unit. Otherwise the line is returned
// unchanged.
func NormalizeLine(line Line) Line {
	if line.UseDims && IsAreaUnit(line.Unit) {
		line.Qty = finite(finite(line.DimL) * finite(line.DimW))
	}
	return line
}

// Normalize writes dimension-derived quantities back into every line.
func (p *Project) Normalize() {
	for i := range p.Sheets {
		lines := p.Sheets[i].Lines
		for j := range lines {
			lines[j] = NormalizeLine(lines[j])
		}
	}
}

// CalcLine computes materials (with waste), labor and total for one line.
func CalcLine(line Line, sheet Sheet, inputs ProjectInputs) LineTotals {
	line = NormalizeLine(line)
	rate := ResolveLineRate(line, sheet, inputs)

	qty := finite(line.Qty)
	materials := finite(qty * finite(line.MatUnit) * (1 + finite(inputs.WastePct)/100))
	labor := finite(qty * finite(line.HoursPerQty) * rate)

	return LineTotals{
		Materials: materials,
		Labor:     labor,
		Total:     finite(materials + labor),
		Rate:      rate,
	}
}

// CalcSheet sums materials, labor and total of every line in the sheet.
// Each field is summed on its own rather than re-deriving the total.
func CalcSheet(sheet Sheet, inputs ProjectInputs) SheetTotals {
	totals := SheetTotals{Name: sheet.Name}
	for _, line := range sheet.Lines {
		c := CalcLine(line, sheet, inputs)
		totals.Materials += c.Materials
		totals.Labor += c.Labor
		totals.Total += c.Total
	}
	totals.Materials = finite(totals.Materials)
	totals.Labor = finite(totals.Labor)
	totals.Total = finite(totals.Total)
	return totals
}

// CalcProject rolls sheet totals into the subtotal and applies markup, fees,
// discount and tax in that order. Tax is charged on the marked-up subtotal
// plus fees, net of discount.
func CalcProject(p Project) ProjectTotals {
	var totals ProjectTotals
	for _, sheet := range p.Sheets {
		st := CalcSheet(sheet, p.Inputs)
		totals.Sheets = append(totals.Sheets, st)
		totals.Subtotal += st.Total
	}
	totals.Subtotal = finite(totals.Subtotal)

	in := p.Inputs
	totals.MarkupAmount = finite(totals.Subtotal * (finite(in.Markup) / 100))
	totals.TravelAmount = finite(in.TravelFees)
	totals.DisposalAmount = finite(in.DisposalFee)
	totals.DiscountAmount = finite(in.Discount)
	totals.TaxBase = finite(totals.Subtotal + totals.MarkupAmount + totals.TravelAmount + totals.DisposalAmount - totals.DiscountAmount)
	totals.TaxAmount = finite(totals.TaxBase * (finite(in.Tax) / 100))
	totals.GrandTotal = finite(totals.TaxBase + totals.TaxAmount)
	return totals
}

// Recalculate normalizes dimension-derived quantities in place and returns
// the fresh project totals. Every edit runs it before the next read.
func Recalculate(p *Project) ProjectTotals {
	p.Normalize()
	return CalcProject(*p)
}
