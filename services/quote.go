package services

import "time"

// QuoteLine is one client-visible row of the quote with markup prorated in.
type QuoteLine struct {
	Service     string
	Description string
	Unit        string
	Qty         float64
	Notes       string
	Base        float64 // line total before markup
	Total       float64 // Base plus its share of the markup
}

// Quote is the client-facing document derived from a project.
type Quote struct {
	ClientName     string
	ProjectAddress string
	Date           string
	Lines          []QuoteLine
	Subtotal       float64
	MarkupAmount   float64
	TravelAmount   float64
	DisposalAmount float64
	DiscountAmount float64
	TaxAmount      float64
	GrandTotal     float64
}

// LineDisplay is the live-edit line total, with and without client mode.
type LineDisplay struct {
	Base    float64
	Display float64
}

// ProrateMarkup adds to lineTotal its proportional share of markupAmount,
// weighted by the line's share of subtotal. A non-positive subtotal gives
// the line no share.
func ProrateMarkup(lineTotal, subtotal, markupAmount float64) float64 {
	var share float64
	if subtotal > 0 {
		share = lineTotal / subtotal
	}
	return finite(lineTotal + markupAmount*share)
}

// BuildQuote lists every line with a positive total, in sheet order, with the
// project markup spread across them. Summed, the line totals equal subtotal
// plus markup.
func BuildQuote(p Project, date time.Time) Quote {
	totals := CalcProject(p)
	q := Quote{
		ClientName:     p.Inputs.ClientName,
		ProjectAddress: p.Inputs.ProjectAddress,
		Date:           date.Format("01/02/2006"),
		Subtotal:       totals.Subtotal,
		MarkupAmount:   totals.MarkupAmount,
		TravelAmount:   totals.TravelAmount,
		DisposalAmount: totals.DisposalAmount,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		GrandTotal:     totals.GrandTotal,
	}

	for _, sheet := range p.Sheets {
		for _, line := range sheet.Lines {
			c := CalcLine(line, sheet, p.Inputs)
			if c.Total <= 0 {
				continue
			}
			q.Lines = append(q.Lines, QuoteLine{
				Service:     sheet.Name,
				Description: line.Desc,
				Unit:        line.Unit,
				Qty:         NormalizeLine(line).Qty,
				Notes:       line.Notes,
				Base:        c.Total,
				Total:       ProrateMarkup(c.Total, totals.Subtotal, totals.MarkupAmount),
			})
		}
	}
	return q
}

// DisplayLineTotal is the line total shown while editing. In client mode the
// markup percent is multiplied straight into it; this is not the prorated
// quote figure.
func DisplayLineTotal(line Line, sheet Sheet, inputs ProjectInputs) LineDisplay {
	c := CalcLine(line, sheet, inputs)
	display := c.Total
	if inputs.ClientMode {
		display = finite(c.Total * (1 + finite(inputs.Markup)/100))
	}
	return LineDisplay{Base: c.Total, Display: display}
}
