package handlers

import (
	"fmt"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/services"
	"projectbuilder/templates"
)

// HandleSummaryView renders the internal cost breakdown: per-sheet totals
// before markup, then the roll-up to the grand total.
func HandleSummaryView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, rec, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "summary_view", err)
		}

		t := services.CalcProject(p)
		data := templates.SummaryData{
			Nav:         BuildNavData(e.Request, rec, p, tabSummary),
			EstimateID:  rec.Id,
			Subtotal:    services.FormatUSD(t.Subtotal),
			MarkupLabel: fmt.Sprintf("Markup (%s%%)", services.FormatNumber(p.Inputs.Markup)),
			Markup:      services.FormatUSD(t.MarkupAmount),
			Travel:      services.FormatUSD(t.TravelAmount),
			Disposal:    services.FormatUSD(t.DisposalAmount),
			Discount:    services.FormatUSD(t.DiscountAmount),
			TaxLabel:    fmt.Sprintf("Tax (%s%%)", services.FormatNumber(p.Inputs.Tax)),
			Tax:         services.FormatUSD(t.TaxAmount),
			GrandTotal:  services.FormatUSD(t.GrandTotal),
		}
		for _, st := range t.Sheets {
			data.Rows = append(data.Rows, templates.SummaryRow{
				Name:      st.Name,
				Materials: services.FormatUSD(st.Materials),
				Labor:     services.FormatUSD(st.Labor),
				Total:     services.FormatUSD(st.Total),
			})
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.SummaryContent(data)
		} else {
			component = templates.SummaryPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteView renders the client quote with markup prorated per line.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, rec, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "quote_view", err)
		}

		q := services.BuildQuote(p, time.Now())
		data := templates.QuoteData{
			Nav:            BuildNavData(e.Request, rec, p, tabQuote),
			EstimateID:     rec.Id,
			ClientName:     q.ClientName,
			ProjectAddress: q.ProjectAddress,
			Date:           q.Date,
			Travel:         services.FormatUSD(q.TravelAmount),
			Disposal:       services.FormatUSD(q.DisposalAmount),
			Discount:       services.FormatUSD(q.DiscountAmount),
			Tax:            services.FormatUSD(q.TaxAmount),
			Total:          services.FormatUSD(q.GrandTotal),
		}
		for _, l := range q.Lines {
			data.Lines = append(data.Lines, templates.QuoteRow{
				Heading: l.Service + " - " + l.Description,
				Notes:   l.Notes,
				Qty:     services.FormatNumber(l.Qty),
				Unit:    l.Unit,
				Total:   services.FormatUSD(l.Total),
			})
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.QuoteContent(data)
		} else {
			component = templates.QuotePage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
