package handlers

import (
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/services"
	"projectbuilder/templates"
)

// Tab identifiers used to mark the active nav entry.
const (
	tabInputs  = "inputs"
	tabSummary = "summary"
	tabQuote   = "quote"
)

// sheetTab returns the tab identifier of the sheet at index i.
func sheetTab(i int) string {
	return fmt.Sprintf("sheet-%d", i)
}

// BuildNavData adds the estimate tabs to the owner gate state from the
// request context. Inputs and the internal summary are owner-only.
func BuildNavData(r *http.Request, rec *core.Record, p services.Project, active string) templates.NavData {
	nav := GetNavData(r)
	nav.Estimate = &templates.ActiveEstimate{
		ID:   rec.Id,
		Name: rec.GetString("name"),
	}

	base := "/estimates/" + rec.Id
	nav.Tabs = append(nav.Tabs, templates.NavTab{
		Label:     "Inputs",
		URL:       base + "/inputs",
		Active:    active == tabInputs,
		OwnerOnly: true,
	})
	for i, s := range p.Sheets {
		nav.Tabs = append(nav.Tabs, templates.NavTab{
			Label:  s.Name,
			URL:    fmt.Sprintf("%s/sheets/%d", base, i),
			Active: active == sheetTab(i),
		})
	}
	nav.Tabs = append(nav.Tabs,
		templates.NavTab{
			Label:     "Internal Summary",
			URL:       base + "/summary",
			Active:    active == tabSummary,
			OwnerOnly: true,
		},
		templates.NavTab{
			Label:  "Client Quote",
			URL:    base + "/quote",
			Active: active == tabQuote,
		},
	)
	return nav
}

// totalsBar formats the running totals shown under editable views.
func totalsBar(p services.Project) templates.TotalsBar {
	t := services.CalcProject(p)
	return templates.TotalsBar{
		Subtotal:   services.FormatUSD(t.Subtotal),
		GrandTotal: services.FormatUSD(t.GrandTotal),
		ClientMode: p.Inputs.ClientMode,
	}
}
