// Package templates holds the HTML views of the estimator. Views are templ
// components (see the .templ sources) so handlers render them the same way
// whether a full page or an HTMX fragment is requested.
package templates

//go:generate templ generate

import (
	"fmt"
	"strconv"
)

// clearGlobalRate is sent with the sheet rate input so that typing a rate
// also turns the global crew rate off.
const clearGlobalRate = `{"useGlobalRate":""}`

func itoa(i int) string { return strconv.Itoa(i) }

func estimatePath(estimateID, suffix string) string {
	return "/estimates/" + estimateID + suffix
}

type navLink struct {
	Label string
	URL   string
}

func exportLinks(estimateID string) []navLink {
	return []navLink{
		{"Save JSON", estimatePath(estimateID, "/export/json")},
		{"Export CSV", estimatePath(estimateID, "/export/csv")},
		{"Export Excel", estimatePath(estimateID, "/export/excel")},
		{"Quote PDF", estimatePath(estimateID, "/export/pdf")},
	}
}

type inputField struct {
	Name  string
	Label string
	Value string
	Kind  string
}

// inputFields lists the editable project inputs in display order. Markup is
// left out in client mode because the factor is baked into line totals.
func inputFields(data InputsData) []inputField {
	fields := []inputField{
		{"clientName", "Client name", data.ClientName, "text"},
		{"projectAddress", "Project address", data.ProjectAddress, "text"},
		{"crewRate", "Crew rate ($/hr)", data.CrewRate, "number"},
	}
	if !data.ClientMode {
		fields = append(fields, inputField{"markup", "Markup %", data.Markup, "number"})
	}
	return append(fields,
		inputField{"tax", "Tax %", data.Tax, "number"},
		inputField{"travelFees", "Travel / fees ($)", data.TravelFees, "number"},
		inputField{"disposalFee", "Disposal fee ($)", data.DisposalFee, "number"},
		inputField{"discount", "Discount ($)", data.Discount, "number"},
		inputField{"wastePct", "Waste %", data.WastePct, "number"},
	)
}

// sheetURL returns a sheet route, keeping the advanced view on when it is
// showing.
func (d SheetData) sheetURL(suffix string) string {
	return fmt.Sprintf("/estimates/%s/sheets/%d%s%s", d.EstimateID, d.Index, suffix, d.query())
}

func (d SheetData) lineURL(line int, suffix string) string {
	return d.sheetURL(fmt.Sprintf("/lines/%d%s", line, suffix))
}

// advancedToggleURL reloads the sheet with the advanced columns flipped.
func (d SheetData) advancedToggleURL() string {
	url := fmt.Sprintf("/estimates/%s/sheets/%d", d.EstimateID, d.Index)
	if !d.Advanced {
		url += "?adv=1"
	}
	return url
}

func (d SheetData) query() string {
	if d.Advanced {
		return "?adv=1"
	}
	return ""
}

type labeledAmount struct {
	Label  string
	Amount string
}

func (d SummaryData) adjustments() []labeledAmount {
	return []labeledAmount{
		{"Subtotal", d.Subtotal},
		{d.MarkupLabel, d.Markup},
		{"Travel / fees", d.Travel},
		{"Disposal fee", d.Disposal},
		{"Discount", "(" + d.Discount + ")"},
		{d.TaxLabel, d.Tax},
	}
}

func (d QuoteData) adjustments() []labeledAmount {
	return []labeledAmount{
		{"Travel / fees", d.Travel},
		{"Disposal fee", d.Disposal},
		{"Discount", "(" + d.Discount + ")"},
		{"Tax", d.Tax},
	}
}
