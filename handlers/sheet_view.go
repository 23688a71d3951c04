package handlers

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/services"
	"projectbuilder/templates"
)

// HandleEstimateOpen sends the user to the first sheet of an estimate.
func HandleEstimateOpen(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, rec, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "estimate_open", err)
		}
		target := fmt.Sprintf("/estimates/%s/sheets/0", rec.Id)
		if len(p.Sheets) == 0 {
			target = fmt.Sprintf("/estimates/%s/quote", rec.Id)
		}
		return e.Redirect(http.StatusFound, target)
	}
}

// HandleSheetView renders one sheet of an estimate with live line totals.
func HandleSheetView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, rec, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "sheet_view", err)
		}
		si, ok := pathIndex(e, "sheet")
		if !ok || si >= len(p.Sheets) {
			return ErrorToast(e, http.StatusNotFound, "Sheet not found")
		}

		data := buildSheetData(e, rec, p, si)
		var component templ.Component
		if isHTMX(e) {
			component = templates.SheetFragment(data)
		} else {
			component = templates.SheetPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// renderSheetFragment answers an edit with the refreshed sheet. Plain form
// posts are redirected back to the sheet page.
func renderSheetFragment(e *core.RequestEvent, rec *core.Record, p services.Project, si int) error {
	if !isHTMX(e) {
		return e.Redirect(http.StatusFound, fmt.Sprintf("/estimates/%s/sheets/%d", rec.Id, si))
	}
	return templates.SheetFragment(buildSheetData(e, rec, p, si)).Render(e.Request.Context(), e.Response)
}

// buildSheetData formats sheet si for display. Line totals follow client
// mode: the flat markup multiply, not the prorated quote figure.
func buildSheetData(e *core.RequestEvent, rec *core.Record, p services.Project, si int) templates.SheetData {
	sheet := p.Sheets[si]
	effective := services.EffectiveSheetRate(sheet, p.Inputs)

	sheetRate := effective
	if sheet.SheetRate != nil {
		sheetRate = *sheet.SheetRate
	}

	data := templates.SheetData{
		Nav:           BuildNavData(e.Request, rec, p, sheetTab(si)),
		EstimateID:    rec.Id,
		Index:         si,
		Name:          sheet.Name,
		UseGlobalRate: sheet.UseGlobalRate,
		SheetRate:     services.FormatNumber(sheetRate),
		CrewRate:      services.FormatUSD(p.Inputs.CrewRate),
		EffectiveRate: services.FormatNumber(effective),
		Advanced:      advanced(e),
		Totals:        totalsBar(p),
	}

	for i, line := range sheet.Lines {
		rate := ""
		if line.RateType != services.RateTypeCrew && line.Rate != nil && *line.Rate != 0 {
			rate = services.FormatNumber(*line.Rate)
		}
		display := services.DisplayLineTotal(line, sheet, p.Inputs)
		data.Lines = append(data.Lines, templates.LineRow{
			Index:       i,
			Desc:        line.Desc,
			Unit:        line.Unit,
			Qty:         services.FormatNumber(line.Qty),
			MatUnit:     services.FormatNumber(line.MatUnit),
			HoursPerQty: services.FormatNumber(line.HoursPerQty),
			Rate:        rate,
			Notes:       line.Notes,
			DimL:        services.FormatNumber(line.DimL),
			DimW:        services.FormatNumber(line.DimW),
			CanUseDims:  services.IsAreaUnit(line.Unit),
			UseDims:     line.UseDims,
			Total:       services.FormatUSD(display.Display),
		})
	}

	for i, std := range services.StandardLines(sheet.Name) {
		data.StandardLines = append(data.StandardLines, templates.StandardOption{Index: i, Desc: std.Desc})
	}
	return data
}
