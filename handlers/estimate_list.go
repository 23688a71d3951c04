package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/services"
	"projectbuilder/templates"
)

// HandleEstimateList returns a handler that renders the saved estimates.
func HandleEstimateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summaries, err := services.ListEstimates(app)
		if err != nil {
			log.Errorf("estimate_list: could not list estimates: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		items := make([]templates.EstimateListItem, 0, len(summaries))
		for _, s := range summaries {
			updated := "—"
			if !s.Updated.IsZero() {
				updated = humanize.Time(s.Updated)
			}
			items = append(items, templates.EstimateListItem{
				ID:             s.ID,
				Name:           s.Name,
				ClientName:     s.ClientName,
				ProjectAddress: s.ProjectAddress,
				GrandTotal:     services.FormatUSD(s.GrandTotal),
				Updated:        updated,
			})
		}

		data := templates.EstimateListData{
			Nav:   GetNavData(e.Request),
			Items: items,
		}

		var component templ.Component
		if isHTMX(e) {
			component = templates.EstimateListContent(data)
		} else {
			component = templates.EstimateListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleEstimateCreate stores a new blank estimate and opens it.
func HandleEstimateCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Estimate name is required")
		}

		rec, err := services.CreateEstimate(app, name, services.DefaultProject())
		if err != nil {
			log.Errorf("estimate_create: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Estimate created")
		target := "/estimates/" + rec.Id
		if isHTMX(e) {
			e.Response.Header().Set("HX-Redirect", target)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, target)
	}
}

// HandleEstimateDelete removes an estimate. HTMX callers get an empty body so
// the list row is swapped away.
func HandleEstimateDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing estimate ID")
		}

		if err := services.DeleteEstimate(app, id); err != nil {
			if errors.Is(err, services.ErrEstimateNotFound) {
				return ErrorToast(e, http.StatusNotFound, "Estimate not found")
			}
			log.Errorf("estimate_delete: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.WithField("estimate", id).Info("estimate_delete: deleted estimate")
		SetToast(e, "success", "Estimate deleted")
		if isHTMX(e) {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/estimates")
	}
}
