package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/services"
)

// HandleEstimateReset replaces the estimate with a blank copy of the catalog.
func HandleEstimateReset(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, rec, err := applyEdit(app, e, "estimate_reset", func(p *services.Project) error {
			p.Reset()
			return nil
		})
		if err != nil {
			return editError(e, "estimate_reset", err)
		}

		log.WithField("estimate", rec.Id).Info("estimate_reset: reset to blank template")
		SetToast(e, "success", "Estimate reset")
		target := "/estimates/" + rec.Id
		if isHTMX(e) {
			e.Response.Header().Set("HX-Redirect", target)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, target)
	}
}
