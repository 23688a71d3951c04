package collections

import (
	"fmt"
	"math"

	"github.com/pocketbase/pocketbase"
	log "github.com/sirupsen/logrus"

	"projectbuilder/services"
)

// MigrateEstimateTotals re-saves every estimate whose stored grand_total or
// client columns no longer match its document, e.g. after a pricing change.
// Estimates whose document cannot be decoded are logged and left alone.
// Safe to call on every startup.
func MigrateEstimateTotals(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId(services.EstimatesCollection)
	if err != nil {
		return fmt.Errorf("migrate: could not find estimates collection: %w", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("migrate: could not query estimates: %w", err)
	}

	updated := 0
	for _, rec := range records {
		p, _, err := services.LoadEstimate(app, rec.Id)
		if err != nil {
			log.WithField("estimate", rec.Id).Warnf("migrate: skipping undecodable estimate: %v", err)
			continue
		}

		total := services.CalcProject(p).GrandTotal
		if math.Abs(rec.GetFloat("grand_total")-total) < 0.005 &&
			rec.GetString("client_name") == p.Inputs.ClientName &&
			rec.GetString("project_address") == p.Inputs.ProjectAddress {
			continue
		}

		if err := services.SaveEstimate(app, rec, p); err != nil {
			return fmt.Errorf("migrate: could not update estimate %s: %w", rec.Id, err)
		}
		updated++
	}

	if updated > 0 {
		log.Infof("migrate: refreshed totals on %d estimate(s)", updated)
	}
	return nil
}
