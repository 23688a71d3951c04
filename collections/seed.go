package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	log "github.com/sirupsen/logrus"

	"projectbuilder/services"
)

// SeedEstimateName is the name given to the blank estimate created on first start.
const SeedEstimateName = "New Estimate"

// Seed creates one blank estimate from the default catalog. It is safe to
// call on every startup because it returns early if any estimate exists.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId(services.EstimatesCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find estimates collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query estimates: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Info("seed: estimates collection is empty, inserting a blank estimate")

	if _, err := services.CreateEstimate(app, SeedEstimateName, services.DefaultProject()); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
