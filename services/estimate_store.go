package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
	log "github.com/sirupsen/logrus"
)

// EstimatesCollection is the PocketBase collection holding saved estimates.
const EstimatesCollection = "estimates"

// ErrEstimateNotFound is returned when no estimate has the requested id.
var ErrEstimateNotFound = errors.New("estimate not found")

// EstimateSummary is one row of the saved-estimate list.
type EstimateSummary struct {
	ID             string
	Name           string
	ClientName     string
	ProjectAddress string
	GrandTotal     float64
	Updated        time.Time
}

// CreateEstimate stores p as a new estimate and returns its record.
func CreateEstimate(app *pocketbase.PocketBase, name string, p Project) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(EstimatesCollection)
	if err != nil {
		return nil, fmt.Errorf("estimate store: find collection: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	if err := writeEstimate(app, record, p); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"estimate": record.Id, "name": name}).Info("estimate_store: created estimate")
	return record, nil
}

// LoadEstimate reads and decodes the estimate with the given id. Stored
// quantities are normalized before the project is returned.
func LoadEstimate(app *pocketbase.PocketBase, id string) (Project, *core.Record, error) {
	record, err := app.FindRecordById(EstimatesCollection, id)
	if err != nil {
		return Project{}, nil, fmt.Errorf("estimate %s: %w", id, ErrEstimateNotFound)
	}

	raw, _ := record.Get("document").(types.JSONRaw)
	p, err := DecodeDocument(raw)
	if err != nil {
		return Project{}, record, fmt.Errorf("estimate %s: %w", id, err)
	}
	p.Normalize()
	return p, record, nil
}

// SaveEstimate replaces the stored document of record with p. The last
// write wins; nothing is merged.
func SaveEstimate(app *pocketbase.PocketBase, record *core.Record, p Project) error {
	return writeEstimate(app, record, p)
}

// DeleteEstimate removes the estimate with the given id.
func DeleteEstimate(app *pocketbase.PocketBase, id string) error {
	record, err := app.FindRecordById(EstimatesCollection, id)
	if err != nil {
		return fmt.Errorf("estimate %s: %w", id, ErrEstimateNotFound)
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("estimate store: delete %s: %w", id, err)
	}
	return nil
}

// ListEstimates returns every saved estimate, most recently updated first.
func ListEstimates(app *pocketbase.PocketBase) ([]EstimateSummary, error) {
	records, err := app.FindRecordsByFilter(EstimatesCollection, "id != ''", "-updated", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("estimate store: list: %w", err)
	}

	summaries := make([]EstimateSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, EstimateSummary{
			ID:             rec.Id,
			Name:           rec.GetString("name"),
			ClientName:     rec.GetString("client_name"),
			ProjectAddress: rec.GetString("project_address"),
			GrandTotal:     rec.GetFloat("grand_total"),
			Updated:        rec.GetDateTime("updated").Time(),
		})
	}
	return summaries, nil
}

// writeEstimate recalculates p, then stores the document together with the
// denormalized list columns.
func writeEstimate(app *pocketbase.PocketBase, record *core.Record, p Project) error {
	totals := Recalculate(&p)

	data, err := EncodeDocument(p)
	if err != nil {
		return fmt.Errorf("estimate store: %w", err)
	}

	record.Set("document", types.JSONRaw(data))
	record.Set("client_name", p.Inputs.ClientName)
	record.Set("project_address", p.Inputs.ProjectAddress)
	record.Set("grand_total", totals.GrandTotal)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("estimate store: save: %w", err)
	}
	return nil
}
