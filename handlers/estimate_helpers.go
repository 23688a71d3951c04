package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/services"
)

// pathIndex parses a non-negative integer path value such as {sheet} or {line}.
func pathIndex(e *core.RequestEvent, name string) (int, bool) {
	idx, err := strconv.Atoi(e.Request.PathValue(name))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// loadEstimate loads the estimate named by the {id} path value.
func loadEstimate(app *pocketbase.PocketBase, e *core.RequestEvent) (services.Project, *core.Record, error) {
	id := e.Request.PathValue("id")
	if id == "" {
		return services.Project{}, nil, fmt.Errorf("missing estimate id: %w", services.ErrEstimateNotFound)
	}
	return services.LoadEstimate(app, id)
}

// applyEdit loads the estimate, applies mutate, recalculates and saves the
// whole document back. Nothing is saved when mutate fails.
func applyEdit(app *pocketbase.PocketBase, e *core.RequestEvent, action string, mutate func(*services.Project) error) (services.Project, *core.Record, error) {
	p, rec, err := loadEstimate(app, e)
	if err != nil {
		return services.Project{}, nil, err
	}
	if err := mutate(&p); err != nil {
		return services.Project{}, nil, err
	}

	totals := services.Recalculate(&p)
	if err := services.SaveEstimate(app, rec, p); err != nil {
		return services.Project{}, nil, err
	}

	log.WithFields(log.Fields{
		"estimate":    rec.Id,
		"action":      action,
		"grand_total": totals.GrandTotal,
	}).Debug("estimate: edit applied")
	return p, rec, nil
}

// editError maps an estimate or edit error to a status code and toast.
func editError(e *core.RequestEvent, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrEstimateNotFound):
		return ErrorToast(e, http.StatusNotFound, "Estimate not found")
	case errors.Is(err, services.ErrSheetNotFound):
		return ErrorToast(e, http.StatusNotFound, "Sheet not found")
	case errors.Is(err, services.ErrLineNotFound):
		return ErrorToast(e, http.StatusNotFound, "Line not found")
	case errors.Is(err, services.ErrStandardLineNotFound):
		return ErrorToast(e, http.StatusBadRequest, "Unknown standard line")
	case errors.Is(err, services.ErrUnknownField):
		return ErrorToast(e, http.StatusBadRequest, "Unknown field")
	case errors.Is(err, services.ErrInvalidDocument):
		log.Errorf("%s: stored estimate is unreadable: %v", action, err)
		return ErrorToast(e, http.StatusInternalServerError, "This estimate could not be read")
	default:
		log.Errorf("%s: %v", action, err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// advanced reports whether the advanced sheet columns were requested.
func advanced(e *core.RequestEvent) bool {
	return e.Request.URL.Query().Get("adv") == "1"
}
