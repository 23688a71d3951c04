package handlers

import (
	"io"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/services"
)

// maxImportSize caps an uploaded estimate document.
const maxImportSize = 5 << 20

// HandleImportJSON replaces the estimate with an uploaded document. A file
// that cannot be decoded is rejected and the stored estimate is untouched.
func HandleImportJSON(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxImportSize); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, _, err := e.Request.FormFile("document")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		raw, err := io.ReadAll(io.LimitReader(file, maxImportSize))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded file")
		}

		incoming, err := services.DecodeDocument(raw)
		if err != nil {
			log.WithField("estimate", e.Request.PathValue("id")).Warnf("import: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid file")
		}

		// The stored document is replaced without being read, so an unreadable
		// estimate can still be recovered from a saved file.
		rec, err := app.FindRecordById(services.EstimatesCollection, e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Estimate not found")
		}
		if err := services.SaveEstimate(app, rec, incoming); err != nil {
			log.Errorf("import: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		log.WithField("estimate", rec.Id).Info("import: estimate replaced from file")

		SetToast(e, "success", "Estimate loaded")
		target := "/estimates/" + rec.Id
		if isHTMX(e) {
			e.Response.Header().Set("HX-Redirect", target)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, target)
	}
}
