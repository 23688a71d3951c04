package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/config"
	"projectbuilder/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

// exportFilename builds the download name from the configured base name.
func exportFilename(cfg *config.Config, ext string) string {
	base := sanitizeFilename(cfg.ExportBaseName)
	if base == "" {
		base = "project_estimate"
	}
	return base + "." + ext
}

// writeDownload sends body as a file attachment.
func writeDownload(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(body)
	return err
}

// HandleExportJSON downloads the full estimate document for later import.
func HandleExportJSON(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, _, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "export_json", err)
		}

		data, err := services.EncodeDocument(p)
		if err != nil {
			log.Errorf("export_json: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate JSON file")
		}
		return writeDownload(e, "application/json", exportFilename(cfg, "json"), data)
	}
}

// HandleExportCSV downloads one row per line with its computed cost.
func HandleExportCSV(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, _, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "export_csv", err)
		}

		data, err := services.ExportCSV(p)
		if err != nil {
			log.Errorf("export_csv: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV file")
		}
		return writeDownload(e, "text/csv; charset=utf-8", exportFilename(cfg, "csv"), data)
	}
}

// HandleExportExcel downloads the estimate workbook.
func HandleExportExcel(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, rec, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "export_excel", err)
		}

		created := time.Now()
		if dt := rec.GetDateTime("created"); !dt.IsZero() {
			created = dt.Time()
		}

		data := services.BuildExportData(p, rec.GetString("name"), created)
		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Errorf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}
		return writeDownload(e, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exportFilename(cfg, "xlsx"), xlsxBytes)
	}
}

// HandleExportPDF downloads the printable client quote.
func HandleExportPDF(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, _, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "export_pdf", err)
		}

		pdfBytes, err := services.GenerateQuotePDF("Quote", services.BuildQuote(p, time.Now()))
		if err != nil {
			log.Errorf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}
		return writeDownload(e, "application/pdf", exportFilename(cfg, "pdf"), pdfBytes)
	}
}
