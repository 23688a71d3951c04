package main

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/collections"
	"projectbuilder/config"
	"projectbuilder/handlers"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg.LogLevel)

	app := pocketbase.New()
	app.RootCmd.AddCommand(newQuoteCmd())

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Warnf("seed data failed: %v", err)
		}
		if err := collections.MigrateEstimateTotals(app); err != nil {
			log.Warnf("estimate totals migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.BindFunc(handlers.OwnerGateMiddleware(cfg))

		// ── Owner gate ───────────────────────────────────────────
		se.Router.POST("/owner/unlock", handlers.HandleOwnerUnlock(cfg))
		se.Router.POST("/owner/lock", handlers.HandleOwnerLock())

		// ── Estimate CRUD ────────────────────────────────────────
		se.Router.GET("/estimates", handlers.HandleEstimateList(app))
		se.Router.POST("/estimates", handlers.HandleEstimateCreate(app))
		se.Router.GET("/estimates/{id}", handlers.HandleEstimateOpen(app))
		se.Router.DELETE("/estimates/{id}", handlers.HandleEstimateDelete(app))
		se.Router.POST("/estimates/{id}/reset", handlers.HandleEstimateReset(app))

		// ── Inputs ───────────────────────────────────────────────
		se.Router.GET("/estimates/{id}/inputs", handlers.HandleInputsView(app))
		se.Router.POST("/estimates/{id}/inputs", handlers.HandleInputsUpdate(app))
		se.Router.POST("/estimates/{id}/inputs/client-mode", handlers.HandleClientMode(app))

		// ── Sheets and lines ─────────────────────────────────────
		sheet := "/estimates/{id}/sheets/{sheet}"
		se.Router.GET(sheet, handlers.HandleSheetView(app))
		se.Router.POST(sheet+"/rate", handlers.HandleSheetRate(app))
		se.Router.POST(sheet+"/lines/custom", handlers.HandleAddCustomLine(app))
		se.Router.POST(sheet+"/lines/standard", handlers.HandleAddStandardLine(app))
		se.Router.POST(sheet+"/lines/{line}", handlers.HandleLineUpdate(app))
		se.Router.DELETE(sheet+"/lines/{line}", handlers.HandleLineDelete(app))
		se.Router.POST(sheet+"/lines/{line}/dims", handlers.HandleLineDims(app))
		se.Router.POST(sheet+"/lines/{line}/duplicate", handlers.HandleLineDuplicate(app))

		// ── Summary and quote ────────────────────────────────────
		se.Router.GET("/estimates/{id}/summary", handlers.HandleSummaryView(app))
		se.Router.GET("/estimates/{id}/quote", handlers.HandleQuoteView(app))

		// ── Save / load / export ─────────────────────────────────
		se.Router.POST("/estimates/{id}/import", handlers.HandleImportJSON(app))
		se.Router.GET("/estimates/{id}/export/json", handlers.HandleExportJSON(app, cfg))
		se.Router.GET("/estimates/{id}/export/csv", handlers.HandleExportCSV(app, cfg))
		se.Router.GET("/estimates/{id}/export/excel", handlers.HandleExportExcel(app, cfg))
		se.Router.GET("/estimates/{id}/export/pdf", handlers.HandleExportPDF(app, cfg))

		// Redirect home to the estimates list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/estimates")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
