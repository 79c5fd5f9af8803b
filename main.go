package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
	"solarquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Quotation CRUD ──────────────────────────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.GET("/quotations/create", handlers.HandleQuotationCreate(app))
		se.Router.POST("/quotations", handlers.HandleQuotationSave(app))
		se.Router.POST("/quotations/{id}/settings", handlers.HandleQuotationSettings(app))
		se.Router.GET("/quotations/{id}", handlers.HandleQuotationView(app))
		se.Router.DELETE("/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Projects inside a quotation ─────────────────────────
		se.Router.POST("/quotations/{quotationId}/projects", handlers.HandleProjectAdd(app))
		se.Router.POST("/quotations/{quotationId}/projects/{id}/edit", handlers.HandleProjectEdit(app))
		se.Router.DELETE("/quotations/{quotationId}/projects/{id}", handlers.HandleProjectDelete(app))

		// ── Backup scenarios ────────────────────────────────────
		se.Router.POST("/quotations/{quotationId}/projects/{id}/backup-scenarios",
			handlers.HandleBackupScenarioAdd(app))
		se.Router.POST("/quotations/{quotationId}/projects/{id}/backup-scenarios/{index}",
			handlers.HandleBackupScenarioUpdate(app))
		se.Router.DELETE("/quotations/{quotationId}/projects/{id}/backup-scenarios/{index}",
			handlers.HandleBackupScenarioDelete(app))

		// ── Exports ─────────────────────────────────────────────
		se.Router.GET("/quotations/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.GET("/quotations/{id}/export/excel", handlers.HandleQuoteExportExcel(app))

		// Redirect home to the quotation list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotations")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
