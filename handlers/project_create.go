package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// HandleProjectAdd handles POST /quotations/{quotationId}/projects.
// Creates a project of the requested type with its per-type defaults and
// re-aggregates the quotation.
func HandleProjectAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("quotationId")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Quotation not found"})
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		projectType := services.ProjectType(strings.TrimSpace(e.Request.FormValue("project_type")))
		if !projectType.Valid() {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown project type"})
		}

		col, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_create: could not find projects collection: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong. Please try again."})
		}

		project := services.NewProject(projectType)

		rec := core.NewRecord(col)
		rec.Set("quotation", quotationID)
		rec.Set("sort_order", nextProjectSortOrder(app, quotationID))
		writeProjectFields(rec, project)

		if err := app.Save(rec); err != nil {
			log.Printf("project_create: could not save project: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not save project"})
		}

		totals, err := recalcQuotationTotals(app, quotation)
		if err != nil {
			log.Printf("project_create: could not re-aggregate quotation %s: %v", quotationID, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not update quotation totals"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"project": projectToJSON(rec, project),
			"totals":  totalsToJSON(totals),
		})
	}
}
