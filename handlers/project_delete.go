package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleProjectDelete handles DELETE /quotations/{quotationId}/projects/{id}.
// Removes the project and re-aggregates the quotation from the remaining list.
func HandleProjectDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("quotationId")
		projectID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Quotation not found"})
		}

		rec, err := app.FindRecordById("projects", projectID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Project not found"})
		}
		if rec.GetString("quotation") != quotationID {
			return e.JSON(http.StatusForbidden, map[string]string{"error": "Project does not belong to this quotation"})
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("project_delete: could not delete project %s: %v", projectID, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not delete project"})
		}

		totals, err := recalcQuotationTotals(app, quotation)
		if err != nil {
			log.Printf("project_delete: could not re-aggregate quotation %s: %v", quotationID, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not update quotation totals"})
		}

		return e.JSON(http.StatusOK, map[string]any{"totals": totalsToJSON(totals)})
	}
}
