package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// parseWatts reads the usage watts form value, coercing unparsable text to 0.
func parseWatts(e *core.RequestEvent) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("watts")), 64)
	if err != nil {
		return 0
	}
	return w
}

// HandleBackupScenarioAdd handles
// POST /quotations/{quotationId}/projects/{id}/backup-scenarios.
// Appends a usage scenario; the scenario cap surfaces as 422.
func HandleBackupScenarioAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}
		return applyProjectEdits(app, e,
			e.Request.PathValue("quotationId"),
			e.Request.PathValue("id"),
			services.AddUsageScenario{Watts: parseWatts(e)},
		)
	}
}

// HandleBackupScenarioUpdate handles
// POST /quotations/{quotationId}/projects/{id}/backup-scenarios/{index}.
// Edits the usage watts of one scenario and re-derives its hours.
func HandleBackupScenarioUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid scenario index"})
		}
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}
		return applyProjectEdits(app, e,
			e.Request.PathValue("quotationId"),
			e.Request.PathValue("id"),
			services.SetUsageWatts{Index: index, Watts: parseWatts(e)},
		)
	}
}

// HandleBackupScenarioDelete handles
// DELETE /quotations/{quotationId}/projects/{id}/backup-scenarios/{index}.
func HandleBackupScenarioDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid scenario index"})
		}
		return applyProjectEdits(app, e,
			e.Request.PathValue("quotationId"),
			e.Request.PathValue("id"),
			services.RemoveUsageScenario{Index: index},
		)
	}
}
