package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

var QuotationStatusOptions = []string{"draft", "submitted", "discarded"}

// HandleQuotationSettings handles POST /quotations/{id}/settings.
// Updates the customer fields, property type, advance percentage and status.
// A property type change can move every project's subsidy, so all projects
// are re-derived before the totals are recomputed.
func HandleQuotationSettings(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Quotation not found"})
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		if v := strings.TrimSpace(e.Request.FormValue("customer_name")); v != "" {
			quotation.Set("customer_name", v)
		}
		if e.Request.Form.Has("customer_phone") {
			quotation.Set("customer_phone", strings.TrimSpace(e.Request.FormValue("customer_phone")))
		}
		if v := strings.TrimSpace(e.Request.FormValue("status")); v != "" {
			valid := false
			for _, s := range QuotationStatusOptions {
				if v == s {
					valid = true
					break
				}
			}
			if !valid {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown status"})
			}
			quotation.Set("status", v)
		}
		if v := strings.TrimSpace(e.Request.FormValue("advance_payment_percentage")); v != "" {
			pct, err := strconv.ParseFloat(v, 64)
			if err != nil || pct < 0 || pct > 100 {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "Advance percentage must be between 0 and 100"})
			}
			quotation.Set("advance_payment_percentage", pct)
		}

		propertyChanged := false
		if e.Request.Form.Has("property_type") {
			propertyType, _ := services.NormalizePropertyType(e.Request.FormValue("property_type"))
			if propertyType != quotation.GetString("property_type") {
				quotation.Set("property_type", propertyType)
				propertyChanged = true
			}
		}

		if propertyChanged {
			records, projects, err := loadQuotationProjects(app, quotationID)
			if err != nil {
				log.Printf("quotation_settings: could not load projects for %s: %v", quotationID, err)
				return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not update projects"})
			}
			propertyType := quotation.GetString("property_type")
			for i, rec := range records {
				derived := services.Recalculate(projects[i], propertyType)
				writeProjectFields(rec, derived)
				if err := app.Save(rec); err != nil {
					log.Printf("quotation_settings: could not save project %s: %v", rec.Id, err)
					return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not update projects"})
				}
			}
		}

		totals, err := recalcQuotationTotals(app, quotation)
		if err != nil {
			log.Printf("quotation_settings: could not re-aggregate quotation %s: %v", quotationID, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not update quotation totals"})
		}

		return e.JSON(http.StatusOK, map[string]any{"totals": totalsToJSON(totals)})
	}
}
