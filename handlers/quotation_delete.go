package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationDelete handles DELETE /quotations/{id}.
// The projects relation cascades, so project records go with the quotation.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := app.Delete(quotation); err != nil {
			log.Printf("quotation_delete: could not delete quotation %s: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotations")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotations")
	}
}
