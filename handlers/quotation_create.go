package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
	"solarquote/templates"
)

var PropertyTypeOptions = []string{"residential", "commercial"}

// HandleQuotationCreate handles GET /quotations/create.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.QuotationCreateData{
			PropertyType:        services.PropertyResidential,
			AdvancePct:          30,
			PropertyTypeOptions: PropertyTypeOptions,
			Errors:              make(map[string]string),
		}
		component := templates.QuotationCreatePage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotationSave handles POST /quotations.
func HandleQuotationSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		customerName := strings.TrimSpace(e.Request.FormValue("customer_name"))
		customerPhone := strings.TrimSpace(e.Request.FormValue("customer_phone"))
		propertyType, _ := services.NormalizePropertyType(e.Request.FormValue("property_type"))

		advancePct := 30.0
		if v := strings.TrimSpace(e.Request.FormValue("advance_payment_percentage")); v != "" {
			if pct, err := strconv.ParseFloat(v, 64); err == nil && pct >= 0 && pct <= 100 {
				advancePct = pct
			}
		}

		errors := make(map[string]string)
		if customerName == "" {
			errors["customer_name"] = "Customer name is required"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.QuotationCreateData{
				CustomerName:        customerName,
				CustomerPhone:       customerPhone,
				PropertyType:        propertyType,
				AdvancePct:          advancePct,
				PropertyTypeOptions: PropertyTypeOptions,
				Errors:              errors,
			}
			component := templates.QuotationCreatePage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("quotation_no", nextQuotationNo(app, time.Now().Year()))
		record.Set("customer_name", customerName)
		record.Set("customer_phone", customerPhone)
		record.Set("property_type", propertyType)
		record.Set("status", "draft")
		record.Set("advance_payment_percentage", advancePct)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation created")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotations/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotations/"+record.Id)
	}
}
