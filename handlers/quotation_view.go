package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
	"solarquote/templates"
)

// buildQuotationViewData assembles the pricing-table page model for one
// quotation.
func buildQuotationViewData(app *pocketbase.PocketBase, quotationID string) (templates.QuotationViewData, error) {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return templates.QuotationViewData{}, err
	}

	records, projects, err := loadQuotationProjects(app, quotationID)
	if err != nil {
		return templates.QuotationViewData{}, err
	}

	totals := services.AggregateQuotation(projects, quotation.GetFloat("advance_payment_percentage"))

	rows := make([]templates.ProjectRow, len(projects))
	for i, row := range services.BuildQuoteRows(projects) {
		rows[i] = templates.ProjectRow{
			ID:              records[i].Id,
			Index:           row.Index,
			System:          row.System,
			Capacity:        row.Capacity,
			Qty:             row.Qty,
			BasePrice:       services.FormatINR(row.BasePrice),
			GSTAmount:       services.FormatINR(row.GSTAmount),
			ProjectValue:    services.FormatINR(row.ProjectValue),
			SubsidyAmount:   services.FormatINR(row.SubsidyAmount),
			CustomerPayment: services.FormatINR(row.CustomerPayment),
		}
	}

	catalogJSON, err := json.Marshal(map[string]any{
		"panelWatts":       services.PanelWattOptions,
		"batteryAh":        services.BatteryAHOptions,
		"inverterKva":      services.InverterKVAOptions,
		"waterHeaterLitre": services.WaterHeaterLitreOptions,
		"waterPumpHp":      services.WaterPumpHPOptions,
	})
	if err != nil {
		return templates.QuotationViewData{}, err
	}

	typeOptions := make([]templates.ProjectTypeOption, len(services.ProjectTypes))
	for i, t := range services.ProjectTypes {
		typeOptions[i] = templates.ProjectTypeOption{
			Value: string(t),
			Label: services.ProjectTypeLabel(t),
		}
	}

	return templates.QuotationViewData{
		ID:                   quotation.Id,
		QuotationNo:          quotation.GetString("quotation_no"),
		CustomerName:         quotation.GetString("customer_name"),
		CustomerPhone:        quotation.GetString("customer_phone"),
		PropertyType:         quotation.GetString("property_type"),
		Status:               quotation.GetString("status"),
		AdvancePct:           totals.AdvancePaymentPercentage,
		Rows:                 rows,
		TotalSystemCost:      services.FormatINR(totals.TotalSystemCost),
		TotalGSTAmount:       services.FormatINR(totals.TotalGSTAmount),
		TotalWithGST:         services.FormatINR(totals.TotalWithGST),
		TotalSubsidyAmount:   services.FormatINR(totals.TotalSubsidyAmount),
		TotalCustomerPayment: services.FormatINR(totals.TotalCustomerPayment),
		AdvanceAmount:        services.FormatINR(totals.AdvanceAmount),
		BalanceAmount:        services.FormatINR(totals.BalanceAmount),
		AmountInWords:        services.AmountToWords(totals.TotalCustomerPayment),
		ProjectTypeOptions:   typeOptions,
		PropertyTypeOptions:  PropertyTypeOptions,
		CatalogJSON:          string(catalogJSON),
	}, nil
}

// HandleQuotationView handles GET /quotations/{id}.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := buildQuotationViewData(app, quotationID)
		if err != nil {
			log.Printf("quotation_view: could not load quotation %s: %v", quotationID, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		component := templates.QuotationViewPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}
