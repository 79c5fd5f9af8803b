package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
	"solarquote/templates"
)

// HandleQuotationList handles GET /quotations.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("quotation_list: could not query quotations: %v", err)
			records = nil
		}

		items := make([]templates.QuotationListItem, 0, len(records))
		for _, rec := range records {
			createdDate := ""
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02 Jan 2006")
			}
			items = append(items, templates.QuotationListItem{
				ID:              rec.Id,
				QuotationNo:     rec.GetString("quotation_no"),
				CustomerName:    rec.GetString("customer_name"),
				PropertyType:    rec.GetString("property_type"),
				Status:          rec.GetString("status"),
				CustomerPayment: services.FormatINR(rec.GetFloat("total_customer_payment")),
				CreatedDate:     createdDate,
			})
		}

		component := templates.QuotationListPage(templates.QuotationListData{Quotations: items})
		return component.Render(e.Request.Context(), e.Response)
	}
}
