package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// buildQuoteExportData fetches a quotation and its projects and assembles the
// export payload shared by the PDF and Excel downloads.
func buildQuoteExportData(app *pocketbase.PocketBase, quotationID string) (services.QuoteExportData, error) {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("quotation not found: %w", err)
	}

	_, projects, err := loadQuotationProjects(app, quotationID)
	if err != nil {
		return services.QuoteExportData{}, err
	}

	totals := services.AggregateQuotation(projects, quotation.GetFloat("advance_payment_percentage"))

	createdDate := ""
	if dt := quotation.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	return services.QuoteExportData{
		QuotationNo:   quotation.GetString("quotation_no"),
		CustomerName:  quotation.GetString("customer_name"),
		PropertyType:  quotation.GetString("property_type"),
		CreatedDate:   createdDate,
		Rows:          services.BuildQuoteRows(projects),
		Totals:        totals,
		AmountInWords: services.AmountToWords(totals.TotalCustomerPayment),
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuoteExportPDF handles GET /quotations/{id}/export/pdf.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := buildQuoteExportData(app, quotationID)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Quotation_%s_%d.pdf", sanitizeFilename(data.QuotationNo), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel handles GET /quotations/{id}/export/excel.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		data, err := buildQuoteExportData(app, quotationID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quotation_%s_%d.xlsx", sanitizeFilename(data.QuotationNo), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
