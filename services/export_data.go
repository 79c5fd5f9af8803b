package services

import "fmt"

// QuoteRow is one project line in the quotation export.
type QuoteRow struct {
	Index           int
	System          string
	Capacity        string
	Qty             int
	BasePrice       float64
	GSTPercent      float64
	GSTAmount       float64
	ProjectValue    float64
	SubsidyAmount   float64
	CustomerPayment float64
}

// QuoteExportData holds everything the PDF and Excel exports need.
type QuoteExportData struct {
	QuotationNo   string
	CustomerName  string
	PropertyType  string
	CreatedDate   string
	Rows          []QuoteRow
	Totals        QuotationTotals
	AmountInWords string
}

// BuildQuoteRows shapes the project list into export rows.
func BuildQuoteRows(projects []Project) []QuoteRow {
	var rows []QuoteRow
	for i := range projects {
		p := &projects[i]
		rows = append(rows, QuoteRow{
			Index:           i + 1,
			System:          ProjectTypeLabel(p.Type),
			Capacity:        ProjectCapacity(p),
			Qty:             p.Qty(),
			BasePrice:       p.BasePrice,
			GSTPercent:      p.GSTPercentage,
			GSTAmount:       p.GSTAmount,
			ProjectValue:    p.ProjectValue,
			SubsidyAmount:   p.SubsidyAmount,
			CustomerPayment: p.CustomerPayment,
		})
	}
	return rows
}

// ProjectCapacity returns the headline capacity of a project for display:
// system kW for grid variants, tank litres for water heaters, drive HP for
// water pumps.
func ProjectCapacity(p *Project) string {
	switch p.Type {
	case ProjectOnGrid, ProjectOffGrid, ProjectHybrid:
		return FormatKW(p.Solar.SystemKW)
	case ProjectWaterHeater:
		return fmt.Sprintf("%d L", p.WaterHeater.Litre)
	case ProjectWaterPump:
		if p.WaterPump.DriveHP == "" {
			return "—"
		}
		return p.WaterPump.DriveHP + " HP"
	}
	return "—"
}
