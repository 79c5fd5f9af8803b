package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// Seed creates a demo quotation with one derived on-grid project so a fresh
// install has something to show. It is a no-op when any quotation exists.
func Seed(app *pocketbase.PocketBase) error {
	quotationsCol, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("quotations collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(quotationsCol)
	if err != nil {
		return fmt.Errorf("could not query quotations: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("projects collection not found: %w", err)
	}

	// Run the demo project through the engine so the seeded record is
	// derived the same way a real edit would be.
	project, err := services.Apply(services.NewProject(services.ProjectOnGrid),
		services.PropertyResidential,
		services.SetPanelWatts{Watts: "545"},
		services.SetDCRPanelCount{Count: 4},
		services.SetNonDCRPanelCount{Count: 2},
		services.SetInverterKW{KW: 3},
		services.SetInverterQty{Qty: 1},
		services.SetProjectValue{Value: 185000},
	)
	if err != nil {
		return fmt.Errorf("could not derive demo project: %w", err)
	}

	totals := services.AggregateQuotation([]services.Project{project}, 30)

	quotation := core.NewRecord(quotationsCol)
	quotation.Set("quotation_no", "SQ-DEMO-001")
	quotation.Set("customer_name", "Demo Customer")
	quotation.Set("property_type", services.PropertyResidential)
	quotation.Set("status", "draft")
	quotation.Set("advance_payment_percentage", totals.AdvancePaymentPercentage)
	quotation.Set("total_system_cost", totals.TotalSystemCost)
	quotation.Set("total_gst_amount", totals.TotalGSTAmount)
	quotation.Set("total_with_gst", totals.TotalWithGST)
	quotation.Set("total_subsidy_amount", totals.TotalSubsidyAmount)
	quotation.Set("total_customer_payment", totals.TotalCustomerPayment)
	quotation.Set("advance_amount", totals.AdvanceAmount)
	quotation.Set("balance_amount", totals.BalanceAmount)
	if err := app.Save(quotation); err != nil {
		return fmt.Errorf("could not save demo quotation: %w", err)
	}

	rec := core.NewRecord(projectsCol)
	rec.Set("quotation", quotation.Id)
	rec.Set("sort_order", 1)
	rec.Set("project_type", string(project.Type))
	rec.Set("project_value", project.ProjectValue)
	rec.Set("gst_percentage", project.GSTPercentage)
	rec.Set("base_price", project.BasePrice)
	rec.Set("gst_amount", project.GSTAmount)
	rec.Set("subsidy_amount", project.SubsidyAmount)
	rec.Set("customer_payment", project.CustomerPayment)
	rec.Set("panel_watts", project.Solar.PanelWatts)
	rec.Set("dcr_panel_count", project.Solar.DCRPanelCount)
	rec.Set("non_dcr_panel_count", project.Solar.NonDCRPanelCount)
	rec.Set("panel_count", project.Solar.PanelCount)
	rec.Set("system_kw", project.Solar.SystemKW)
	rec.Set("price_per_kw", project.Solar.PricePerKW)
	rec.Set("inverter_kw", project.Solar.InverterKW)
	rec.Set("inverter_phase", string(project.Solar.InverterPhase))
	rec.Set("inverter_qty", project.Solar.InverterQty)
	if err := app.Save(rec); err != nil {
		return fmt.Errorf("could not save demo project: %w", err)
	}

	fmt.Println("Seeded demo quotation SQ-DEMO-001")
	return nil
}
