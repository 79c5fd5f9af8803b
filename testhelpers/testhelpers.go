// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/collections"
	"solarquote/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SetupAgain re-runs the collection setup on an already bootstrapped app,
// exercising the "collection already exists" path.
func SetupAgain(app *pocketbase.PocketBase) {
	collections.Setup(app)
}

// CreateTestQuotation creates a quotation record for the given customer and
// returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_no", "SQ-TEST-001")
	record.Set("customer_name", customerName)
	record.Set("property_type", services.PropertyResidential)
	record.Set("status", "draft")
	record.Set("advance_payment_percentage", 30)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestProject creates a project record of the given type under a
// quotation, with the type's defaults applied, and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, quotationID string, projectType services.ProjectType) *core.Record {
	t.Helper()

	return SaveProjectRecord(t, app, quotationID, 1, services.NewProject(projectType))
}

// CreateDerivedTestProject creates a project record whose fields come from
// running the given edits through the derivation engine.
func CreateDerivedTestProject(t *testing.T, app *pocketbase.PocketBase, quotationID string, projectType services.ProjectType, edits ...services.Edit) *core.Record {
	t.Helper()

	p, err := services.Apply(services.NewProject(projectType), services.PropertyResidential, edits...)
	if err != nil {
		t.Fatalf("failed to derive test project: %v", err)
	}

	return SaveProjectRecord(t, app, quotationID, 1, p)
}

// SaveProjectRecord persists a derived project as a new record under the
// given quotation and returns it.
func SaveProjectRecord(t *testing.T, app *pocketbase.PocketBase, quotationID string, sortOrder int, p services.Project) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("sort_order", sortOrder)
	record.Set("project_type", string(p.Type))
	record.Set("project_value", p.ProjectValue)
	record.Set("gst_percentage", p.GSTPercentage)
	record.Set("base_price", p.BasePrice)
	record.Set("gst_amount", p.GSTAmount)
	record.Set("subsidy_amount", p.SubsidyAmount)
	record.Set("customer_payment", p.CustomerPayment)
	record.Set("others", p.Others)

	if p.Solar != nil {
		record.Set("panel_watts", p.Solar.PanelWatts)
		record.Set("dcr_panel_count", p.Solar.DCRPanelCount)
		record.Set("non_dcr_panel_count", p.Solar.NonDCRPanelCount)
		record.Set("panel_count", p.Solar.PanelCount)
		record.Set("system_kw", p.Solar.SystemKW)
		record.Set("price_per_kw", p.Solar.PricePerKW)
		record.Set("inverter_kw", p.Solar.InverterKW)
		record.Set("inverter_kva", p.Solar.InverterKVA)
		record.Set("inverter_phase", string(p.Solar.InverterPhase))
		record.Set("inverter_qty", p.Solar.InverterQty)
		record.Set("electrical_accessories", p.Solar.ElectricalAccessories)
		record.Set("electrical_count", p.Solar.ElectricalCount)
	}
	if p.Battery != nil {
		record.Set("battery_ah", p.Battery.BatteryAH)
		record.Set("battery_count", p.Battery.BatteryCount)
		record.Set("voltage", p.Battery.Voltage)
		record.Set("backup_watts", p.Battery.Backup.BackupWatts)
		record.Set("backup_manually_edited", p.Battery.Backup.ManuallyEdited)
		record.Set("usage_watts", p.Battery.Backup.UsageWatts)
		record.Set("backup_hours", p.Battery.Backup.BackupHours)
	}
	if p.WaterHeater != nil {
		record.Set("litre", p.WaterHeater.Litre)
		record.Set("qty", p.WaterHeater.Qty)
		record.Set("water_heater_model", p.WaterHeater.Model)
	}
	if p.WaterPump != nil {
		record.Set("drive_hp", p.WaterPump.DriveHP)
		record.Set("hp", p.WaterPump.HP)
		record.Set("panel_watts", p.WaterPump.PanelWatts)
		record.Set("dcr_panel_count", p.WaterPump.DCRPanelCount)
		record.Set("non_dcr_panel_count", p.WaterPump.NonDCRPanelCount)
		record.Set("panel_count", p.WaterPump.PanelCount)
		record.Set("qty", p.WaterPump.Qty)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
