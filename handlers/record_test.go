package handlers

import (
	"reflect"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
	"solarquote/testhelpers"
)

func newProjectRecord(t *testing.T, app *pocketbase.PocketBase, quotationID string) *core.Record {
	t.Helper()
	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("projects collection: %v", err)
	}
	rec := core.NewRecord(col)
	rec.Set("quotation", quotationID)
	rec.Set("sort_order", 1)
	return rec
}

func TestProjectRecordRoundTrip_Hybrid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")

	derived, err := services.Apply(services.NewProject(services.ProjectHybrid),
		services.PropertyResidential,
		services.SetPanelWatts{Watts: "545"},
		services.SetDCRPanelCount{Count: 4},
		services.SetNonDCRPanelCount{Count: 2},
		services.SetInverterKVA{KVA: "5 kVA"},
		services.SetBatteryAH{AH: 200},
		services.SetBatteryCount{Count: 2},
		services.SetVoltage{Voltage: 24},
		services.AddUsageScenario{Watts: 1000},
		services.AddUsageScenario{Watts: 2000},
		services.SetProjectValue{Value: 250000},
	)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	rec := newProjectRecord(t, app, quotation.Id)
	writeProjectFields(rec, derived)
	if err := app.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := app.FindRecordById("projects", rec.Id)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	rebuilt := projectFromRecord(stored)
	if !reflect.DeepEqual(rebuilt, derived) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", rebuilt, derived)
	}
	if len(rebuilt.Battery.Backup.UsageWatts) != 2 {
		t.Fatalf("usage scenarios = %d, want 2", len(rebuilt.Battery.Backup.UsageWatts))
	}
}

func TestProjectRecordRoundTrip_WaterPump(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "Asha Nair")

	derived, err := services.Apply(services.NewProject(services.ProjectWaterPump),
		services.PropertyResidential,
		services.SetDriveHP{HP: "5 HP"},
		services.SetPanelWatts{Watts: "335"},
		services.SetDCRPanelCount{Count: 9},
		services.SetProjectValue{Value: 90000},
		services.SetQty{Qty: 1},
	)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	rec := newProjectRecord(t, app, quotation.Id)
	writeProjectFields(rec, derived)
	if err := app.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := app.FindRecordById("projects", rec.Id)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	rebuilt := projectFromRecord(stored)
	if !reflect.DeepEqual(rebuilt, derived) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", rebuilt, derived)
	}
	// hp mirrors drive_hp for older records.
	if stored.GetString("hp") != "5 HP" {
		t.Errorf("hp = %q, want mirror of drive_hp", stored.GetString("hp"))
	}
}
