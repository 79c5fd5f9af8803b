package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// editableFields is the order edits are applied in when a single request
// carries several. Coupled fields (panel split before total count, battery
// specs before the backup override) must keep this order so later edits read
// the earlier ones' output.
var editableFields = []string{
	"gst_percentage",
	"panel_watts",
	"dcr_panel_count",
	"non_dcr_panel_count",
	"panel_count",
	"system_kw",
	"price_per_kw",
	"inverter_kw",
	"inverter_kva",
	"inverter_phase",
	"inverter_qty",
	"electrical_accessories",
	"battery_ah",
	"battery_count",
	"voltage",
	"backup_watts",
	"litre",
	"water_heater_model",
	"qty",
	"drive_hp",
	"project_value",
	"others",
}

// editForField maps one posted form field to its typed edit command.
// Numeric fields follow form-input coercion: unparsable text becomes 0.
func editForField(name, value string) (services.Edit, error) {
	num := func() float64 {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return f
	}
	count := func() int {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return n
	}

	switch name {
	case "project_value":
		return services.SetProjectValue{Value: num()}, nil
	case "gst_percentage":
		return services.SetGSTPercentage{Percent: num()}, nil
	case "others":
		return services.SetOthers{Text: strings.TrimSpace(value)}, nil
	case "panel_watts":
		return services.SetPanelWatts{Watts: strings.TrimSpace(value)}, nil
	case "dcr_panel_count":
		return services.SetDCRPanelCount{Count: count()}, nil
	case "non_dcr_panel_count":
		return services.SetNonDCRPanelCount{Count: count()}, nil
	case "panel_count":
		return services.SetPanelCount{Count: count()}, nil
	case "system_kw":
		return services.SetSystemKW{KW: num()}, nil
	case "price_per_kw":
		return services.SetPricePerKW{Price: num()}, nil
	case "inverter_kw":
		return services.SetInverterKW{KW: num()}, nil
	case "inverter_kva":
		return services.SetInverterKVA{KVA: strings.TrimSpace(value)}, nil
	case "inverter_phase":
		phase := services.Phase(strings.TrimSpace(value))
		if phase != services.SinglePhase && phase != services.ThreePhase {
			return nil, fmt.Errorf("invalid inverter phase %q", value)
		}
		return services.SetInverterPhase{Phase: phase}, nil
	case "inverter_qty":
		return services.SetInverterQty{Qty: count()}, nil
	case "electrical_accessories":
		return services.SetElectricalAccessories{Enabled: value == "on" || value == "true"}, nil
	case "battery_ah":
		return services.SetBatteryAH{AH: num()}, nil
	case "battery_count":
		return services.SetBatteryCount{Count: count()}, nil
	case "voltage":
		return services.SetVoltage{Voltage: num()}, nil
	case "backup_watts":
		return services.SetBackupWatts{Watts: num()}, nil
	case "litre":
		return services.SetLitre{Litre: count()}, nil
	case "water_heater_model":
		return services.SetWaterHeaterModel{Model: strings.TrimSpace(value)}, nil
	case "qty":
		return services.SetQty{Qty: count()}, nil
	case "drive_hp":
		return services.SetDriveHP{HP: strings.TrimSpace(value)}, nil
	}
	return nil, fmt.Errorf("unknown field %q", name)
}

// applyProjectEdits runs edits against a stored project, persists the derived
// record, re-aggregates the quotation and returns the JSON payload for the
// wizard. Shared by the edit endpoint and the backup scenario endpoints.
func applyProjectEdits(app *pocketbase.PocketBase, e *core.RequestEvent, quotationID, projectID string, edits ...services.Edit) error {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{"error": "Quotation not found"})
	}

	rec, err := app.FindRecordById("projects", projectID)
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{"error": "Project not found"})
	}
	if rec.GetString("quotation") != quotationID {
		return e.JSON(http.StatusForbidden, map[string]string{"error": "Project does not belong to this quotation"})
	}

	project := projectFromRecord(rec)
	derived, err := services.Apply(project, quotation.GetString("property_type"), edits...)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrScenarioLimit),
			errors.Is(err, services.ErrScenarioIndex),
			errors.Is(err, services.ErrEditNotApplicable):
			return e.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		log.Printf("project_edit: derivation failed for project %s: %v", projectID, err)
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Derivation failed"})
	}

	writeProjectFields(rec, derived)
	if err := app.Save(rec); err != nil {
		log.Printf("project_edit: could not save project %s: %v", projectID, err)
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not save project"})
	}

	totals, err := recalcQuotationTotals(app, quotation)
	if err != nil {
		log.Printf("project_edit: could not re-aggregate quotation %s: %v", quotationID, err)
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not update quotation totals"})
	}

	return e.JSON(http.StatusOK, map[string]any{
		"project": projectToJSON(rec, derived),
		"totals":  totalsToJSON(totals),
	})
}

// HandleProjectEdit handles POST /quotations/{quotationId}/projects/{id}/edit.
// Each posted form field becomes one edit command; the engine re-derives the
// project, the record is saved and the quotation totals are recomputed.
func HandleProjectEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("quotationId")
		projectID := e.Request.PathValue("id")

		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		var edits []services.Edit
		for _, field := range editableFields {
			if !e.Request.Form.Has(field) {
				continue
			}
			edit, err := editForField(field, e.Request.FormValue(field))
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			edits = append(edits, edit)
		}
		if len(edits) == 0 {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "No editable field in request"})
		}

		return applyProjectEdits(app, e, quotationID, projectID, edits...)
	}
}
