package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// projectFromRecord rebuilds the in-memory project from a stored record so it
// can be run through the derivation engine.
func projectFromRecord(rec *core.Record) services.Project {
	p := services.NewProject(services.ProjectType(rec.GetString("project_type")))

	p.ProjectValue = rec.GetFloat("project_value")
	p.GSTPercentage = rec.GetFloat("gst_percentage")
	p.BasePrice = rec.GetFloat("base_price")
	p.GSTAmount = rec.GetFloat("gst_amount")
	p.SubsidyAmount = rec.GetFloat("subsidy_amount")
	p.CustomerPayment = rec.GetFloat("customer_payment")
	p.Others = rec.GetString("others")

	if p.Solar != nil {
		p.Solar.PanelWatts = rec.GetString("panel_watts")
		p.Solar.DCRPanelCount = rec.GetInt("dcr_panel_count")
		p.Solar.NonDCRPanelCount = rec.GetInt("non_dcr_panel_count")
		p.Solar.PanelCount = rec.GetInt("panel_count")
		p.Solar.SystemKW = rec.GetFloat("system_kw")
		p.Solar.PricePerKW = rec.GetFloat("price_per_kw")
		p.Solar.InverterKW = rec.GetFloat("inverter_kw")
		p.Solar.InverterKVA = rec.GetString("inverter_kva")
		if phase := services.Phase(rec.GetString("inverter_phase")); phase != "" {
			p.Solar.InverterPhase = phase
		}
		p.Solar.InverterQty = rec.GetInt("inverter_qty")
		p.Solar.ElectricalAccessories = rec.GetBool("electrical_accessories")
		p.Solar.ElectricalCount = rec.GetInt("electrical_count")
	}

	if p.Battery != nil {
		p.Battery.BatteryAH = rec.GetFloat("battery_ah")
		p.Battery.BatteryCount = rec.GetInt("battery_count")
		p.Battery.Voltage = rec.GetFloat("voltage")
		p.Battery.Backup.BackupWatts = rec.GetFloat("backup_watts")
		p.Battery.Backup.ManuallyEdited = rec.GetBool("backup_manually_edited")
		if err := rec.UnmarshalJSONField("usage_watts", &p.Battery.Backup.UsageWatts); err != nil {
			log.Printf("record: project %s: could not parse usage_watts: %v", rec.Id, err)
		}
		if err := rec.UnmarshalJSONField("backup_hours", &p.Battery.Backup.BackupHours); err != nil {
			log.Printf("record: project %s: could not parse backup_hours: %v", rec.Id, err)
		}
	}

	if p.WaterHeater != nil {
		p.WaterHeater.Litre = rec.GetInt("litre")
		if qty := rec.GetInt("qty"); qty > 0 {
			p.WaterHeater.Qty = qty
		}
		p.WaterHeater.Model = rec.GetString("water_heater_model")
	}

	if p.WaterPump != nil {
		p.WaterPump.DriveHP = rec.GetString("drive_hp")
		p.WaterPump.HP = rec.GetString("hp")
		p.WaterPump.PanelWatts = rec.GetString("panel_watts")
		p.WaterPump.DCRPanelCount = rec.GetInt("dcr_panel_count")
		p.WaterPump.NonDCRPanelCount = rec.GetInt("non_dcr_panel_count")
		p.WaterPump.PanelCount = rec.GetInt("panel_count")
		if qty := rec.GetInt("qty"); qty > 0 {
			p.WaterPump.Qty = qty
		}
	}

	return p
}

// writeProjectFields stores every field of a derived project back onto the
// record. The record's quotation relation and sort order are left untouched.
func writeProjectFields(rec *core.Record, p services.Project) {
	rec.Set("project_type", string(p.Type))
	rec.Set("project_value", p.ProjectValue)
	rec.Set("gst_percentage", p.GSTPercentage)
	rec.Set("base_price", p.BasePrice)
	rec.Set("gst_amount", p.GSTAmount)
	rec.Set("subsidy_amount", p.SubsidyAmount)
	rec.Set("customer_payment", p.CustomerPayment)
	rec.Set("others", p.Others)

	if p.Solar != nil {
		rec.Set("panel_watts", p.Solar.PanelWatts)
		rec.Set("dcr_panel_count", p.Solar.DCRPanelCount)
		rec.Set("non_dcr_panel_count", p.Solar.NonDCRPanelCount)
		rec.Set("panel_count", p.Solar.PanelCount)
		rec.Set("system_kw", p.Solar.SystemKW)
		rec.Set("price_per_kw", p.Solar.PricePerKW)
		rec.Set("inverter_kw", p.Solar.InverterKW)
		rec.Set("inverter_kva", p.Solar.InverterKVA)
		rec.Set("inverter_phase", string(p.Solar.InverterPhase))
		rec.Set("inverter_qty", p.Solar.InverterQty)
		rec.Set("electrical_accessories", p.Solar.ElectricalAccessories)
		rec.Set("electrical_count", p.Solar.ElectricalCount)
	}

	if p.Battery != nil {
		rec.Set("battery_ah", p.Battery.BatteryAH)
		rec.Set("battery_count", p.Battery.BatteryCount)
		rec.Set("voltage", p.Battery.Voltage)
		rec.Set("backup_watts", p.Battery.Backup.BackupWatts)
		rec.Set("backup_manually_edited", p.Battery.Backup.ManuallyEdited)
		rec.Set("usage_watts", p.Battery.Backup.UsageWatts)
		rec.Set("backup_hours", p.Battery.Backup.BackupHours)
	}

	if p.WaterHeater != nil {
		rec.Set("litre", p.WaterHeater.Litre)
		rec.Set("qty", p.WaterHeater.Qty)
		rec.Set("water_heater_model", p.WaterHeater.Model)
	}

	if p.WaterPump != nil {
		rec.Set("drive_hp", p.WaterPump.DriveHP)
		rec.Set("hp", p.WaterPump.HP)
		rec.Set("panel_watts", p.WaterPump.PanelWatts)
		rec.Set("dcr_panel_count", p.WaterPump.DCRPanelCount)
		rec.Set("non_dcr_panel_count", p.WaterPump.NonDCRPanelCount)
		rec.Set("panel_count", p.WaterPump.PanelCount)
		rec.Set("qty", p.WaterPump.Qty)
	}
}

// projectJSON is the wire shape of a derived project returned to the wizard
// front end after an edit.
type projectJSON struct {
	ID              string  `json:"id"`
	ProjectType     string  `json:"projectType"`
	SortOrder       int     `json:"sortOrder"`
	ProjectValue    float64 `json:"projectValue"`
	GSTPercentage   float64 `json:"gstPercentage"`
	BasePrice       float64 `json:"basePrice"`
	GSTAmount       float64 `json:"gstAmount"`
	SubsidyAmount   float64 `json:"subsidyAmount"`
	CustomerPayment float64 `json:"customerPayment"`
	Others          string  `json:"others,omitempty"`

	PanelWatts            string  `json:"panelWatts,omitempty"`
	DCRPanelCount         int     `json:"dcrPanelCount,omitempty"`
	NonDCRPanelCount      int     `json:"nonDcrPanelCount,omitempty"`
	PanelCount            int     `json:"panelCount,omitempty"`
	SystemKW              float64 `json:"systemKw,omitempty"`
	PricePerKW            float64 `json:"pricePerKw,omitempty"`
	InverterKW            float64 `json:"inverterKw,omitempty"`
	InverterKVA           string  `json:"inverterKva,omitempty"`
	InverterPhase         string  `json:"inverterPhase,omitempty"`
	InverterQty           int     `json:"inverterQty,omitempty"`
	ElectricalAccessories bool    `json:"electricalAccessories,omitempty"`
	ElectricalCount       int     `json:"electricalCount,omitempty"`

	BatteryAH      float64   `json:"batteryAh,omitempty"`
	BatteryCount   int       `json:"batteryCount,omitempty"`
	Voltage        float64   `json:"voltage,omitempty"`
	BackupWatts    float64   `json:"backupWatts,omitempty"`
	ManuallyEdited bool      `json:"backupManuallyEdited,omitempty"`
	UsageWatts     []float64 `json:"usageWatts,omitempty"`
	BackupHours    []float64 `json:"backupHours,omitempty"`

	Litre            int    `json:"litre,omitempty"`
	Qty              int    `json:"qty,omitempty"`
	WaterHeaterModel string `json:"waterHeaterModel,omitempty"`
	DriveHP          string `json:"driveHp,omitempty"`
}

func projectToJSON(rec *core.Record, p services.Project) projectJSON {
	out := projectJSON{
		ID:              rec.Id,
		ProjectType:     string(p.Type),
		SortOrder:       rec.GetInt("sort_order"),
		ProjectValue:    p.ProjectValue,
		GSTPercentage:   p.GSTPercentage,
		BasePrice:       p.BasePrice,
		GSTAmount:       p.GSTAmount,
		SubsidyAmount:   p.SubsidyAmount,
		CustomerPayment: p.CustomerPayment,
		Others:          p.Others,
	}
	if p.Solar != nil {
		out.PanelWatts = p.Solar.PanelWatts
		out.DCRPanelCount = p.Solar.DCRPanelCount
		out.NonDCRPanelCount = p.Solar.NonDCRPanelCount
		out.PanelCount = p.Solar.PanelCount
		out.SystemKW = p.Solar.SystemKW
		out.PricePerKW = p.Solar.PricePerKW
		out.InverterKW = p.Solar.InverterKW
		out.InverterKVA = p.Solar.InverterKVA
		out.InverterPhase = string(p.Solar.InverterPhase)
		out.InverterQty = p.Solar.InverterQty
		out.ElectricalAccessories = p.Solar.ElectricalAccessories
		out.ElectricalCount = p.Solar.ElectricalCount
	}
	if p.Battery != nil {
		out.BatteryAH = p.Battery.BatteryAH
		out.BatteryCount = p.Battery.BatteryCount
		out.Voltage = p.Battery.Voltage
		out.BackupWatts = p.Battery.Backup.BackupWatts
		out.ManuallyEdited = p.Battery.Backup.ManuallyEdited
		out.UsageWatts = p.Battery.Backup.UsageWatts
		out.BackupHours = p.Battery.Backup.BackupHours
	}
	if p.WaterHeater != nil {
		out.Litre = p.WaterHeater.Litre
		out.Qty = p.WaterHeater.Qty
		out.WaterHeaterModel = p.WaterHeater.Model
	}
	if p.WaterPump != nil {
		out.DriveHP = p.WaterPump.DriveHP
		out.PanelWatts = p.WaterPump.PanelWatts
		out.DCRPanelCount = p.WaterPump.DCRPanelCount
		out.NonDCRPanelCount = p.WaterPump.NonDCRPanelCount
		out.PanelCount = p.WaterPump.PanelCount
		out.Qty = p.WaterPump.Qty
	}
	return out
}
