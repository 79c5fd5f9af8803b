package services

// Edit is a typed field edit applied by the derivation engine. One command
// type exists per editable field, so which fields exist on which project
// variant is checked by the compiler rather than through stringly-typed
// config keys.
type Edit interface {
	isEdit()
}

// ── Common fields ────────────────────────────────────────────────────────

// SetProjectValue sets the customer-visible unit price including GST.
type SetProjectValue struct{ Value float64 }

// SetGSTPercentage sets the tax rate.
type SetGSTPercentage struct{ Percent float64 }

// SetOthers sets the free-form note. Nothing is derived from it.
type SetOthers struct{ Text string }

// ── Solar panel fields (on-grid, off-grid, hybrid, water pump) ───────────

// SetPanelWatts sets the per-panel watt rating as entered, free text.
type SetPanelWatts struct{ Watts string }

// SetDCRPanelCount sets the count of domestic-content-rule panels.
type SetDCRPanelCount struct{ Count int }

// SetNonDCRPanelCount sets the count of non-DCR panels.
type SetNonDCRPanelCount struct{ Count int }

// SetPanelCount sets the total panel count directly; the delta is
// redistributed into the DCR/non-DCR split.
type SetPanelCount struct{ Count int }

// ── Inverter fields (solar variants) ─────────────────────────────────────

// SetSystemKW overrides the derived system capacity and re-derives pricing
// from it. The next panel edit recomputes it from the panel fields again.
type SetSystemKW struct{ KW float64 }

// SetPricePerKW sets the per-kW rate and re-derives the project value.
type SetPricePerKW struct{ Price float64 }

// SetInverterKW sets the inverter real-power rating.
type SetInverterKW struct{ KW float64 }

// SetInverterKVA sets the inverter apparent-power rating as entered
// (off-grid/hybrid only).
type SetInverterKVA struct{ KVA string }

// SetInverterPhase manually overrides the wiring phase. The override holds
// until the next capacity edit re-applies the threshold rule.
type SetInverterPhase struct{ Phase Phase }

// SetInverterQty sets the inverter count.
type SetInverterQty struct{ Qty int }

// SetElectricalAccessories toggles the electrical accessories line.
type SetElectricalAccessories struct{ Enabled bool }

// ── Battery fields (off-grid, hybrid) ────────────────────────────────────

// SetBatteryAH sets the per-battery ampere-hour capacity.
type SetBatteryAH struct{ AH float64 }

// SetBatteryCount sets the battery count.
type SetBatteryCount struct{ Count int }

// SetVoltage sets the battery bank voltage. Nothing is derived from it.
type SetVoltage struct{ Voltage float64 }

// SetBackupWatts manually overrides the estimated backup watts. The override
// is discarded as soon as a battery spec changes again.
type SetBackupWatts struct{ Watts float64 }

// AddUsageScenario appends a usage-watts scenario to the backup table.
type AddUsageScenario struct{ Watts float64 }

// SetUsageWatts edits the usage watts of an existing scenario.
type SetUsageWatts struct {
	Index int
	Watts float64
}

// RemoveUsageScenario deletes a scenario and its derived hours.
type RemoveUsageScenario struct{ Index int }

// ── Service variant fields ───────────────────────────────────────────────

// SetLitre sets the water heater tank size.
type SetLitre struct{ Litre int }

// SetWaterHeaterModel sets the water heater model name.
type SetWaterHeaterModel struct{ Model string }

// SetQty sets the unit quantity of a service variant.
type SetQty struct{ Qty int }

// SetDriveHP sets the pump drive rating, mirrored into the legacy hp field.
type SetDriveHP struct{ HP string }

func (SetProjectValue) isEdit()          {}
func (SetGSTPercentage) isEdit()         {}
func (SetOthers) isEdit()                {}
func (SetPanelWatts) isEdit()            {}
func (SetDCRPanelCount) isEdit()         {}
func (SetNonDCRPanelCount) isEdit()      {}
func (SetPanelCount) isEdit()            {}
func (SetSystemKW) isEdit()              {}
func (SetPricePerKW) isEdit()            {}
func (SetInverterKW) isEdit()            {}
func (SetInverterKVA) isEdit()           {}
func (SetInverterPhase) isEdit()         {}
func (SetInverterQty) isEdit()           {}
func (SetElectricalAccessories) isEdit() {}
func (SetBatteryAH) isEdit()             {}
func (SetBatteryCount) isEdit()          {}
func (SetVoltage) isEdit()               {}
func (SetBackupWatts) isEdit()           {}
func (AddUsageScenario) isEdit()         {}
func (SetUsageWatts) isEdit()            {}
func (RemoveUsageScenario) isEdit()      {}
func (SetLitre) isEdit()                 {}
func (SetWaterHeaterModel) isEdit()      {}
func (SetQty) isEdit()                   {}
func (SetDriveHP) isEdit()               {}
