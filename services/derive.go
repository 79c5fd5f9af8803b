package services

import "errors"

var (
	// ErrScenarioLimit is returned when a sixth backup scenario is added.
	ErrScenarioLimit = errors.New("backup solutions: scenario limit reached")

	// ErrScenarioIndex is returned for edits addressing a scenario that
	// does not exist.
	ErrScenarioIndex = errors.New("backup solutions: no scenario at index")

	// ErrEditNotApplicable is returned when an edit addresses a field the
	// project's variant does not carry.
	ErrEditNotApplicable = errors.New("edit not applicable to project type")
)

// Apply runs one or more field edits through the derivation engine and
// returns the re-derived project. Edits are applied in order and each edit
// fully resolves its dependent fields before the next one runs, so edits to
// coupled fields (DCR count then total count) read each other's output.
//
// Apply never mutates its input. On error the returned project is the input
// unchanged. Applying the same edit twice yields the same result.
func Apply(p Project, propertyType string, edits ...Edit) (Project, error) {
	propertyType, _ = NormalizePropertyType(propertyType)

	out := p.Clone()
	for _, e := range edits {
		if err := out.applyEdit(e); err != nil {
			return p, err
		}
		out.resettle(propertyType)
	}
	return out, nil
}

// Recalculate re-derives the settlement fields without applying an edit.
// Used when the surrounding quotation changes (e.g. the customer's property
// type), which can move the subsidy.
func Recalculate(p Project, propertyType string) Project {
	propertyType, _ = NormalizePropertyType(propertyType)
	out := p.Clone()
	out.resettle(propertyType)
	return out
}

func (p *Project) applyEdit(e Edit) error {
	switch e := e.(type) {

	// ── Common fields ────────────────────────────────────────────────
	case SetProjectValue:
		p.ProjectValue = e.Value
		p.repriceFromProjectValue()

	case SetGSTPercentage:
		p.GSTPercentage = e.Percent
		if p.IsSolar() {
			// Rate-side edit: rebuild the project value from the
			// rounded capacity and per-kW rate.
			p.repriceFromRate()
		} else {
			p.repriceFromProjectValue()
		}

	case SetOthers:
		p.Others = e.Text

	// ── Panel fields ─────────────────────────────────────────────────
	case SetPanelWatts:
		switch {
		case p.Solar != nil:
			p.Solar.PanelWatts = e.Watts
			p.recalcSolarCapacity()
		case p.WaterPump != nil:
			p.WaterPump.PanelWatts = e.Watts
		default:
			return ErrEditNotApplicable
		}

	case SetDCRPanelCount:
		switch {
		case p.Solar != nil:
			p.Solar.DCRPanelCount = e.Count
			p.recalcSolarCapacity()
		case p.WaterPump != nil:
			p.WaterPump.DCRPanelCount = e.Count
			p.WaterPump.PanelCount = p.WaterPump.DCRPanelCount + p.WaterPump.NonDCRPanelCount
		default:
			return ErrEditNotApplicable
		}

	case SetNonDCRPanelCount:
		switch {
		case p.Solar != nil:
			p.Solar.NonDCRPanelCount = e.Count
			p.recalcSolarCapacity()
		case p.WaterPump != nil:
			p.WaterPump.NonDCRPanelCount = e.Count
			p.WaterPump.PanelCount = p.WaterPump.DCRPanelCount + p.WaterPump.NonDCRPanelCount
		default:
			return ErrEditNotApplicable
		}

	case SetPanelCount:
		switch {
		case p.Solar != nil:
			splitPanelCount(e.Count, &p.Solar.DCRPanelCount, &p.Solar.NonDCRPanelCount)
			p.recalcSolarCapacity()
		case p.WaterPump != nil:
			splitPanelCount(e.Count, &p.WaterPump.DCRPanelCount, &p.WaterPump.NonDCRPanelCount)
			p.WaterPump.PanelCount = e.Count
		default:
			return ErrEditNotApplicable
		}

	// ── Capacity and inverter fields ─────────────────────────────────
	case SetSystemKW:
		if p.Solar == nil {
			return ErrEditNotApplicable
		}
		p.Solar.SystemKW = e.KW
		p.repriceFromRate()

	case SetPricePerKW:
		if p.Solar == nil {
			return ErrEditNotApplicable
		}
		p.Solar.PricePerKW = e.Price
		p.repriceFromRate()

	case SetInverterKW:
		if p.Solar == nil {
			return ErrEditNotApplicable
		}
		p.Solar.InverterKW = e.KW
		p.recalcPhase()

	case SetInverterKVA:
		if p.Solar == nil || !p.HasBattery() {
			return ErrEditNotApplicable
		}
		p.Solar.InverterKVA = e.KVA
		p.recalcPhase()

	case SetInverterPhase:
		if p.Solar == nil {
			return ErrEditNotApplicable
		}
		// Manual override; holds until the next capacity edit.
		p.Solar.InverterPhase = e.Phase

	case SetInverterQty:
		if p.Solar == nil {
			return ErrEditNotApplicable
		}
		p.Solar.InverterQty = e.Qty
		p.recalcElectricalCount()

	case SetElectricalAccessories:
		if p.Solar == nil {
			return ErrEditNotApplicable
		}
		p.Solar.ElectricalAccessories = e.Enabled
		p.recalcElectricalCount()

	// ── Battery fields ───────────────────────────────────────────────
	case SetBatteryAH:
		if p.Battery == nil {
			return ErrEditNotApplicable
		}
		p.Battery.BatteryAH = e.AH
		recalcBackupWatts(p.Battery)

	case SetBatteryCount:
		if p.Battery == nil {
			return ErrEditNotApplicable
		}
		p.Battery.BatteryCount = e.Count
		recalcBackupWatts(p.Battery)

	case SetVoltage:
		if p.Battery == nil {
			return ErrEditNotApplicable
		}
		p.Battery.Voltage = e.Voltage

	case SetBackupWatts:
		if p.Battery == nil {
			return ErrEditNotApplicable
		}
		p.Battery.Backup.BackupWatts = e.Watts
		p.Battery.Backup.ManuallyEdited = true
		recalcBackupHours(p.Battery)

	case AddUsageScenario:
		if p.Battery == nil {
			return ErrEditNotApplicable
		}
		b := p.Battery
		if len(b.Backup.UsageWatts) >= MaxBackupScenarios {
			return ErrScenarioLimit
		}
		b.Backup.UsageWatts = append(b.Backup.UsageWatts, e.Watts)
		b.Backup.BackupHours = append(b.Backup.BackupHours,
			CalcBackupHours(b.Backup.BackupWatts, e.Watts))

	case SetUsageWatts:
		if p.Battery == nil {
			return ErrEditNotApplicable
		}
		b := p.Battery
		if e.Index < 0 || e.Index >= len(b.Backup.UsageWatts) {
			return ErrScenarioIndex
		}
		b.Backup.UsageWatts[e.Index] = e.Watts
		b.Backup.BackupHours[e.Index] = CalcBackupHours(b.Backup.BackupWatts, e.Watts)

	case RemoveUsageScenario:
		if p.Battery == nil {
			return ErrEditNotApplicable
		}
		b := p.Battery
		if e.Index < 0 || e.Index >= len(b.Backup.UsageWatts) {
			return ErrScenarioIndex
		}
		b.Backup.UsageWatts = append(b.Backup.UsageWatts[:e.Index], b.Backup.UsageWatts[e.Index+1:]...)
		b.Backup.BackupHours = append(b.Backup.BackupHours[:e.Index], b.Backup.BackupHours[e.Index+1:]...)

	// ── Service variant fields ───────────────────────────────────────
	case SetLitre:
		if p.WaterHeater == nil {
			return ErrEditNotApplicable
		}
		p.WaterHeater.Litre = e.Litre

	case SetWaterHeaterModel:
		if p.WaterHeater == nil {
			return ErrEditNotApplicable
		}
		p.WaterHeater.Model = e.Model

	case SetQty:
		switch {
		case p.WaterHeater != nil:
			p.WaterHeater.Qty = e.Qty
		case p.WaterPump != nil:
			p.WaterPump.Qty = e.Qty
		default:
			return ErrEditNotApplicable
		}

	case SetDriveHP:
		if p.WaterPump == nil {
			return ErrEditNotApplicable
		}
		p.WaterPump.DriveHP = e.HP
		p.WaterPump.HP = e.HP

	default:
		return ErrEditNotApplicable
	}
	return nil
}

// splitPanelCount redistributes a directly-edited total into the DCR/non-DCR
// split: shrink non-DCR first when the new total is below it, otherwise give
// the remainder to DCR.
func splitPanelCount(total int, dcr, nonDCR *int) {
	if total < *nonDCR {
		*nonDCR = total
		*dcr = 0
		return
	}
	*dcr = total - *nonDCR
}

// recalcSolarCapacity re-derives the coupled panel chain: total count, then
// system capacity, then the per-kW rate. The project value stays fixed on
// panel edits; only the rate moves.
func (p *Project) recalcSolarCapacity() {
	s := p.Solar
	s.PanelCount = s.DCRPanelCount + s.NonDCRPanelCount
	s.SystemKW = float64(ParsePanelWatts(s.PanelWatts)*s.PanelCount) / 1000
	p.recalcPricePerKW()
}

// recalcPricePerKW derives the per-kW rate from the current base price and
// the display-rounded capacity.
func (p *Project) recalcPricePerKW() {
	rkw := RoundSystemKW(p.Solar.SystemKW)
	if rkw == 0 {
		p.Solar.PricePerKW = 0
		return
	}
	p.Solar.PricePerKW = RoundMoney(p.BasePrice / rkw)
}

// repriceFromProjectValue is the forward pricing path: the GST-inclusive
// project value is authoritative and splits into base and tax.
func (p *Project) repriceFromProjectValue() {
	base := RoundMoney(p.ProjectValue / (1 + p.GSTPercentage/100))
	p.BasePrice = base
	p.GSTAmount = p.ProjectValue - base
	if p.Solar != nil {
		p.recalcPricePerKW()
	}
}

// repriceFromRate is the inverse pricing path for solar variants: capacity
// and per-kW rate rebuild the base price, tax and project value.
func (p *Project) repriceFromRate() {
	s := p.Solar
	base := RoundMoney(RoundSystemKW(s.SystemKW) * s.PricePerKW)
	gst := RoundMoney(base * p.GSTPercentage / 100)
	p.BasePrice = base
	p.GSTAmount = gst
	p.ProjectValue = base + gst
}

// recalcPhase applies the capacity threshold: below 6 the system wires
// single phase, at 6 and above three phase. For battery-backed variants the
// kVA text is authoritative when it parses; otherwise the kW rating is used.
// Re-running this on a capacity edit overwrites any manual phase override.
func (p *Project) recalcPhase() {
	s := p.Solar
	capacity := s.InverterKW
	if p.HasBattery() {
		if kva, ok := ParseCapacity(s.InverterKVA); ok {
			capacity = kva
		}
	}
	if capacity < 6 {
		s.InverterPhase = SinglePhase
	} else {
		s.InverterPhase = ThreePhase
	}
}

// recalcElectricalCount mirrors the inverter quantity into the accessories
// count while the accessories flag is on.
func (p *Project) recalcElectricalCount() {
	s := p.Solar
	if s.ElectricalAccessories {
		s.ElectricalCount = s.InverterQty
	} else {
		s.ElectricalCount = 0
	}
}

// resettle re-derives the settlement pair (subsidy, customer payment) after
// an edit. Solar variants subtract the subsidy from the project value.
// Service variants are never subsidized; their project value is a per-unit
// price and only the customer payment is multiplied by quantity (the
// base/GST split stays per-unit).
func (p *Project) resettle(propertyType string) {
	if p.IsSolar() {
		p.SubsidyAmount = Subsidy(p.Solar.SystemKW, propertyType, p.Type)
		p.CustomerPayment = p.ProjectValue - p.SubsidyAmount
		return
	}
	p.SubsidyAmount = 0
	p.CustomerPayment = p.ProjectValue * float64(p.Qty())
}
