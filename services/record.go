// Package services holds the quotation derivation engine: pure functions that
// keep every derived field of a project record consistent with the fields the
// salesperson actually edits.
package services

// ProjectType identifies the kind of installation a project record describes.
type ProjectType string

const (
	ProjectOnGrid      ProjectType = "on_grid"
	ProjectOffGrid     ProjectType = "off_grid"
	ProjectHybrid      ProjectType = "hybrid"
	ProjectWaterHeater ProjectType = "water_heater"
	ProjectWaterPump   ProjectType = "water_pump"
)

// ProjectTypes lists every valid project type in display order.
var ProjectTypes = []ProjectType{
	ProjectOnGrid,
	ProjectOffGrid,
	ProjectHybrid,
	ProjectWaterHeater,
	ProjectWaterPump,
}

// Valid reports whether t is one of the known project types.
func (t ProjectType) Valid() bool {
	switch t {
	case ProjectOnGrid, ProjectOffGrid, ProjectHybrid, ProjectWaterHeater, ProjectWaterPump:
		return true
	}
	return false
}

// Phase is the inverter wiring phase, chosen from the system capacity.
type Phase string

const (
	SinglePhase Phase = "single_phase"
	ThreePhase  Phase = "three_phase"
)

// DefaultSolarGSTPercent is the GST rate applied to new solar projects.
// The two service-only variants (water heater, water pump) default to 0.
const DefaultSolarGSTPercent = 8.9

// SolarConfig carries the panel and inverter fields shared by the on-grid,
// off-grid and hybrid variants. PanelWatts is free text as entered; the
// numeric value is always re-parsed when system capacity is derived.
type SolarConfig struct {
	PanelWatts            string
	DCRPanelCount         int
	NonDCRPanelCount      int
	PanelCount            int
	SystemKW              float64
	PricePerKW            float64
	InverterKW            float64
	InverterKVA           string // off-grid/hybrid only; text as entered
	InverterPhase         Phase
	InverterQty           int
	ElectricalAccessories bool
	ElectricalCount       int
}

// BackupSolutions is the battery runtime estimation table: one backup-watts
// figure and up to MaxBackupScenarios usage scenarios with aligned hours.
type BackupSolutions struct {
	BackupWatts    float64
	UsageWatts     []float64
	BackupHours    []float64
	ManuallyEdited bool
}

// BatteryConfig carries the battery bank fields of off-grid/hybrid projects.
type BatteryConfig struct {
	BatteryAH    float64
	BatteryCount int
	Voltage      float64
	Backup       BackupSolutions
}

// WaterHeaterConfig carries the fields of the solar water heater variant.
type WaterHeaterConfig struct {
	Litre int
	Qty   int
	Model string
}

// WaterPumpConfig carries the fields of the solar water pump variant.
// DriveHP and HP are kept mirrored for compatibility with older records.
type WaterPumpConfig struct {
	DriveHP          string
	HP               string
	PanelWatts       string
	DCRPanelCount    int
	NonDCRPanelCount int
	PanelCount       int
	Qty              int
}

// Project is one configurable installation inside a quotation. Exactly one of
// the variant configs is set, matching Type. All money fields are rupees
// rounded with RoundMoney; ProjectValue is the customer-visible unit price
// including GST.
type Project struct {
	Type ProjectType

	ProjectValue    float64
	GSTPercentage   float64
	BasePrice       float64
	GSTAmount       float64
	SubsidyAmount   float64
	CustomerPayment float64
	Others          string

	Solar       *SolarConfig
	Battery     *BatteryConfig
	WaterHeater *WaterHeaterConfig
	WaterPump   *WaterPumpConfig
}

// NewProject returns a project of the given type with its per-type defaults
// applied: GST 8.9% for solar variants, 0 for service variants, single phase,
// quantity 1 for the service variants.
func NewProject(t ProjectType) Project {
	p := Project{Type: t}
	switch t {
	case ProjectOnGrid:
		p.GSTPercentage = DefaultSolarGSTPercent
		p.Solar = &SolarConfig{InverterPhase: SinglePhase}
	case ProjectOffGrid, ProjectHybrid:
		p.GSTPercentage = DefaultSolarGSTPercent
		p.Solar = &SolarConfig{InverterPhase: SinglePhase}
		p.Battery = &BatteryConfig{}
	case ProjectWaterHeater:
		p.WaterHeater = &WaterHeaterConfig{Qty: 1}
	case ProjectWaterPump:
		p.WaterPump = &WaterPumpConfig{Qty: 1}
	}
	return p
}

// IsSolar reports whether the project is one of the panel-based grid variants.
func (p *Project) IsSolar() bool {
	return p.Type == ProjectOnGrid || p.Type == ProjectOffGrid || p.Type == ProjectHybrid
}

// HasBattery reports whether the project carries a battery bank.
func (p *Project) HasBattery() bool {
	return p.Type == ProjectOffGrid || p.Type == ProjectHybrid
}

// IsService reports whether the project is one of the two service-only
// variants, which are never subsidized and price per unit.
func (p *Project) IsService() bool {
	return p.Type == ProjectWaterHeater || p.Type == ProjectWaterPump
}

// Qty returns the unit quantity for service variants and 1 otherwise.
func (p *Project) Qty() int {
	switch p.Type {
	case ProjectWaterHeater:
		return p.WaterHeater.Qty
	case ProjectWaterPump:
		return p.WaterPump.Qty
	}
	return 1
}

// Clone returns a deep copy of the project. The engine never mutates its
// input; every Apply works on a clone.
func (p Project) Clone() Project {
	out := p
	if p.Solar != nil {
		solar := *p.Solar
		out.Solar = &solar
	}
	if p.Battery != nil {
		battery := *p.Battery
		battery.Backup.UsageWatts = append([]float64(nil), p.Battery.Backup.UsageWatts...)
		battery.Backup.BackupHours = append([]float64(nil), p.Battery.Backup.BackupHours...)
		out.Battery = &battery
	}
	if p.WaterHeater != nil {
		wh := *p.WaterHeater
		out.WaterHeater = &wh
	}
	if p.WaterPump != nil {
		wp := *p.WaterPump
		out.WaterPump = &wp
	}
	return out
}
