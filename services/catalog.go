package services

// PanelWattOptions returns the panel watt ratings offered in the wizard.
var PanelWattOptions = []string{
	"335",
	"400",
	"445",
	"535",
	"540",
	"545",
	"550",
	"575",
	"590",
}

// BatteryAHOptions returns the battery capacities offered for off-grid and
// hybrid systems.
var BatteryAHOptions = []int{40, 75, 100, 150, 200}

// InverterKVAOptions returns the inverter apparent-power ratings offered for
// off-grid and hybrid systems, as displayed.
var InverterKVAOptions = []string{
	"1 kVA",
	"2 kVA",
	"3 kVA",
	"5 kVA",
	"7.5 kVA",
	"10 kVA",
}

// WaterHeaterLitreOptions returns the tank sizes offered for water heaters.
var WaterHeaterLitreOptions = []int{100, 150, 200, 250, 300, 500}

// WaterPumpHPOptions returns the drive ratings offered for water pumps.
var WaterPumpHPOptions = []string{"1", "2", "3", "5", "7.5", "10"}

// ProjectTypeLabel maps a project type to its display name.
func ProjectTypeLabel(t ProjectType) string {
	switch t {
	case ProjectOnGrid:
		return "On-Grid Solar System"
	case ProjectOffGrid:
		return "Off-Grid Solar System"
	case ProjectHybrid:
		return "Hybrid Solar System"
	case ProjectWaterHeater:
		return "Solar Water Heater"
	case ProjectWaterPump:
		return "Solar Water Pump"
	}
	return string(t)
}
