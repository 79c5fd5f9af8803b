package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/services"
)

// Setup programmatically creates/ensures the quotations and projects
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quotation_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_phone", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "property_type",
			Required:  false,
			Values:    []string{"residential", "commercial"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "submitted", "discarded"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "advance_payment_percentage", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_system_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_gst_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_with_gst", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_subsidy_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_customer_payment", Required: false})
		c.Fields.Add(&core.NumberField{Name: "advance_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "balance_amount", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "project_type",
			Required:  true,
			Values:    projectTypeValues(),
			MaxSelect: 1,
		})

		// Common derived pricing fields.
		c.Fields.Add(&core.NumberField{Name: "project_value", Required: false})
		c.Fields.Add(&core.NumberField{Name: "gst_percentage", Required: false})
		c.Fields.Add(&core.NumberField{Name: "base_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "gst_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subsidy_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "customer_payment", Required: false})
		c.Fields.Add(&core.TextField{Name: "others", Required: false})

		// Panel and inverter fields (solar variants and water pump).
		c.Fields.Add(&core.TextField{Name: "panel_watts", Required: false})
		c.Fields.Add(&core.NumberField{Name: "dcr_panel_count", Required: false})
		c.Fields.Add(&core.NumberField{Name: "non_dcr_panel_count", Required: false})
		c.Fields.Add(&core.NumberField{Name: "panel_count", Required: false})
		c.Fields.Add(&core.NumberField{Name: "system_kw", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_per_kw", Required: false})
		c.Fields.Add(&core.NumberField{Name: "inverter_kw", Required: false})
		c.Fields.Add(&core.TextField{Name: "inverter_kva", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "inverter_phase",
			Required:  false,
			Values:    []string{string(services.SinglePhase), string(services.ThreePhase)},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "inverter_qty", Required: false})
		c.Fields.Add(&core.BoolField{Name: "electrical_accessories"})
		c.Fields.Add(&core.NumberField{Name: "electrical_count", Required: false})

		// Battery fields (off-grid/hybrid).
		c.Fields.Add(&core.NumberField{Name: "battery_ah", Required: false})
		c.Fields.Add(&core.NumberField{Name: "battery_count", Required: false})
		c.Fields.Add(&core.NumberField{Name: "voltage", Required: false})
		c.Fields.Add(&core.NumberField{Name: "backup_watts", Required: false})
		c.Fields.Add(&core.BoolField{Name: "backup_manually_edited"})
		c.Fields.Add(&core.JSONField{Name: "usage_watts", Required: false})
		c.Fields.Add(&core.JSONField{Name: "backup_hours", Required: false})

		// Service variant fields.
		c.Fields.Add(&core.NumberField{Name: "litre", Required: false})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: false})
		c.Fields.Add(&core.TextField{Name: "water_heater_model", Required: false})
		c.Fields.Add(&core.TextField{Name: "drive_hp", Required: false})
		c.Fields.Add(&core.TextField{Name: "hp", Required: false})
	})
}

func projectTypeValues() []string {
	values := make([]string, len(services.ProjectTypes))
	for i, t := range services.ProjectTypes {
		values[i] = string(t)
	}
	return values
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
