// Package collections creates and seeds the application's PocketBase
// collections.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures all collections: the product
// catalog, project price templates with their BOM lines, and the
// quotation/sales document collections.
func Setup(app *pocketbase.PocketBase) {
	productTypes := ensureCollection(app, "product_types", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "display_order", Required: false})
	})

	productMakes := ensureCollection(app, "product_makes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "product_type",
			Required:     false,
			CollectionId: productTypes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.BoolField{Name: "active"})
	})

	products := ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "product_type",
			Required:     true,
			CollectionId: productTypes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "product_make",
			Required:     false,
			CollectionId: productMakes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "capacity", Required: false})
		c.Fields.Add(&core.JSONField{Name: "properties"})
	})

	projectPrices := ensureCollection(app, "project_prices", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "project_capacity", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_per_kwa", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_project_value", Required: false})
		c.Fields.Add(&core.NumberField{Name: "netmeter_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "structure_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subsidy_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "state_subsidy", Required: false})
	})

	ensureCollection(app, "bom_details", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project_price",
			Required:      true,
			CollectionId:  projectPrices.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "product",
			Required:     true,
			CollectionId: products.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quotation_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "quotation_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "valid_till", Required: true})
		c.Fields.Add(&core.TextField{Name: "user_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "mobile_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "state_id", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "project_price",
			Required:     false,
			CollectionId: projectPrices.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "project_capacity", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_per_kw", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_project_value", Required: false})
		c.Fields.Add(&core.NumberField{Name: "netmeter_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "stamp_charges", Required: false})
		c.Fields.Add(&core.NumberField{Name: "state_government_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "structure_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "additional_cost_amount_1", Required: false})
		c.Fields.Add(&core.NumberField{Name: "additional_cost_amount_2", Required: false})
		c.Fields.Add(&core.NumberField{Name: "discount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "gst_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subsidy_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "state_subsidy_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "gst_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_payable", Required: false})
		c.Fields.Add(&core.NumberField{Name: "effective_cost", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "sent", "accepted", "rejected"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	salesOrders := ensureCollection(app, "sales_orders", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "order_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "order_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "mobile_number", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "quotation",
			Required:     false,
			CollectionId: quotations.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "total_amount", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"open", "confirmed", "delivered", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	shipments := ensureCollection(app, "shipments", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "shipment_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "shipment_date", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "sales_order",
			Required:     false,
			CollectionId: salesOrders.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "transporter_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "vehicle_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "lr_number", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"pending", "in_transit", "delivered"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "delivery_challans", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "challan_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "challan_date", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "shipment",
			Required:     false,
			CollectionId: shipments.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "vehicle_number", Required: false})
		c.Fields.Add(&core.JSONField{Name: "items"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
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
