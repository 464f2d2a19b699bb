// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/collections"
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

// CreateTestProductType creates a product type record and returns it.
func CreateTestProductType(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("product_types")
	if err != nil {
		t.Fatalf("failed to find product_types collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("display_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product type: %v", err)
	}

	return record
}

// CreateTestMake creates a product make record linked to a type.
func CreateTestMake(t *testing.T, app *pocketbase.PocketBase, typeID, name string, active bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("product_makes")
	if err != nil {
		t.Fatalf("failed to find product_makes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("product_type", typeID)
	record.Set("active", active)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test make: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record. The properties map may be nil
// for products classified by type name only.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, typeID, makeID, name string, capacity float64, properties map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("product_type", typeID)
	if makeID != "" {
		record.Set("product_make", makeID)
	}
	record.Set("capacity", capacity)
	if properties != nil {
		record.Set("properties", properties)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestProjectPrice creates a project price template record.
func CreateTestProjectPrice(t *testing.T, app *pocketbase.PocketBase, name string, capacity, pricePerKWA, totalValue float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("project_prices")
	if err != nil {
		t.Fatalf("failed to find project_prices collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("project_capacity", capacity)
	record.Set("price_per_kwa", pricePerKWA)
	record.Set("total_project_value", totalValue)
	record.Set("netmeter_amount", 2500)
	record.Set("structure_amount", 15000)
	record.Set("subsidy_amount", 78000)
	record.Set("state_subsidy", 10000)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project price: %v", err)
	}

	return record
}

// CreateTestBOMDetail creates a BOM line linked to a project price and product.
func CreateTestBOMDetail(t *testing.T, app *pocketbase.PocketBase, projectPriceID, productID string, quantity float64, description string, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("bom_details")
	if err != nil {
		t.Fatalf("failed to find bom_details collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project_price", projectPriceID)
	record.Set("product", productID)
	record.Set("quantity", quantity)
	record.Set("description", description)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test BOM detail: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation record with sensible defaults.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, number, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_number", number)
	record.Set("quotation_date", "2026-08-01")
	record.Set("valid_till", "2026-08-31")
	record.Set("user_id", "u1")
	record.Set("customer_name", customerName)
	record.Set("mobile_number", "9876543210")
	record.Set("state_id", "1")
	record.Set("project_capacity", 6.6)
	record.Set("price_per_kw", 45000)
	record.Set("total_project_value", 297000)
	record.Set("gst_rate", 18)
	record.Set("status", "draft")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestSalesOrder creates a sales order record.
func CreateTestSalesOrder(t *testing.T, app *pocketbase.PocketBase, number, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("sales_orders")
	if err != nil {
		t.Fatalf("failed to find sales_orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("order_number", number)
	record.Set("order_date", "2026-08-05")
	record.Set("customer_name", customerName)
	record.Set("mobile_number", "9876543210")
	record.Set("total_amount", 297000)
	record.Set("status", "open")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test sales order: %v", err)
	}

	return record
}

// SeedSolarCatalog creates the minimal catalog used by form-patch tests:
// a panel product (330Wp), an inverter and an ACDB, and returns their records
// keyed by a short name.
func SeedSolarCatalog(t *testing.T, app *pocketbase.PocketBase) map[string]*core.Record {
	t.Helper()

	records := make(map[string]*core.Record)

	panelType := CreateTestProductType(t, app, "Panel")
	inverterType := CreateTestProductType(t, app, "Inverter")
	structureType := CreateTestProductType(t, app, "Structure")
	acdbType := CreateTestProductType(t, app, "ACDB")

	panelMake := CreateTestMake(t, app, panelType.Id, "Waaree", true)
	retiredMake := CreateTestMake(t, app, panelType.Id, "Vikram Solar", false)
	records["panel_make"] = panelMake
	records["retired_make"] = retiredMake

	records["panel"] = CreateTestProduct(t, app, panelType.Id, panelMake.Id, "Waaree 330Wp Poly", 330,
		map[string]any{"panel": map[string]any{"warranty": "25", "type": "Polycrystalline"}})
	records["retired_panel"] = CreateTestProduct(t, app, panelType.Id, retiredMake.Id, "Vikram 545Wp Mono", 545,
		map[string]any{"panel": map[string]any{"warranty": "25", "type": "Mono PERC"}})
	records["inverter"] = CreateTestProduct(t, app, inverterType.Id, "", "Growatt 6kW", 6,
		map[string]any{"inverter": map[string]any{"warranty": "10", "type": "String"}})
	records["structure"] = CreateTestProduct(t, app, structureType.Id, "", "GI Structure", 0,
		map[string]any{"structure": map[string]any{"material": "GI 2m elevated", "warranty": "5"}})
	records["acdb"] = CreateTestProduct(t, app, acdbType.Id, "", "4-Way ACDB", 0, nil)

	return records
}
