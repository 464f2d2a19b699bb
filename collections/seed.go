package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type typeDef struct {
	name         string
	displayOrder int
}

type makeDef struct {
	name     string
	typeName string
	active   bool
}

type productDef struct {
	name       string
	typeName   string
	makeName   string
	capacity   float64
	properties map[string]any
}

type bomLineDef struct {
	sortOrder   int
	productName string
	quantity    float64
	description string
}

type projectPriceDef struct {
	name              string
	projectCapacity   float64
	pricePerKWA       float64
	totalProjectValue float64
	netmeterAmount    float64
	structureAmount   float64
	subsidyAmount     float64
	stateSubsidy      float64
	bomLines          []bomLineDef
}

var seedTypes = []typeDef{
	{"Structure", 1},
	{"Panel", 2},
	{"Inverter", 3},
	{"Hybrid Inverter", 4},
	{"Battery", 5},
	{"ACDB", 6},
	{"DCDB", 7},
	{"AC Cable", 8},
	{"DC Cable", 9},
	{"Earthing", 10},
	{"LA", 11},
}

var seedMakes = []makeDef{
	{"Waaree", "Panel", true},
	{"Adani Solar", "Panel", true},
	{"Vikram Solar", "Panel", false}, // deactivated; exercises the make fallback
	{"Growatt", "Inverter", true},
	{"Deye", "Hybrid Inverter", true},
	{"Exide", "Battery", true},
	{"Polycab", "AC Cable", true},
	{"Havells", "ACDB", true},
	{"Tata Steel", "Structure", true},
}

var seedProducts = []productDef{
	{
		name: "GI Elevated Structure 2m", typeName: "Structure", makeName: "Tata Steel",
		properties: map[string]any{
			"structure": map[string]any{"material": "GI 2m elevated", "warranty": "5", "type": "Elevated"},
		},
	},
	{
		name: "Waaree 330Wp Poly", typeName: "Panel", makeName: "Waaree", capacity: 330,
		properties: map[string]any{
			"panel": map[string]any{"warranty": "25", "type": "Polycrystalline"},
		},
	},
	{
		name: "Vikram 545Wp Mono PERC", typeName: "Panel", makeName: "Vikram Solar", capacity: 545,
		properties: map[string]any{
			"panel": map[string]any{"warranty": "25", "type": "Mono PERC"},
		},
	},
	{
		name: "Growatt 6kW String Inverter", typeName: "Inverter", makeName: "Growatt", capacity: 6,
		properties: map[string]any{
			"inverter": map[string]any{"warranty": "10", "type": "String"},
		},
	},
	{
		name: "Deye 5kW Hybrid Inverter", typeName: "Hybrid Inverter", makeName: "Deye", capacity: 5,
		properties: map[string]any{
			"hybrid_inverter": map[string]any{"warranty": "7", "type": "Hybrid"},
		},
	},
	{
		name: "Exide 150Ah Tubular Battery", typeName: "Battery", makeName: "Exide", capacity: 150,
		properties: map[string]any{
			"battery": map[string]any{"warranty": "5", "type": "Tubular"},
		},
	},
	{
		name: "Polycab 4sqmm AC Cable", typeName: "AC Cable", makeName: "Polycab", capacity: 4,
		properties: map[string]any{
			"ac_cable": map[string]any{"type": "Copper", "description": "4 sqmm 3-core copper"},
		},
	},
	{
		name: "Polycab 6sqmm DC Cable", typeName: "DC Cable", makeName: "Polycab", capacity: 6,
		properties: map[string]any{
			"dc_cable": map[string]any{"type": "Copper", "description": "6 sqmm single-core DC"},
		},
	},
	// The next four classify by product type name, not by property key.
	{name: "Havells 4-Way ACDB", typeName: "ACDB", makeName: "Havells"},
	{name: "2-In 1-Out DCDB", typeName: "DCDB"},
	{name: "Chemical Earthing Kit", typeName: "Earthing"},
	{name: "Copper Lightning Arrester", typeName: "LA"},
}

var seedProjectPrices = []projectPriceDef{
	{
		name:              "6.6kW Residential On-Grid",
		projectCapacity:   6.6,
		pricePerKWA:       45000,
		totalProjectValue: 297000,
		netmeterAmount:    2500,
		structureAmount:   15000,
		subsidyAmount:     78000,
		stateSubsidy:      10000,
		bomLines: []bomLineDef{
			{1, "GI Elevated Structure 2m", 1, "Module mounting structure"},
			{2, "Waaree 330Wp Poly", 20, "Solar PV modules"},
			{3, "Growatt 6kW String Inverter", 1, "Grid-tie inverter"},
			{4, "Havells 4-Way ACDB", 1, "4-way ACDB"},
			{5, "2-In 1-Out DCDB", 1, "DCDB with SPD"},
			{6, "Polycab 4sqmm AC Cable", 30, "AC cabling"},
			{7, "Polycab 6sqmm DC Cable", 40, "DC cabling"},
			{8, "Chemical Earthing Kit", 3, "Earthing kit with chemical compound"},
			{9, "Copper Lightning Arrester", 1, "Lightning arrester"},
		},
	},
	{
		name:              "5.45kW Hybrid with Storage",
		projectCapacity:   5.45,
		pricePerKWA:       62000,
		totalProjectValue: 337900,
		netmeterAmount:    2500,
		structureAmount:   12000,
		subsidyAmount:     78000,
		stateSubsidy:      0,
		bomLines: []bomLineDef{
			{1, "GI Elevated Structure 2m", 1, "Module mounting structure"},
			{2, "Vikram 545Wp Mono PERC", 10, "Solar PV modules"},
			{3, "Deye 5kW Hybrid Inverter", 1, "Hybrid inverter"},
			{4, "Exide 150Ah Tubular Battery", 4, "Battery bank"},
			{5, "Polycab 6sqmm DC Cable", 50, "DC cabling"},
			{6, "Chemical Earthing Kit", 2, "Earthing kit"},
		},
	},
}

// Seed populates the catalog and demo project prices. It is safe to call on
// every startup because it returns early if any product types already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if the catalog is already populated ─────────
	typesCol, err := app.FindCollectionByNameOrId("product_types")
	if err != nil {
		return fmt.Errorf("seed: could not find product_types collection: %w", err)
	}
	existing, err := app.FindAllRecords(typesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query product_types: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	typeIDs := make(map[string]string)
	for _, def := range seedTypes {
		record := core.NewRecord(typesCol)
		record.Set("name", def.name)
		record.Set("display_order", def.displayOrder)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save product type %q: %w", def.name, err)
		}
		typeIDs[def.name] = record.Id
	}

	makesCol, err := app.FindCollectionByNameOrId("product_makes")
	if err != nil {
		return fmt.Errorf("seed: could not find product_makes collection: %w", err)
	}
	makeIDs := make(map[string]string)
	for _, def := range seedMakes {
		record := core.NewRecord(makesCol)
		record.Set("name", def.name)
		record.Set("product_type", typeIDs[def.typeName])
		record.Set("active", def.active)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save make %q: %w", def.name, err)
		}
		makeIDs[def.name] = record.Id
	}

	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	productIDs := make(map[string]string)
	for _, def := range seedProducts {
		record := core.NewRecord(productsCol)
		record.Set("name", def.name)
		record.Set("product_type", typeIDs[def.typeName])
		if def.makeName != "" {
			record.Set("product_make", makeIDs[def.makeName])
		}
		record.Set("capacity", def.capacity)
		if def.properties != nil {
			record.Set("properties", def.properties)
		}
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save product %q: %w", def.name, err)
		}
		productIDs[def.name] = record.Id
	}

	pricesCol, err := app.FindCollectionByNameOrId("project_prices")
	if err != nil {
		return fmt.Errorf("seed: could not find project_prices collection: %w", err)
	}
	bomCol, err := app.FindCollectionByNameOrId("bom_details")
	if err != nil {
		return fmt.Errorf("seed: could not find bom_details collection: %w", err)
	}

	for _, def := range seedProjectPrices {
		priceRecord := core.NewRecord(pricesCol)
		priceRecord.Set("name", def.name)
		priceRecord.Set("project_capacity", def.projectCapacity)
		priceRecord.Set("price_per_kwa", def.pricePerKWA)
		priceRecord.Set("total_project_value", def.totalProjectValue)
		priceRecord.Set("netmeter_amount", def.netmeterAmount)
		priceRecord.Set("structure_amount", def.structureAmount)
		priceRecord.Set("subsidy_amount", def.subsidyAmount)
		priceRecord.Set("state_subsidy", def.stateSubsidy)
		if err := app.Save(priceRecord); err != nil {
			return fmt.Errorf("seed: could not save project price %q: %w", def.name, err)
		}

		for _, line := range def.bomLines {
			bomRecord := core.NewRecord(bomCol)
			bomRecord.Set("project_price", priceRecord.Id)
			bomRecord.Set("product", productIDs[line.productName])
			bomRecord.Set("quantity", line.quantity)
			bomRecord.Set("description", line.description)
			bomRecord.Set("sort_order", line.sortOrder)
			if err := app.Save(bomRecord); err != nil {
				return fmt.Errorf("seed: could not save BOM line %q: %w", line.productName, err)
			}
		}
	}

	return nil
}
