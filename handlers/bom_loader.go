// Package handlers contains the JSON API handlers consumed by the ERP
// front end.
package handlers

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"solarquotation/services"
)

// loadBOMLines loads the BOM detail lines of a project price in sort order,
// resolving each line's product together with its type name and make so the
// mapper and the export layer get fully hydrated lines.
func loadBOMLines(app *pocketbase.PocketBase, projectPriceID string) ([]services.BOMLine, error) {
	bomRecords, err := app.FindRecordsByFilter(
		"bom_details",
		"project_price = {:priceId}",
		"sort_order",
		0,
		0,
		map[string]any{"priceId": projectPriceID},
	)
	if err != nil {
		return nil, fmt.Errorf("query bom_details: %w", err)
	}

	lines := make([]services.BOMLine, 0, len(bomRecords))
	for _, bom := range bomRecords {
		product, err := loadProduct(app, bom.GetString("product"))
		if err != nil {
			return nil, err
		}
		lines = append(lines, services.BOMLine{
			Product:     product,
			Quantity:    bom.GetFloat("quantity"),
			Description: bom.GetString("description"),
		})
	}

	return lines, nil
}

// loadProduct hydrates a catalog product: the properties bag is decoded once
// here, and the make's id and name are carried on the product itself so a
// deactivated make can still be labelled on the form.
func loadProduct(app *pocketbase.PocketBase, productID string) (services.Product, error) {
	record, err := app.FindRecordById("products", productID)
	if err != nil {
		return services.Product{}, fmt.Errorf("product %s not found: %w", productID, err)
	}

	product := services.Product{
		ID:       record.Id,
		Name:     record.GetString("name"),
		Capacity: record.GetFloat("capacity"),
	}

	if err := record.UnmarshalJSONField("properties", &product.Properties); err != nil {
		// A product without properties classifies by type name only.
		product.Properties = services.ProductProperties{}
	}

	if typeID := record.GetString("product_type"); typeID != "" {
		typeRecord, err := app.FindRecordById("product_types", typeID)
		if err != nil {
			log.Printf("bom_loader: product type %s not found: %v", typeID, err)
		} else {
			product.TypeName = typeRecord.GetString("name")
		}
	}

	if makeID := record.GetString("product_make"); makeID != "" {
		makeRecord, err := app.FindRecordById("product_makes", makeID)
		if err != nil {
			log.Printf("bom_loader: product make %s not found: %v", makeID, err)
		} else {
			product.MakeID = makeRecord.Id
			product.MakeName = makeRecord.GetString("name")
		}
	}

	return product, nil
}
