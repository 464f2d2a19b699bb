package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/services"
)

// HandleProductList returns the product catalog, optionally filtered by
// product type id (?type=...).
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		typeID := e.Request.URL.Query().Get("type")

		filter := "id != ''"
		params := map[string]any{}
		if typeID != "" {
			filter = "product_type = {:typeId}"
			params["typeId"] = typeID
		}

		records, err := app.FindRecordsByFilter("products", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("catalog: could not query products: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":           record.Id,
				"name":         record.GetString("name"),
				"capacity":     record.GetFloat("capacity"),
				"product_type": record.GetString("product_type"),
				"product_make": record.GetString("product_make"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   items,
		})
	}
}

// HandleMakeList returns active makes only. Retired makes stay on old
// records but are never offered for new selections.
func HandleMakeList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("product_makes", "active = true", "name", 0, 0, nil)
		if err != nil {
			log.Printf("catalog: could not query makes: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":           record.Id,
				"name":         record.GetString("name"),
				"product_type": record.GetString("product_type"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   items,
		})
	}
}

// HandleProjectPriceList returns the selectable price templates.
func HandleProjectPriceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("project_prices", "id != ''", "name", 0, 0, nil)
		if err != nil {
			log.Printf("catalog: could not query project prices: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":                  record.Id,
				"name":                record.GetString("name"),
				"project_capacity":    record.GetFloat("project_capacity"),
				"price_per_kwa":       record.GetFloat("price_per_kwa"),
				"total_project_value": record.GetFloat("total_project_value"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   items,
		})
	}
}

// HandleStateList returns the fixed state dropdown options.
func HandleStateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   services.StateOptions,
		})
	}
}
