package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/services"
)

// ChallanItem is one line on a delivery challan.
type ChallanItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// ChallanForm is the delivery challan submission.
type ChallanForm struct {
	ChallanDate   string        `json:"challan_date"`
	Shipment      string        `json:"shipment"`
	CustomerName  string        `json:"customer_name"`
	VehicleNumber string        `json:"vehicle_number"`
	Items         []ChallanItem `json:"items"`
}

func validateChallan(form ChallanForm) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(form.ChallanDate) == "" {
		errors["challan_date"] = "Challan date is required"
	}
	if strings.TrimSpace(form.CustomerName) == "" {
		errors["customer_name"] = "Customer name is required"
	}
	if len(form.Items) == 0 {
		errors["items"] = "At least one item is required"
	}
	return errors
}

// HandleChallanCreate records a delivery challan, optionally against a
// shipment. Items are stored as a JSON field on the record.
func HandleChallanCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form ChallanForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("challan: could not bind body: %v", err)
			return errorJSON(e, http.StatusBadRequest, "Invalid form data")
		}

		if errors := validateChallan(form); len(errors) > 0 {
			return fieldErrorsJSON(e, errors)
		}

		col, err := app.FindCollectionByNameOrId("delivery_challans")
		if err != nil {
			log.Printf("challan: could not find collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		number := services.GenerateDocumentNumber(app, "delivery_challans", "challan_number", "DC", time.Now())
		record.Set("challan_number", number)
		record.Set("challan_date", form.ChallanDate)
		record.Set("shipment", form.Shipment)
		record.Set("customer_name", form.CustomerName)
		record.Set("vehicle_number", form.VehicleNumber)
		record.Set("items", form.Items)

		if err := app.Save(record); err != nil {
			log.Printf("challan: could not save: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":        true,
			"id":             record.Id,
			"challan_number": number,
		})
	}
}

// HandleChallanList returns delivery challans, newest first.
func HandleChallanList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("delivery_challans", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("challan: could not query: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":             record.Id,
				"challan_number": record.GetString("challan_number"),
				"challan_date":   record.GetString("challan_date"),
				"customer_name":  record.GetString("customer_name"),
				"shipment":       record.GetString("shipment"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   items,
		})
	}
}

// HandleChallanView returns one challan with its item lines decoded.
func HandleChallanView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		challanID := e.Request.PathValue("id")
		if challanID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing challan id")
		}

		record, err := app.FindRecordById("delivery_challans", challanID)
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Challan not found")
		}

		var items []ChallanItem
		if err := record.UnmarshalJSONField("items", &items); err != nil {
			log.Printf("challan: could not decode items of %s: %v", challanID, err)
		}

		item := record.PublicExport()
		item["items"] = items
		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"item":    item,
		})
	}
}
