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

// ShipmentForm is the shipment submission.
type ShipmentForm struct {
	ShipmentDate    string `json:"shipment_date"`
	SalesOrder      string `json:"sales_order"`
	TransporterName string `json:"transporter_name"`
	VehicleNumber   string `json:"vehicle_number"`
	LRNumber        string `json:"lr_number"`
}

func validateShipment(form ShipmentForm) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(form.ShipmentDate) == "" {
		errors["shipment_date"] = "Shipment date is required"
	}
	if strings.TrimSpace(form.SalesOrder) == "" {
		errors["sales_order"] = "Sales order is required"
	}
	return errors
}

// HandleShipmentCreate records an outgoing shipment against a sales order.
func HandleShipmentCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form ShipmentForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("shipment: could not bind body: %v", err)
			return errorJSON(e, http.StatusBadRequest, "Invalid form data")
		}

		if errors := validateShipment(form); len(errors) > 0 {
			return fieldErrorsJSON(e, errors)
		}

		if _, err := app.FindRecordById("sales_orders", form.SalesOrder); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Sales order not found")
		}

		col, err := app.FindCollectionByNameOrId("shipments")
		if err != nil {
			log.Printf("shipment: could not find collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		number := services.GenerateDocumentNumber(app, "shipments", "shipment_number", "SHP", time.Now())
		record.Set("shipment_number", number)
		record.Set("shipment_date", form.ShipmentDate)
		record.Set("sales_order", form.SalesOrder)
		record.Set("transporter_name", form.TransporterName)
		record.Set("vehicle_number", form.VehicleNumber)
		record.Set("lr_number", form.LRNumber)
		record.Set("status", "pending")

		if err := app.Save(record); err != nil {
			log.Printf("shipment: could not save: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":         true,
			"id":              record.Id,
			"shipment_number": number,
		})
	}
}

// HandleShipmentList returns shipments, newest first.
func HandleShipmentList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("shipments", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("shipment: could not query: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":               record.Id,
				"shipment_number":  record.GetString("shipment_number"),
				"shipment_date":    record.GetString("shipment_date"),
				"sales_order":      record.GetString("sales_order"),
				"transporter_name": record.GetString("transporter_name"),
				"status":           record.GetString("status"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   items,
		})
	}
}

// HandleShipmentStatus moves a shipment through pending/in_transit/delivered.
func HandleShipmentStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		shipmentID := e.Request.PathValue("id")
		if shipmentID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing shipment id")
		}

		record, err := app.FindRecordById("shipments", shipmentID)
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Shipment not found")
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := e.BindBody(&body); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}

		switch body.Status {
		case "pending", "in_transit", "delivered":
		default:
			return errorJSON(e, http.StatusBadRequest, "Invalid status")
		}

		record.Set("status", body.Status)
		if err := app.Save(record); err != nil {
			log.Printf("shipment: could not update status of %s: %v", shipmentID, err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"status":  body.Status,
		})
	}
}
