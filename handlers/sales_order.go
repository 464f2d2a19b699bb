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

// SalesOrderForm is the sales order submission. Amounts arrive as strings
// like the quotation form.
type SalesOrderForm struct {
	OrderDate    string `json:"order_date"`
	CustomerName string `json:"customer_name"`
	MobileNumber string `json:"mobile_number"`
	Quotation    string `json:"quotation"`
	TotalAmount  string `json:"total_amount"`
}

func validateSalesOrder(form SalesOrderForm) map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(form.OrderDate) == "" {
		errors["order_date"] = "Order date is required"
	}
	if strings.TrimSpace(form.CustomerName) == "" {
		errors["customer_name"] = "Customer name is required"
	}
	if !services.ValidateMobile(form.MobileNumber) {
		errors["mobile_number"] = "Enter a valid 10-digit mobile number"
	}
	return errors
}

// HandleSalesOrderCreate converts an accepted quotation (or a direct order)
// into a numbered sales order.
func HandleSalesOrderCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form SalesOrderForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("sales_order: could not bind body: %v", err)
			return errorJSON(e, http.StatusBadRequest, "Invalid form data")
		}

		if errors := validateSalesOrder(form); len(errors) > 0 {
			return fieldErrorsJSON(e, errors)
		}

		col, err := app.FindCollectionByNameOrId("sales_orders")
		if err != nil {
			log.Printf("sales_order: could not find collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(col)
		number := services.GenerateDocumentNumber(app, "sales_orders", "order_number", "SO", time.Now())
		record.Set("order_number", number)
		record.Set("order_date", form.OrderDate)
		record.Set("customer_name", form.CustomerName)
		record.Set("mobile_number", form.MobileNumber)
		record.Set("quotation", form.Quotation)
		record.Set("status", "open")
		if v := services.ToNullableNumber(form.TotalAmount); v != nil {
			record.Set("total_amount", *v)
		}

		if err := app.Save(record); err != nil {
			log.Printf("sales_order: could not save: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":      true,
			"id":           record.Id,
			"order_number": number,
		})
	}
}

// HandleSalesOrderList returns sales orders, newest first.
func HandleSalesOrderList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("sales_orders", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("sales_order: could not query: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":            record.Id,
				"order_number":  record.GetString("order_number"),
				"order_date":    record.GetString("order_date"),
				"customer_name": record.GetString("customer_name"),
				"total_amount":  record.GetFloat("total_amount"),
				"status":        record.GetString("status"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   items,
		})
	}
}

// HandleSalesOrderView returns one sales order with every stored field.
func HandleSalesOrderView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderID := e.Request.PathValue("id")
		if orderID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing sales order id")
		}

		record, err := app.FindRecordById("sales_orders", orderID)
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Sales order not found")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"item":    record.PublicExport(),
		})
	}
}

// HandleSalesOrderDelete removes a sales order.
func HandleSalesOrderDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderID := e.Request.PathValue("id")
		if orderID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing sales order id")
		}

		record, err := app.FindRecordById("sales_orders", orderID)
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Sales order not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("sales_order: error deleting %s: %v", orderID, err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{"success": true})
	}
}
