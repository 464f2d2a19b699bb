package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationList returns quotations, newest first, optionally filtered
// by a free-text search over customer name and quotation number.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		search := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		filter := "id != ''"
		params := map[string]any{}
		if search != "" {
			filter = "customer_name ~ {:search} || quotation_number ~ {:search}"
			params["search"] = search
		}

		records, err := app.FindRecordsByFilter("quotations", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("quotation_list: could not query quotations: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, quotationSummary(record))
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"items":   items,
		})
	}
}

// HandleQuotationView returns one quotation with every stored field.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing quotation id")
		}

		record, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_list: not found %s: %v", quotationID, err)
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"item":    record.PublicExport(),
		})
	}
}

// quotationSummary is the listing-page projection of a quotation record.
func quotationSummary(record *core.Record) map[string]any {
	return map[string]any{
		"id":               record.Id,
		"quotation_number": record.GetString("quotation_number"),
		"quotation_date":   record.GetString("quotation_date"),
		"customer_name":    record.GetString("customer_name"),
		"mobile_number":    record.GetString("mobile_number"),
		"project_capacity": record.GetFloat("project_capacity"),
		"total_payable":    record.GetFloat("total_payable"),
		"effective_cost":   record.GetFloat("effective_cost"),
		"status":           record.GetString("status"),
	}
}
