package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationDelete removes a quotation.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing quotation id")
		}

		record, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_delete: not found %s: %v", quotationID, err)
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quotation_delete: error deleting %s: %v", quotationID, err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{"success": true})
	}
}
