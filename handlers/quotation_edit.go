package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/services"
)

// HandleQuotationUpdate re-validates and re-applies the whole form onto an
// existing quotation, overwriting all BOM-derived and pricing fields so the
// stored totals always match the stored inputs. A quotation that linked a
// different project price keeps only what the new form carries.
func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing quotation id")
		}

		record, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			log.Printf("quotation_edit: not found %s: %v", quotationID, err)
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		var form services.QuotationForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("quotation_edit: could not bind body: %v", err)
			return errorJSON(e, http.StatusBadRequest, "Invalid form data")
		}

		if errors := services.ValidateQuotation(form); len(errors) > 0 {
			return fieldErrorsJSON(e, errors)
		}

		applyQuotationForm(record, form)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_edit: could not save %s: %v", quotationID, err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"id":      record.Id,
			"totals":  services.CalculateTotals(form),
		})
	}
}

// HandleQuotationStatus moves a quotation through its lifecycle (draft,
// sent, accepted, rejected).
func HandleQuotationStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing quotation id")
		}

		record, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := e.BindBody(&body); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}

		valid := false
		for _, s := range services.QuotationStatusOptions {
			if body.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			return errorJSON(e, http.StatusBadRequest, "Invalid status")
		}

		record.Set("status", body.Status)
		if err := app.Save(record); err != nil {
			log.Printf("quotation_edit: could not update status of %s: %v", quotationID, err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"status":  body.Status,
		})
	}
}
