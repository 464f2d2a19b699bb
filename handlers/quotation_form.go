package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/services"
)

// HandleProjectPriceFormPatch returns the quotation form patch for a selected
// project price: the BOM detail list is classified and mapped into flat form
// fields, and the price record's own amounts ride along so the form can seed
// its pricing section in the same round trip.
func HandleProjectPriceFormPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		priceID := e.Request.PathValue("id")
		if priceID == "" {
			return errorJSON(e, http.StatusBadRequest, "Missing project price id")
		}

		priceRecord, err := app.FindRecordById("project_prices", priceID)
		if err != nil {
			log.Printf("quotation_form: project price %s not found: %v", priceID, err)
			return errorJSON(e, http.StatusNotFound, "Project price not found")
		}

		lines, err := loadBOMLines(app, priceID)
		if err != nil {
			// Form state stays untouched on the client; nothing partial is sent.
			log.Printf("quotation_form: could not load BOM for %s: %v", priceID, err)
			return errorJSON(e, http.StatusInternalServerError, "Could not load bill of material")
		}

		patch := services.MapBOMToFormPatch(lines)

		return e.JSON(http.StatusOK, map[string]any{
			"success":             true,
			"form_patch":          patch.Fields,
			"fallback_by_section": patch.FallbackBySection,
			"price_per_kwa":       priceRecord.GetFloat("price_per_kwa"),
			"total_project_value": priceRecord.GetFloat("total_project_value"),
			"netmeter_amount":     priceRecord.GetFloat("netmeter_amount"),
			"structure_amount":    priceRecord.GetFloat("structure_amount"),
			"subsidy_amount":      priceRecord.GetFloat("subsidy_amount"),
			"state_subsidy":       priceRecord.GetFloat("state_subsidy"),
		})
	}
}

// HandleQuotationTotals recomputes the read-only totals for the current form
// state. The front end calls this on field changes so the displayed totals
// always derive from the same formulas the submit path uses.
func HandleQuotationTotals(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form services.QuotationForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("quotation_totals: could not bind body: %v", err)
			return errorJSON(e, http.StatusBadRequest, "Invalid form data")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"totals":  services.CalculateTotals(form),
		})
	}
}
