package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/services"
)

// HandleQuotationCreate validates the submitted quotation form, coerces its
// string-typed numerics at this boundary, computes the derived totals and
// persists the quotation with a generated number.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form services.QuotationForm
		if err := e.BindBody(&form); err != nil {
			log.Printf("quotation_create: could not bind body: %v", err)
			return errorJSON(e, http.StatusBadRequest, "Invalid form data")
		}

		if errors := services.ValidateQuotation(form); len(errors) > 0 {
			return fieldErrorsJSON(e, errors)
		}

		quotationsCol, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(quotationsCol)
		number := services.GenerateDocumentNumber(app, "quotations", "quotation_number", "QTN", time.Now())
		record.Set("quotation_number", number)
		record.Set("status", "draft")
		applyQuotationForm(record, form)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Internal error")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":          true,
			"id":               record.Id,
			"quotation_number": number,
			"totals":           services.CalculateTotals(form),
		})
	}
}

// applyQuotationForm writes the form onto a quotation record. Numeric fields
// go through ToNullableNumber so an empty string stays an unset field rather
// than becoming a stored zero.
func applyQuotationForm(record *core.Record, form services.QuotationForm) {
	record.Set("quotation_date", form.QuotationDate)
	record.Set("valid_till", form.ValidTill)
	record.Set("user_id", form.UserID)
	record.Set("customer_name", form.CustomerName)
	record.Set("mobile_number", form.MobileNumber)
	record.Set("email", form.Email)
	record.Set("address", form.Address)
	record.Set("state_id", form.StateID)
	record.Set("project_price", form.ProjectPrice)

	numericFields := []struct {
		name  string
		value string
	}{
		{"project_capacity", form.ProjectCapacity},
		{"price_per_kw", form.PricePerKW},
		{"total_project_value", form.TotalProjectValue},
		{"netmeter_amount", form.NetmeterAmount},
		{"stamp_charges", form.StampCharges},
		{"state_government_amount", form.StateGovernmentAmount},
		{"structure_amount", form.StructureAmount},
		{"additional_cost_amount_1", form.AdditionalCostAmount1},
		{"additional_cost_amount_2", form.AdditionalCostAmount2},
		{"discount", form.Discount},
		{"gst_rate", form.GSTRate},
		{"subsidy_amount", form.SubsidyAmount},
		{"state_subsidy_amount", form.StateSubsidyAmount},
	}
	for _, f := range numericFields {
		if v := services.ToNullableNumber(f.value); v != nil {
			record.Set(f.name, *v)
		} else {
			record.Set(f.name, nil)
		}
	}

	totals := services.CalculateTotals(form)
	record.Set("subtotal", totals.Subtotal)
	record.Set("gst_amount", totals.GSTAmount)
	record.Set("total_payable", totals.TotalPayable)
	record.Set("effective_cost", totals.EffectiveCost)
}
