package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquotation/services"
)

// HandleQuotationExportPDF streams the quotation as a PDF document.
func HandleQuotationExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := exportDataForRequest(app, e)
		if err != nil {
			return err
		}

		pdfBytes, genErr := services.GenerateQuotationPDF(*data)
		if genErr != nil {
			log.Printf("quotation_export: could not generate PDF: %v", genErr)
			return errorJSON(e, http.StatusInternalServerError, "Could not generate PDF")
		}

		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%s.pdf", data.QuotationNumber))
		return e.Blob(http.StatusOK, "application/pdf", pdfBytes)
	}
}

// HandleQuotationExportExcel streams the quotation as an Excel workbook.
func HandleQuotationExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := exportDataForRequest(app, e)
		if err != nil {
			return err
		}

		excelBytes, genErr := services.GenerateQuotationExcel(*data)
		if genErr != nil {
			log.Printf("quotation_export: could not generate Excel: %v", genErr)
			return errorJSON(e, http.StatusInternalServerError, "Could not generate Excel")
		}

		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%s.xlsx", data.QuotationNumber))
		return e.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", excelBytes)
	}
}

// exportDataForRequest resolves the quotation of the current request and
// assembles its export data. On failure it writes the error response itself
// and returns a non-nil error so callers can just bail.
func exportDataForRequest(app *pocketbase.PocketBase, e *core.RequestEvent) (*services.QuotationExportData, error) {
	quotationID := e.Request.PathValue("id")
	if quotationID == "" {
		return nil, errorJSON(e, http.StatusBadRequest, "Missing quotation id")
	}

	record, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		log.Printf("quotation_export: not found %s: %v", quotationID, err)
		return nil, errorJSON(e, http.StatusNotFound, "Quotation not found")
	}

	data := buildQuotationExportData(app, record)
	return &data, nil
}

// buildQuotationExportData flattens a quotation record plus its project
// price's classified BOM lines into the structure the renderers consume.
func buildQuotationExportData(app *pocketbase.PocketBase, record *core.Record) services.QuotationExportData {
	data := services.QuotationExportData{
		QuotationNumber: record.GetString("quotation_number"),
		QuotationDate:   record.GetString("quotation_date"),
		ValidTill:       record.GetString("valid_till"),
		CustomerName:    record.GetString("customer_name"),
		MobileNumber:    record.GetString("mobile_number"),
		Email:           record.GetString("email"),
		Address:         record.GetString("address"),
		StateName:       stateName(record.GetString("state_id")),
		ProjectCapacity: record.GetFloat("project_capacity"),
		PricePerKW:      record.GetFloat("price_per_kw"),
		Subtotal:        record.GetFloat("subtotal"),
		GSTRate:         record.GetFloat("gst_rate"),
		GSTAmount:       record.GetFloat("gst_amount"),
		TotalPayable:    record.GetFloat("total_payable"),
		SubsidyAmount:   record.GetFloat("subsidy_amount"),
		StateSubsidy:    record.GetFloat("state_subsidy_amount"),
		EffectiveCost:   record.GetFloat("effective_cost"),
		GeneratedDate:   time.Now().Format("02 Jan 2006"),
	}
	data.AmountInWords = services.AmountToWords(data.EffectiveCost)

	priceID := record.GetString("project_price")
	if priceID == "" {
		return data
	}

	lines, err := loadBOMLines(app, priceID)
	if err != nil {
		// The pricing block still exports; only the component table is lost.
		log.Printf("quotation_export: could not load BOM for %s: %v", priceID, err)
		return data
	}

	data.Rows = exportRows(lines)
	return data
}

// exportRows turns the mapped form patch into printable component rows, one
// per populated section in form display order. Unclassified lines are
// skipped, matching the form mapper.
func exportRows(lines []services.BOMLine) []services.QuotationExportRow {
	patch := services.MapBOMToFormPatch(lines)

	var rows []services.QuotationExportRow
	for _, section := range services.AllSections {
		product, ok := patch.FallbackBySection[section]
		if !ok {
			continue
		}

		qty := 0.0
		if q, ok := patch.Fields[string(section)+"_quantity"].(string); ok && q != "" {
			if v := services.ToNullableNumber(q); v != nil {
				qty = *v
			}
		}

		rows = append(rows, services.QuotationExportRow{
			Index:       fmt.Sprintf("%d", len(rows)+1),
			Section:     services.SectionLabel(section),
			Description: patchString(patch.Fields, string(section)+"_description"),
			Make:        product.MakeName,
			Size:        sectionSize(patch.Fields, section),
			Qty:         qty,
			Warranty:    patchString(patch.Fields, string(section)+"_warranty"),
		})
	}
	return rows
}

func patchString(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

// sectionSize reads the section's dimension field; structure stores its
// height under structure_height rather than a _size field.
func sectionSize(fields map[string]any, section services.Section) string {
	if section == services.SectionStructure {
		return patchString(fields, "structure_height")
	}
	return patchString(fields, string(section)+"_size")
}

// stateName resolves a posted state_id to its display name.
func stateName(stateID string) string {
	for _, s := range services.StateOptions {
		if s.ID == stateID {
			return s.Name
		}
	}
	return ""
}
