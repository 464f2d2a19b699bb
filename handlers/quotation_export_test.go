package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solarquotation/testhelpers"
)

func TestHandleQuotationExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	catalog := testhelpers.SeedSolarCatalog(t, app)
	price := testhelpers.CreateTestProjectPrice(t, app, "6.6kW Residential", 6.6, 45000, 297000)
	testhelpers.CreateTestBOMDetail(t, app, price.Id, catalog["panel"].Id, 20, "Rooftop modules", 1)
	testhelpers.CreateTestBOMDetail(t, app, price.Id, catalog["inverter"].Id, 1, "", 2)

	quotation := testhelpers.CreateTestQuotation(t, app, "SLR-QTN-26-27-001", "Ramesh Patil")
	quotation.Set("project_price", price.Id)
	quotation.Set("effective_cost", 275410)
	if err := app.Save(quotation); err != nil {
		t.Fatalf("could not link project price: %v", err)
	}

	handler := HandleQuotationExportPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotations/"+quotation.Id+"/export/pdf", nil)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "SLR-QTN-26-27-001.pdf") {
		t.Errorf("Content-Disposition = %q, want filename with quotation number", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF body")
	}
}

func TestHandleQuotationExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quotation := testhelpers.CreateTestQuotation(t, app, "SLR-QTN-26-27-002", "Suresh Kumar")

	handler := HandleQuotationExportExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotations/"+quotation.Id+"/export/excel", nil)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "SLR-QTN-26-27-002.xlsx") {
		t.Errorf("Content-Disposition = %q, want filename with quotation number", got)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("expected an xlsx (zip) body")
	}
}

func TestHandleQuotationExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuotationExportPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotations/missing/export/pdf", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestBuildQuotationExportData_Rows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	catalog := testhelpers.SeedSolarCatalog(t, app)
	price := testhelpers.CreateTestProjectPrice(t, app, "6.6kW Residential", 6.6, 45000, 297000)
	testhelpers.CreateTestBOMDetail(t, app, price.Id, catalog["structure"].Id, 1, "", 1)
	testhelpers.CreateTestBOMDetail(t, app, price.Id, catalog["panel"].Id, 20, "Rooftop modules", 2)
	testhelpers.CreateTestBOMDetail(t, app, price.Id, catalog["acdb"].Id, 1, "", 3)

	quotation := testhelpers.CreateTestQuotation(t, app, "SLR-QTN-26-27-003", "Ramesh Patil")
	quotation.Set("project_price", price.Id)
	if err := app.Save(quotation); err != nil {
		t.Fatalf("could not link project price: %v", err)
	}

	data := buildQuotationExportData(app, quotation)

	if data.QuotationNumber != "SLR-QTN-26-27-003" {
		t.Errorf("QuotationNumber = %q", data.QuotationNumber)
	}
	if data.StateName != "Gujarat" {
		t.Errorf("StateName = %q, want Gujarat (state_id 1)", data.StateName)
	}
	if data.AmountInWords == "" {
		t.Error("expected AmountInWords to be filled")
	}

	if len(data.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(data.Rows), data.Rows)
	}
	// Rows follow form display order: structure, panel, then acdb.
	if data.Rows[0].Section != "Module Mounting Structure" {
		t.Errorf("row 0 section = %q", data.Rows[0].Section)
	}
	if data.Rows[1].Section != "Solar PV Modules" {
		t.Errorf("row 1 section = %q", data.Rows[1].Section)
	}
	if data.Rows[1].Qty != 20 {
		t.Errorf("row 1 qty = %v, want 20", data.Rows[1].Qty)
	}
	if data.Rows[1].Make != "Waaree" {
		t.Errorf("row 1 make = %q, want Waaree", data.Rows[1].Make)
	}
	if data.Rows[2].Section != "ACDB" {
		t.Errorf("row 2 section = %q", data.Rows[2].Section)
	}
	if data.Rows[0].Index != "1" || data.Rows[2].Index != "3" {
		t.Errorf("row indexes = %q/%q, want 1/3", data.Rows[0].Index, data.Rows[2].Index)
	}
}
