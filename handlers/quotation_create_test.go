package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solarquotation/testhelpers"
)

func validQuotationBody() string {
	return `{
		"quotation_date": "2026-08-20",
		"valid_till": "2026-09-20",
		"user_id": "u1",
		"customer_name": "Ramesh Patil",
		"mobile_number": "9876543210",
		"email": "ramesh@example.com",
		"state_id": "1",
		"project_capacity": "6.60",
		"price_per_kw": "45000",
		"total_project_value": "297000",
		"netmeter_amount": "2500",
		"gst_rate": "18",
		"subsidy_amount": "78000"
	}`
}

func TestHandleQuotationCreate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations",
		strings.NewReader(validQuotationBody()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success         bool   `json:"success"`
		ID              string `json:"id"`
		QuotationNumber string `json:"quotation_number"`
		Totals          struct {
			Subtotal      float64 `json:"subtotal"`
			EffectiveCost float64 `json:"effective_cost"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if !resp.Success || resp.ID == "" {
		t.Fatalf("expected success with id, got %s", rec.Body.String())
	}
	if !strings.HasPrefix(resp.QuotationNumber, "SLR-QTN-") {
		t.Errorf("quotation_number = %q, want SLR-QTN- prefix", resp.QuotationNumber)
	}

	// subtotal 297000+2500 = 299500, gst 18% = 53910, payable 353410,
	// effective = 353410 - 78000
	if resp.Totals.Subtotal != 299500 {
		t.Errorf("subtotal = %v, want 299500", resp.Totals.Subtotal)
	}
	if resp.Totals.EffectiveCost != 275410 {
		t.Errorf("effective_cost = %v, want 275410", resp.Totals.EffectiveCost)
	}

	record, err := app.FindRecordById("quotations", resp.ID)
	if err != nil {
		t.Fatalf("expected quotation to be persisted: %v", err)
	}
	if got := record.GetString("customer_name"); got != "Ramesh Patil" {
		t.Errorf("customer_name = %q", got)
	}
	if got := record.GetFloat("subtotal"); got != 299500 {
		t.Errorf("stored subtotal = %v, want 299500", got)
	}
	if got := record.GetString("status"); got != "draft" {
		t.Errorf("status = %q, want draft", got)
	}
	// stamp_charges was never entered, so it must not be stored as 0
	if record.Get("stamp_charges") != nil && record.GetFloat("stamp_charges") != 0 {
		t.Errorf("stamp_charges = %v, want unset", record.Get("stamp_charges"))
	}
}

func TestHandleQuotationCreate_EmptyForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected success = false")
	}
	if len(resp.Errors) != 9 {
		t.Errorf("expected 9 field errors, got %d: %v", len(resp.Errors), resp.Errors)
	}
	for _, field := range []string{"quotation_date", "customer_name", "mobile_number", "project_capacity"} {
		if _, ok := resp.Errors[field]; !ok {
			t.Errorf("expected an error for %s", field)
		}
	}

	records, err := app.FindRecordsByFilter("quotations", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query quotations: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no quotation persisted, found %d", len(records))
	}
}

func TestHandleQuotationCreate_InvalidMobile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	body := strings.Replace(validQuotationBody(), "9876543210", "1234567890", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if len(resp.Errors) != 1 {
		t.Errorf("expected exactly one field error, got %v", resp.Errors)
	}
	if _, ok := resp.Errors["mobile_number"]; !ok {
		t.Error("expected an error for mobile_number")
	}
}

func TestHandleQuotationCreate_SequentialNumbers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	numbers := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/quotations",
			strings.NewReader(validQuotationBody()))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e := newTestRequestEvent(app, req, rec)

		if err := handler(e); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		var resp struct {
			QuotationNumber string `json:"quotation_number"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("could not decode response: %v", err)
		}
		numbers = append(numbers, resp.QuotationNumber)
	}

	if !strings.HasSuffix(numbers[0], "-001") {
		t.Errorf("first number = %q, want -001 suffix", numbers[0])
	}
	if !strings.HasSuffix(numbers[1], "-002") {
		t.Errorf("second number = %q, want -002 suffix", numbers[1])
	}
}
