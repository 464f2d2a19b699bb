package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solarquotation/testhelpers"
)

func TestHandleChallanCreate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleChallanCreate(app)

	body := `{
		"challan_date": "2026-08-27",
		"customer_name": "Ramesh Patil",
		"vehicle_number": "GJ01AB1234",
		"items": [
			{"description": "Waaree 330Wp Poly", "quantity": 20, "unit": "nos"},
			{"description": "Growatt 6kW Inverter", "quantity": 1, "unit": "nos"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/challans", strings.NewReader(body))
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
		ID            string `json:"id"`
		ChallanNumber string `json:"challan_number"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if !strings.HasPrefix(resp.ChallanNumber, "SLR-DC-") {
		t.Errorf("challan_number = %q, want SLR-DC- prefix", resp.ChallanNumber)
	}

	record, err := app.FindRecordById("delivery_challans", resp.ID)
	if err != nil {
		t.Fatalf("expected challan to be persisted: %v", err)
	}
	var items []ChallanItem
	if err := record.UnmarshalJSONField("items", &items); err != nil {
		t.Fatalf("could not decode stored items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 stored items, got %d", len(items))
	}
	if items[0].Quantity != 20 {
		t.Errorf("item 0 quantity = %v, want 20", items[0].Quantity)
	}
}

func TestHandleChallanCreate_NoItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleChallanCreate(app)

	body := `{"challan_date":"2026-08-27","customer_name":"Ramesh Patil","items":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/challans", strings.NewReader(body))
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
	if _, ok := resp.Errors["items"]; !ok {
		t.Error("expected an error for items")
	}
}

func TestHandleChallanView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	createHandler := HandleChallanCreate(app)

	body := `{"challan_date":"2026-08-27","customer_name":"Ramesh Patil","items":[{"description":"Earthing Kit","quantity":3,"unit":"nos"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/challans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	if err := createHandler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("create handler returned error: %v", err)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("could not decode create response: %v", err)
	}

	viewHandler := HandleChallanView(app)
	req = httptest.NewRequest(http.MethodGet, "/api/challans/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	rec = httptest.NewRecorder()
	if err := viewHandler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("view handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Earthing Kit") {
		t.Error("expected the item description in the response")
	}
}
