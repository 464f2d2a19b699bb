package services_test

import (
	"testing"
	"time"

	"solarquotation/services"
	"solarquotation/testhelpers"
)

func TestGetFiscalYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"january is previous fiscal year", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "25-26"},
		{"march is previous fiscal year", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{"april starts new fiscal year", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "26-27"},
		{"may", time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC), "26-27"},
		{"december", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "25-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.GetFiscalYear(tt.date); got != tt.want {
				t.Errorf("GetFiscalYear(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestGenerateDocumentNumber_Sequence(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	first := services.GenerateDocumentNumber(app, "quotations", "quotation_number", "QTN", now)
	if first != "SLR-QTN-26-27-001" {
		t.Errorf("first number = %q, want SLR-QTN-26-27-001", first)
	}

	testhelpers.CreateTestQuotation(t, app, first, "Ramesh Patil")

	second := services.GenerateDocumentNumber(app, "quotations", "quotation_number", "QTN", now)
	if second != "SLR-QTN-26-27-002" {
		t.Errorf("second number = %q, want SLR-QTN-26-27-002", second)
	}
}

func TestGenerateDocumentNumber_PerFiscalYear(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// A number from the previous fiscal year must not advance this year's
	// sequence.
	testhelpers.CreateTestQuotation(t, app, "SLR-QTN-25-26-007", "Old Customer")

	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	got := services.GenerateDocumentNumber(app, "quotations", "quotation_number", "QTN", now)
	if got != "SLR-QTN-26-27-001" {
		t.Errorf("number = %q, want SLR-QTN-26-27-001", got)
	}
}
