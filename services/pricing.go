package services

import (
	"strconv"
	"strings"
)

// QuotationForm is the flat quotation form record. Every numeric field is
// kept as its edit-time string ("" while untouched) and only coerced to a
// number at the persistence boundary, so required-field checks can tell ""
// apart from 0.
type QuotationForm struct {
	QuotationDate string `json:"quotation_date"`
	ValidTill     string `json:"valid_till"`
	UserID        string `json:"user_id"`
	CustomerName  string `json:"customer_name"`
	MobileNumber  string `json:"mobile_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	StateID       string `json:"state_id"`

	// ProjectPrice links back to the price template the BOM fields came
	// from; empty for a quotation filled in by hand.
	ProjectPrice string `json:"project_price"`

	ProjectCapacity string `json:"project_capacity"`
	PricePerKW      string `json:"price_per_kw"`

	TotalProjectValue     string `json:"total_project_value"`
	NetmeterAmount        string `json:"netmeter_amount"`
	StampCharges          string `json:"stamp_charges"`
	StateGovernmentAmount string `json:"state_government_amount"`
	StructureAmount       string `json:"structure_amount"`
	AdditionalCostAmount1 string `json:"additional_cost_amount_1"`
	AdditionalCostAmount2 string `json:"additional_cost_amount_2"`
	Discount              string `json:"discount"`
	GSTRate               string `json:"gst_rate"`
	SubsidyAmount         string `json:"subsidy_amount"`
	StateSubsidyAmount    string `json:"state_subsidy_amount"`
}

// Totals are the derived quotation amounts. They are recomputed from the
// form on every change and never stored as editable fields.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	GSTAmount     float64 `json:"gst_amount"`
	TotalPayable  float64 `json:"total_payable"`
	EffectiveCost float64 `json:"effective_cost"`
}

// CalculateTotals derives the chained quotation totals. Missing or
// non-numeric inputs count as 0, so the function is total and never errors.
func CalculateTotals(form QuotationForm) Totals {
	subtotal := numeric(form.TotalProjectValue) +
		numeric(form.NetmeterAmount) +
		numeric(form.StampCharges) +
		numeric(form.StateGovernmentAmount) +
		numeric(form.StructureAmount) +
		numeric(form.AdditionalCostAmount1) +
		numeric(form.AdditionalCostAmount2) -
		numeric(form.Discount)

	gstAmount := subtotal * numeric(form.GSTRate) / 100
	totalPayable := subtotal + gstAmount
	effectiveCost := totalPayable - numeric(form.SubsidyAmount) - numeric(form.StateSubsidyAmount)

	return Totals{
		Subtotal:      subtotal,
		GSTAmount:     gstAmount,
		TotalPayable:  totalPayable,
		EffectiveCost: effectiveCost,
	}
}

// ToNullableNumber converts an edit-time string to a number at the payload
// boundary. Empty strings become nil rather than 0; unparseable input also
// maps to nil so a stray character never persists as a zero amount.
func ToNullableNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// numeric coerces an edit-time string for arithmetic: "", whitespace and
// unparseable input all count as 0.
func numeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
