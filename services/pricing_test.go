package services

import (
	"math"
	"testing"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name          string
		form          QuotationForm
		subtotal      float64
		gstAmount     float64
		totalPayable  float64
		effectiveCost float64
	}{
		{
			name: "discount then gst then subsidy",
			form: QuotationForm{
				TotalProjectValue:     "100000",
				GSTRate:               "18",
				Discount:              "5000",
				NetmeterAmount:        "0",
				StampCharges:          "0",
				StateGovernmentAmount: "0",
				StructureAmount:       "0",
				AdditionalCostAmount1: "0",
				AdditionalCostAmount2: "0",
				SubsidyAmount:         "0",
				StateSubsidyAmount:    "0",
			},
			subtotal:      95000,
			gstAmount:     17100,
			totalPayable:  112100,
			effectiveCost: 112100,
		},
		{
			name:          "all empty yields zeros",
			form:          QuotationForm{},
			subtotal:      0,
			gstAmount:     0,
			totalPayable:  0,
			effectiveCost: 0,
		},
		{
			name: "all components summed before discount",
			form: QuotationForm{
				TotalProjectValue:     "200000",
				NetmeterAmount:        "2500",
				StampCharges:          "500",
				StateGovernmentAmount: "1000",
				StructureAmount:       "15000",
				AdditionalCostAmount1: "3000",
				AdditionalCostAmount2: "2000",
				Discount:              "4000",
				GSTRate:               "12",
				SubsidyAmount:         "78000",
				StateSubsidyAmount:    "10000",
			},
			subtotal:      220000,
			gstAmount:     26400,
			totalPayable:  246400,
			effectiveCost: 158400,
		},
		{
			name: "subsidies reduce effective cost only",
			form: QuotationForm{
				TotalProjectValue:  "150000",
				SubsidyAmount:      "78000",
				StateSubsidyAmount: "20000",
			},
			subtotal:      150000,
			gstAmount:     0,
			totalPayable:  150000,
			effectiveCost: 52000,
		},
		{
			name: "non-numeric input counts as zero",
			form: QuotationForm{
				TotalProjectValue: "100000",
				NetmeterAmount:    "abc",
				GSTRate:           "18",
			},
			subtotal:      100000,
			gstAmount:     18000,
			totalPayable:  118000,
			effectiveCost: 118000,
		},
		{
			name: "discount can push subtotal negative",
			form: QuotationForm{
				TotalProjectValue: "1000",
				Discount:          "1500",
				GSTRate:           "18",
			},
			subtotal:      -500,
			gstAmount:     -90,
			totalPayable:  -590,
			effectiveCost: -590,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.form)
			if math.Abs(got.Subtotal-tt.subtotal) > 0.001 {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.subtotal)
			}
			if math.Abs(got.GSTAmount-tt.gstAmount) > 0.001 {
				t.Errorf("GSTAmount = %v, want %v", got.GSTAmount, tt.gstAmount)
			}
			if math.Abs(got.TotalPayable-tt.totalPayable) > 0.001 {
				t.Errorf("TotalPayable = %v, want %v", got.TotalPayable, tt.totalPayable)
			}
			if math.Abs(got.EffectiveCost-tt.effectiveCost) > 0.001 {
				t.Errorf("EffectiveCost = %v, want %v", got.EffectiveCost, tt.effectiveCost)
			}
		})
	}
}

func TestToNullableNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect *float64
	}{
		{"empty is nil", "", nil},
		{"whitespace is nil", "   ", nil},
		{"unparseable is nil", "12a", nil},
		{"zero stays zero", "0", floatPtr(0)},
		{"plain number", "95000", floatPtr(95000)},
		{"decimal", "6.60", floatPtr(6.6)},
		{"padded", " 18 ", floatPtr(18)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNullableNumber(tt.input)
			switch {
			case tt.expect == nil && got != nil:
				t.Errorf("ToNullableNumber(%q) = %v, want nil", tt.input, *got)
			case tt.expect != nil && got == nil:
				t.Errorf("ToNullableNumber(%q) = nil, want %v", tt.input, *tt.expect)
			case tt.expect != nil && got != nil && *got != *tt.expect:
				t.Errorf("ToNullableNumber(%q) = %v, want %v", tt.input, *got, *tt.expect)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
