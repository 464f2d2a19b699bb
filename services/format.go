package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR formats an amount in Indian Rupee notation: rightmost 3 digits,
// then pairs (₹12,34,567.00). Always two decimal places.
func FormatINR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "₹" + indianGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// indianGrouping inserts commas per the Indian numbering system: the last 3
// digits form one group, then every 2 digits.
func indianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}
	return result
}

// FormatQty renders a quantity without decimals when whole, else with two.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

// AmountToWords converts an amount to Indian English words for the printed
// quotation. Example: 913183 → "Nine Lakhs Thirteen Thousand One Hundred and
// Eighty Three Rupees Only/-"
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only/-"
	}
	return indianWords(rupees) + " Rupees Only/-"
}

func indianWords(n int64) string {
	var parts []string

	if n >= 10000000 {
		parts = append(parts, underHundred(n/10000000)+" Crores")
		n %= 10000000
	}
	if n >= 100000 {
		parts = append(parts, underHundred(n/100000)+" Lakhs")
		n %= 100000
	}
	if n >= 1000 {
		parts = append(parts, underHundred(n/1000)+" Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+underHundred(n))
		} else {
			parts = append(parts, underHundred(n))
		}
	}

	return strings.Join(parts, " ")
}

func underHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
