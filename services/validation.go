package services

import (
	"regexp"
	"strings"
)

// Validation regex patterns
var (
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateMobile validates an Indian mobile number (10 digits starting with 6-9).
// Empty input is valid; presence is a required-field concern, not a format one.
func ValidateMobile(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return true
	}
	return len(mobile) == 10 && mobilePattern.MatchString(mobile)
}

// ValidateEmail validates an email address format. Empty input is valid.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// requiredQuotationFields maps the mandatory form fields to their messages,
// keyed by the flat field name used on the wire.
var requiredQuotationFields = []struct {
	name    string
	message string
	value   func(QuotationForm) string
}{
	{"quotation_date", "Quotation date is required", func(f QuotationForm) string { return f.QuotationDate }},
	{"valid_till", "Valid till date is required", func(f QuotationForm) string { return f.ValidTill }},
	{"user_id", "Sales person is required", func(f QuotationForm) string { return f.UserID }},
	{"customer_name", "Customer name is required", func(f QuotationForm) string { return f.CustomerName }},
	{"mobile_number", "Mobile number is required", func(f QuotationForm) string { return f.MobileNumber }},
	{"state_id", "State is required", func(f QuotationForm) string { return f.StateID }},
	{"project_capacity", "Project capacity is required", func(f QuotationForm) string { return f.ProjectCapacity }},
	{"price_per_kw", "Price per kW is required", func(f QuotationForm) string { return f.PricePerKW }},
	{"total_project_value", "Total project value is required", func(f QuotationForm) string { return f.TotalProjectValue }},
}

// ValidateQuotation checks required-field presence and formats on the
// pre-coercion form and returns a field -> message map. An empty map means
// the form may be submitted. There is no cross-field validation; valid_till
// is not checked against quotation_date.
func ValidateQuotation(form QuotationForm) map[string]string {
	errors := make(map[string]string)

	for _, field := range requiredQuotationFields {
		if strings.TrimSpace(field.value(form)) == "" {
			errors[field.name] = field.message
		}
	}

	if _, required := errors["mobile_number"]; !required && !ValidateMobile(form.MobileNumber) {
		errors["mobile_number"] = "Invalid mobile number (expected: 10 digits starting with 6-9)"
	}
	if !ValidateEmail(form.Email) {
		errors["email"] = "Invalid email format"
	}

	return errors
}
