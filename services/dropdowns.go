package services

// GSTOptions is the list of GST percentage options offered on the form.
var GSTOptions = []int{0, 5, 12, 18, 28}

// WarrantyOptions is the list of warranty period options (years).
var WarrantyOptions = []string{"1", "2", "5", "10", "12", "25"}

// QuotationStatusOptions are the lifecycle states of a quotation.
var QuotationStatusOptions = []string{"draft", "sent", "accepted", "rejected"}

// StateOption is one entry of the Indian state dropdown.
type StateOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StateOptions lists the states served, keyed by the ids the front end posts
// back as state_id.
var StateOptions = []StateOption{
	{ID: "1", Name: "Gujarat"},
	{ID: "2", Name: "Maharashtra"},
	{ID: "3", Name: "Rajasthan"},
	{ID: "4", Name: "Madhya Pradesh"},
	{ID: "5", Name: "Uttar Pradesh"},
	{ID: "6", Name: "Karnataka"},
	{ID: "7", Name: "Tamil Nadu"},
	{ID: "8", Name: "Telangana"},
	{ID: "9", Name: "Haryana"},
	{ID: "10", Name: "Punjab"},
}
