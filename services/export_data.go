package services

// QuotationExportRow is a single system line on the printed quotation:
// one row per populated section of the form.
type QuotationExportRow struct {
	Index       string
	Section     string
	Description string
	Make        string
	Size        string
	Qty         float64
	Warranty    string
}

// QuotationExportData holds everything the PDF and Excel renderers need.
type QuotationExportData struct {
	QuotationNumber string
	QuotationDate   string
	ValidTill       string
	CustomerName    string
	MobileNumber    string
	Email           string
	Address         string
	StateName       string

	ProjectCapacity float64
	PricePerKW      float64

	Rows []QuotationExportRow

	Subtotal      float64
	GSTRate       float64
	GSTAmount     float64
	TotalPayable  float64
	SubsidyAmount float64
	StateSubsidy  float64
	EffectiveCost float64

	AmountInWords string
	GeneratedDate string
}

// sectionLabels maps section keys to the display names printed on exports.
var sectionLabels = map[Section]string{
	SectionStructure:      "Module Mounting Structure",
	SectionPanel:          "Solar PV Modules",
	SectionInverter:       "Inverter",
	SectionHybridInverter: "Hybrid Inverter",
	SectionBattery:        "Battery Bank",
	SectionACDB:           "ACDB",
	SectionDCDB:           "DCDB",
	SectionCableAC:        "AC Cable",
	SectionCableDC:        "DC Cable",
	SectionEarthing:       "Earthing Kit",
	SectionLA:             "Lightning Arrester",
}

// SectionLabel returns the printable name for a section.
func SectionLabel(s Section) string {
	if label, ok := sectionLabels[s]; ok {
		return label
	}
	return string(s)
}
