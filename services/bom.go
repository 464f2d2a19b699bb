// Package services provides the BOM mapping, pricing and validation logic
// behind the quotation form.
package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Section is one of the fixed technical categories used to group BOM lines
// on the quotation form.
type Section string

const (
	SectionStructure      Section = "structure"
	SectionPanel          Section = "panel"
	SectionInverter       Section = "inverter"
	SectionHybridInverter Section = "hybridInverter"
	SectionBattery        Section = "battery"
	SectionCableAC        Section = "cable_ac"
	SectionCableDC        Section = "cable_dc"
	SectionACDB           Section = "acdb"
	SectionDCDB           Section = "dcdb"
	SectionLA             Section = "la"
	SectionEarthing       Section = "earthing"
)

// AllSections lists every section in form display order.
var AllSections = []Section{
	SectionStructure,
	SectionPanel,
	SectionInverter,
	SectionHybridInverter,
	SectionBattery,
	SectionACDB,
	SectionDCDB,
	SectionCableAC,
	SectionCableDC,
	SectionEarthing,
	SectionLA,
}

// SectionProperties is the per-section property object carried on a product.
// Which pointer is non-nil on ProductProperties decides the product's section,
// so the bag is decoded once at catalog load instead of re-inspected ad hoc.
type SectionProperties struct {
	Material    string `json:"material"`
	Warranty    string `json:"warranty"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ProductProperties is the decoded properties bag of a product. At most one
// of the pointers is expected to be set; products violating that are
// classified by the first match in chain order.
type ProductProperties struct {
	Structure      *SectionProperties `json:"structure"`
	Panel          *SectionProperties `json:"panel"`
	Inverter       *SectionProperties `json:"inverter"`
	HybridInverter *SectionProperties `json:"hybrid_inverter"`
	Battery        *SectionProperties `json:"battery"`
	ACCable        *SectionProperties `json:"ac_cable"`
	DCCable        *SectionProperties `json:"dc_cable"`
}

// Product is a catalog product as consumed by the BOM mapper. MakeName is
// carried alongside MakeID so the form can label a make that is absent from
// the active make list (e.g. deactivated after the BOM was priced).
type Product struct {
	ID         string            `json:"id"`
	Name       string            `json:"product_name"`
	Capacity   float64           `json:"capacity"`
	MakeID     string            `json:"product_make_id"`
	MakeName   string            `json:"product_make_name"`
	TypeName   string            `json:"product_type_name"`
	Properties ProductProperties `json:"properties"`
}

// BOMLine is one line of a project price's bill of material.
type BOMLine struct {
	Product     Product
	Quantity    float64
	Description string
}

// BOMPatch is the result of mapping a BOM detail list: a flat form-field
// patch plus the full product retained per section for make-label fallback.
type BOMPatch struct {
	Fields            map[string]any       `json:"fields"`
	FallbackBySection map[Section]*Product `json:"fallback_by_section"`
}

// Classify decides the section of a BOM line from the presence of property
// objects. Chain order is significant: a product carrying several recognized
// keys is classified by the first match only.
func Classify(line BOMLine) (Section, bool) {
	p := line.Product.Properties
	switch {
	case p.Structure != nil:
		return SectionStructure, true
	case p.Panel != nil:
		return SectionPanel, true
	case p.Inverter != nil:
		return SectionInverter, true
	case p.HybridInverter != nil:
		return SectionHybridInverter, true
	case p.Battery != nil:
		return SectionBattery, true
	case p.ACCable != nil:
		return SectionCableAC, true
	case p.DCCable != nil:
		return SectionCableDC, true
	}
	return "", false
}

// classifyByTypeName matches the product's type name against the sections
// that are recognized by type rather than by property object. Evaluated in
// addition to Classify on every line.
func classifyByTypeName(line BOMLine) (Section, bool) {
	switch strings.ToLower(strings.TrimSpace(line.Product.TypeName)) {
	case "acdb":
		return SectionACDB, true
	case "dcdb":
		return SectionDCDB, true
	case "la":
		return SectionLA, true
	case "earthing":
		return SectionEarthing, true
	}
	return "", false
}

// sizeFieldName returns the form field holding the section's size value.
// Structure is the odd one out: its dimension field is a height.
func sizeFieldName(s Section) string {
	if s == SectionStructure {
		return "structure_height"
	}
	return string(s) + "_size"
}

// DefaultFormPatch returns the all-defaults reset patch: every section field
// blank and project_capacity empty. MapBOMToFormPatch starts from this so a
// new project-price selection blanks out fields a previous selection filled.
func DefaultFormPatch() map[string]any {
	fields := make(map[string]any)
	for _, s := range AllSections {
		fields[string(s)+"_product"] = ""
		fields[sizeFieldName(s)] = ""
		fields[string(s)+"_quantity"] = ""
		fields[string(s)+"_make_ids"] = []string{}
		fields[string(s)+"_warranty"] = ""
		fields[string(s)+"_type"] = ""
		fields[string(s)+"_description"] = ""
	}
	fields["project_capacity"] = ""
	return fields
}

// MapBOMToFormPatch maps a BOM detail list into a quotation form patch.
// Re-running on the same list yields the same patch. When two lines match
// the same section the later one overwrites the earlier (observed behavior
// of the pricing source; lines are not aggregated).
func MapBOMToFormPatch(lines []BOMLine) BOMPatch {
	patch := BOMPatch{
		Fields:            DefaultFormPatch(),
		FallbackBySection: make(map[Section]*Product),
	}

	for i := range lines {
		line := lines[i]
		if section, ok := Classify(line); ok {
			writeSectionFields(&patch, section, line)

			// Panel drives the project capacity: Wp * count / 1000, kW.
			if section == SectionPanel {
				kw := line.Product.Capacity * line.Quantity / 1000
				patch.Fields["project_capacity"] = fmt.Sprintf("%.2f", kw)
			}
		}
		if section, ok := classifyByTypeName(line); ok {
			writeSectionFields(&patch, section, line)
		}
	}

	return patch
}

// writeSectionFields fills one section's form fields from a matched line and
// records the product for make-label fallback.
func writeSectionFields(patch *BOMPatch, section Section, line BOMLine) {
	product := line.Product
	props := sectionProps(product.Properties, section)

	sizeValue := formatNumber(product.Capacity)
	if section == SectionStructure && props != nil {
		sizeValue = props.Material
	}

	makeIDs := []string{}
	if product.MakeID != "" {
		makeIDs = []string{product.MakeID}
	}

	warranty := ""
	typ := ""
	description := line.Description
	if props != nil {
		warranty = props.Warranty
		typ = props.Type
		if props.Description != "" {
			description = props.Description
		}
	}

	prefix := string(section)
	patch.Fields[prefix+"_product"] = product.ID
	patch.Fields[sizeFieldName(section)] = sizeValue
	patch.Fields[prefix+"_quantity"] = formatNumber(line.Quantity)
	patch.Fields[prefix+"_make_ids"] = makeIDs
	patch.Fields[prefix+"_warranty"] = warranty
	patch.Fields[prefix+"_type"] = typ
	patch.Fields[prefix+"_description"] = description

	p := product
	patch.FallbackBySection[section] = &p
}

// sectionProps returns the property object backing a section, or nil for the
// type-name-matched sections which carry none.
func sectionProps(p ProductProperties, section Section) *SectionProperties {
	switch section {
	case SectionStructure:
		return p.Structure
	case SectionPanel:
		return p.Panel
	case SectionInverter:
		return p.Inverter
	case SectionHybridInverter:
		return p.HybridInverter
	case SectionBattery:
		return p.Battery
	case SectionCableAC:
		return p.ACCable
	case SectionCableDC:
		return p.DCCable
	}
	return nil
}

// formatNumber renders a float for a string-typed form field without
// trailing zeros ("330", "2.5"). Zero renders as empty, matching the form's
// blank defaults.
func formatNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
