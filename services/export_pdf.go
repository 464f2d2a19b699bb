package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders a quotation document using maroto/v2 and
// returns the raw PDF bytes.
func GenerateQuotationPDF(data QuotationExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addCustomerBlock(m, data)
	addSystemTableHeader(m)
	for _, r := range data.Rows {
		addSystemTableRow(m, r)
	}
	addPricingSummary(m, data)
	addQuotationFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the title row with number and dates.
func addQuotationHeader(m core.Maroto, data QuotationExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Solar Project Quotation", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(
				text.New(fmt.Sprintf("Quotation No: %s", data.QuotationNumber), props.Text{
					Size: 9, Align: align.Left, Color: grey,
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Date: %s", data.QuotationDate), props.Text{
					Size: 9, Align: align.Center, Color: grey,
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Valid Till: %s", data.ValidTill), props.Text{
					Size: 9, Align: align.Right, Color: grey,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addCustomerBlock adds customer contact details and the system headline.
func addCustomerBlock(m core.Maroto, data QuotationExportData) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(2).Add(text.New("Customer", label)),
			col.New(6).Add(text.New(data.CustomerName, value)),
			col.New(2).Add(text.New("Mobile", label)),
			col.New(2).Add(text.New(data.MobileNumber, value)),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Address", label)),
			col.New(6).Add(text.New(data.Address, value)),
			col.New(2).Add(text.New("State", label)),
			col.New(2).Add(text.New(data.StateName, value)),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("%.2f kW Grid-Connected Rooftop Solar System @ %s per kW",
						data.ProjectCapacity, FormatINR(data.PricePerKW)),
					props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left},
				),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addSystemTableHeader adds the column header row for the system components table.
func addSystemTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Component", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Make", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Size", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Warranty", headerText)).WithStyle(&headerCell),
		),
	)
}

// addSystemTableRow adds one populated section to the components table.
func addSystemTableRow(m core.Maroto, r QuotationExportRow) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Index, baseText)),
			col.New(3).Add(text.New(r.Section, leftText)),
			col.New(3).Add(text.New(r.Description, leftText)),
			col.New(2).Add(text.New(r.Make, baseText)),
			col.New(1).Add(text.New(r.Size, baseText)),
			col.New(1).Add(text.New(FormatQty(r.Qty), baseText)),
			col.New(1).Add(text.New(r.Warranty, baseText)),
		),
	)
}

// addPricingSummary adds the chained totals block.
func addPricingSummary(m core.Maroto, data QuotationExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	addSummaryRow := func(label string, amount float64) {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatINR(amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Subtotal", data.Subtotal)
	addSummaryRow(fmt.Sprintf("GST (%.0f%%)", data.GSTRate), data.GSTAmount)
	addSummaryRow("Total Payable", data.TotalPayable)
	addSummaryRow("Central Subsidy", -data.SubsidyAmount)
	addSummaryRow("State Subsidy", -data.StateSubsidy)
	addSummaryRow("Effective Cost", data.EffectiveCost)
}

// addQuotationFooter adds the amount in words and the generated-on line.
func addQuotationFooter(m core.Maroto, data QuotationExportData) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(data.AmountInWords, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
