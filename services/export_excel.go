package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationExcel creates an Excel workbook from the given
// QuotationExportData and returns the file contents as a byte slice.
func GenerateQuotationExcel(data QuotationExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 chars.
	sheetName := data.QuotationNumber
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quotation"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 28, 36, 18, 12, 8, 12}
	for i, column := range columns {
		if err := f.SetColWidth(sheetName, column, column, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", column, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	// ── Title block ─────────────────────────────────────────────────────

	rowNum := 1
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Solar Project Quotation")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("Quotation No: %s", data.QuotationNumber))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), fmt.Sprintf("Date: %s", data.QuotationDate))
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), fmt.Sprintf("Valid Till: %s", data.ValidTill))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), subtitleStyle)

	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("Customer: %s", data.CustomerName))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), fmt.Sprintf("Mobile: %s", data.MobileNumber))

	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum),
		fmt.Sprintf("%.2f kW system @ %s per kW", data.ProjectCapacity, FormatINR(data.PricePerKW)))

	// ── Component table ─────────────────────────────────────────────────

	rowNum += 2
	headers := []string{"#", "Component", "Description", "Make", "Size", "Qty", "Warranty"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s%d", columns[i], rowNum)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), headerStyle)

	for _, r := range data.Rows {
		rowNum++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.Index)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.Section)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), r.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), r.Make)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), r.Size)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), r.Qty)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), r.Warranty)
	}

	// ── Pricing summary ─────────────────────────────────────────────────

	rowNum += 2
	summary := []struct {
		label  string
		amount float64
	}{
		{"Subtotal", data.Subtotal},
		{fmt.Sprintf("GST (%.0f%%)", data.GSTRate), data.GSTAmount},
		{"Total Payable", data.TotalPayable},
		{"Central Subsidy", -data.SubsidyAmount},
		{"State Subsidy", -data.StateSubsidy},
		{"Effective Cost", data.EffectiveCost},
	}
	for _, s := range summary {
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), s.label)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), FormatINR(s.amount))
		f.SetCellStyle(sheetName, fmt.Sprintf("E%d", rowNum), fmt.Sprintf("G%d", rowNum), summaryStyle)
		rowNum++
	}

	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), data.AmountInWords)

	rowNum += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("Generated on %s", data.GeneratedDate))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel buffer: %w", err)
	}

	return buf.Bytes(), nil
}
