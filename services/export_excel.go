package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook from the quotation export
// data and returns the file contents as a byte slice.
func GenerateQuoteExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotation"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 32, 12, 16, 8, 16, 14, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Solar Installation Quotation")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.QuotationNo != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge ref: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Quotation: "+sanitizeExcelCell(data.QuotationNo))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge customer: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Customer: "+sanitizeExcelCell(data.CustomerName))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	if err := f.MergeCell(sheetName, "A4", lastCol+"4"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A4", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A4", lastCol+"4", subtitleStyle)

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "System", "Capacity", "Base Price", "GST%", "Total", "Subsidy", "Payable"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s6", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A6", lastCol+"6", headerStyle)

	// ── Data Rows (starting row 7) ──────────────────────────────────────

	row := 7
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		system := r.System
		if r.Qty > 1 {
			system = fmt.Sprintf("%s x %d", system, r.Qty)
		}

		f.SetCellValue(sheetName, "A"+rowStr, r.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(system))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Capacity))
		f.SetCellValue(sheetName, "D"+rowStr, FormatINR(r.BasePrice))
		f.SetCellValue(sheetName, "E"+rowStr, r.GSTPercent)
		f.SetCellValue(sheetName, "F"+rowStr, FormatINR(r.ProjectValue))
		f.SetCellValue(sheetName, "G"+rowStr, FormatINR(r.SubsidyAmount))
		f.SetCellValue(sheetName, "H"+rowStr, FormatINR(r.CustomerPayment))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaries := []struct {
		label string
		value float64
	}{
		{"Total System Cost:", data.Totals.TotalSystemCost},
		{"Total GST:", data.Totals.TotalGSTAmount},
		{"Total with GST:", data.Totals.TotalWithGST},
		{"Total Subsidy:", data.Totals.TotalSubsidyAmount},
		{"Customer Payment:", data.Totals.TotalCustomerPayment},
		{fmt.Sprintf("Advance (%.0f%%):", data.Totals.AdvancePaymentPercentage), data.Totals.AdvanceAmount},
		{"Balance on Completion:", data.Totals.BalanceAmount},
	}

	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+rowStr, s.label)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "F"+rowStr, FormatINR(s.value))
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, summaryValueStyle)
		row++
	}

	// Amount in words below the summary block.
	row++
	rowStr := fmt.Sprintf("%d", row)
	if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
		return nil, fmt.Errorf("merge words: %w", err)
	}
	f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(data.AmountInWords))
	f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, subtitleStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
