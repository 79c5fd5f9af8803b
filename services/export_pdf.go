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

// GenerateQuotePDF creates the customer-facing quotation PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, r := range data.Rows {
		addQuoteTableRow(m, r)
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title, quotation number, customer and date.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Solar Installation Quotation", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtle := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quotation: %s", data.QuotationNo), props.Text{
					Size:  9,
					Align: align.Left,
					Color: subtle,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: subtle,
				}),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer: %s", data.CustomerName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: subtle,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Property: %s", data.PropertyType), props.Text{
					Size:  9,
					Align: align.Right,
					Color: subtle,
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row for the project table.
func addQuoteTableHeader(m core.Maroto) {
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
			col.New(3).Add(text.New("System", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Capacity", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Base Price", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("GST", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Subsidy", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Payable", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds one project line to the table.
func addQuoteTableRow(m core.Maroto, r QuoteRow) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	system := r.System
	if r.Qty > 1 {
		system = fmt.Sprintf("%s x %d", system, r.Qty)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
			col.New(3).Add(text.New(system, leftText)),
			col.New(1).Add(text.New(r.Capacity, baseText)),
			col.New(2).Add(text.New(FormatINR(r.BasePrice), rightText)),
			col.New(1).Add(text.New(fmt.Sprintf("%.1f%%", r.GSTPercent), baseText)),
			col.New(2).Add(text.New(FormatINR(r.ProjectValue), rightText)),
			col.New(1).Add(text.New(FormatINR(r.SubsidyAmount), rightText)),
			col.New(1).Add(text.New(FormatINR(r.CustomerPayment), rightText)),
		),
	)
}

// addQuoteSummary adds the totals block and the payment split.
func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	lines := []struct {
		label string
		value float64
	}{
		{"Total System Cost", data.Totals.TotalSystemCost},
		{"Total GST", data.Totals.TotalGSTAmount},
		{"Total with GST", data.Totals.TotalWithGST},
		{"Total Subsidy", data.Totals.TotalSubsidyAmount},
		{"Customer Payment", data.Totals.TotalCustomerPayment},
		{fmt.Sprintf("Advance (%.0f%%)", data.Totals.AdvancePaymentPercentage), data.Totals.AdvanceAmount},
		{"Balance on Completion", data.Totals.BalanceAmount},
	}

	for _, line := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(line.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatINR(line.value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(data.AmountInWords, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Right,
				}),
			),
		),
	)
}

// addQuoteFooter adds the generated-date line at the bottom.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
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
