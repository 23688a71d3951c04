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

// GenerateQuotePDF renders the client quote as a printable PDF using
// maroto/v2. Line totals already include their prorated markup.
func GenerateQuotePDF(title string, q Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
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

	addQuoteHeader(m, title, q)
	addQuoteTableHeader(m)
	for _, l := range q.Lines {
		addQuoteRow(m, l)
	}
	addQuoteTotals(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title, client, address and date.
func addQuoteHeader(m core.Maroto, title string, q Quote) {
	grey := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(8).Add(
				text.New("Client: "+q.ClientName, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(4).Add(
				text.New("Date: "+q.Date, props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Address: "+q.ProjectAddress, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row for the quote table.
func addQuoteTableHeader(m core.Maroto) {
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(7).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuoteRow adds one quote line; notes, when present, go on a second,
// lighter row.
func addQuoteRow(m core.Maroto, l QuoteLine) {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	left.Style = fontstyle.Bold
	right := base
	right.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(7).Add(text.New(l.Service+" - "+l.Description, left)),
			col.New(1).Add(text.New(FormatQty(l.Qty), right)),
			col.New(1).Add(text.New(l.Unit, base)),
			col.New(3).Add(text.New(FormatUSD(l.Total), right)),
		),
	)

	if l.Notes != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(l.Notes, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				})),
			),
		)
	}
}

// addQuoteTotals adds fees, discount, tax and the grand total.
func addQuoteTotals(m core.Maroto, q Quote) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 9, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}

	rows := []struct {
		label string
		value string
	}{
		{"Travel / fees", FormatUSD(q.TravelAmount)},
		{"Disposal fee", FormatUSD(q.DisposalAmount)},
		{"Discount", "(" + FormatUSD(q.DiscountAmount) + ")"},
		{"Tax", FormatUSD(q.TaxAmount)},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(r.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(r.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	bold := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Total", bold)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatUSD(q.GrandTotal), bold)).WithStyle(summaryCell),
		),
	)
}
