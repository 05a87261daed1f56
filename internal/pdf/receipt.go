// Package pdf renders invoice receipts with maroto.
package pdf

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

// Receipt carries the snapshot fields of a generated invoice. The per-line
// breakdown is not persisted, so the receipt shows totals only.
type Receipt struct {
	Number          string
	Date            string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	TaxRate         decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
}

func Render(rc Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, "INVOICE", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(6, text.NewCol(12, "No. "+rc.Number, props.Text{Size: 9, Align: align.Center}))
	m.AddRow(6, text.NewCol(12, "Date: "+rc.Date, props.Text{Size: 9, Align: align.Center}))
	m.AddRow(10)

	m.AddRow(6, text.NewCol(12, "Billed to", props.Text{Size: 10, Style: fontstyle.Bold}))
	m.AddRow(5, text.NewCol(12, rc.CustomerName, props.Text{Size: 9}))
	m.AddRow(5, text.NewCol(12, rc.CustomerEmail, props.Text{Size: 9}))
	m.AddRow(5, text.NewCol(12, rc.CustomerAddress, props.Text{Size: 9}))
	m.AddRow(10)

	amountRow := func(label string, value decimal.Decimal, bold bool) {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(6,
			text.NewCol(8, label, props.Text{Size: 9, Style: style}),
			text.NewCol(4, value.StringFixed(2), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}
	amountRow("Subtotal", rc.Subtotal, false)
	amountRow("Discount", rc.Discount, false)
	amountRow("Tax ("+rc.TaxRate.StringFixed(2)+"%)", rc.TaxAmount, false)
	amountRow("Total", rc.TotalAmount, true)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
