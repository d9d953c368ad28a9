// Package pdf genera el recibo de venta en PDF. Es un colaborador externo al
// motor de ledger: consume un SaleEvent ya confirmado y nunca escribe estado.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// ReceiptGenerator genera el recibo de venta usando Maroto v2.
type ReceiptGenerator struct {
	pharmacyName string
}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(pharmacyName string) *ReceiptGenerator {
	if pharmacyName == "" {
		pharmacyName = "Farmacia"
	}
	return &ReceiptGenerator{pharmacyName: pharmacyName}
}

// GenerateSaleReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateSaleReceipt(_ context.Context, sale *entity.SaleEvent, product *entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build()
	m := maroto.New(cfg)

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(g.pharmacyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Recibo de venta "+sale.ID, props.Text{
					Size:  8,
					Align: align.Center,
					Color: colorGray,
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(sale.RecordedAt.Format("2006-01-02 15:04"), props.Text{
					Size:  8,
					Align: align.Center,
					Color: colorGray,
				}),
			),
		),
		row.New(4).Add(col.New(12).Add(line.New())),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Producto", props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(2).Add(text.New("Cant.", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
			col.New(2).Add(text.New("P.Unit", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
			col.New(2).Add(text.New("Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(product.Name, props.Text{Size: 9})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", sale.Quantity), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(sale.UnitPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(sale.Total.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		),
		row.New(4).Add(col.New(12).Add(line.New())),
		row.New(8).Add(
			col.New(8).Add(text.New("TOTAL A PAGAR", props.Text{Size: 11, Style: fontstyle.Bold})),
			col.New(4).Add(text.New(sale.Total.StringFixed(2), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar recibo PDF: %w", err)
	}
	return doc.GetBytes(), nil
}
