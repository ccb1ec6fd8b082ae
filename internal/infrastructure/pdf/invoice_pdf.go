// Package pdf genera la representación imprimible de una factura de venta
// con Maroto v2: cabecera con número y fecha, datos del cliente, tabla de
// líneas y bloque de totales.
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appbilling.InvoicePDFGenerator = (*InvoicePDFGenerator)(nil)

// InvoicePDFGenerator implementa billing.InvoicePDFGenerator con Maroto v2.
type InvoicePDFGenerator struct {
	companyName string
}

// NewInvoicePDFGenerator construye el generador con el nombre de la empresa
// para la cabecera.
func NewInvoicePDFGenerator(companyName string) *InvoicePDFGenerator {
	return &InvoicePDFGenerator{companyName: companyName}
}

// GenerateInvoicePDF genera el PDF A4 y devuelve sus bytes.
func (g *InvoicePDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.SalesInvoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de venta "+inv.InvoiceNo, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(inv.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(inv.Totals)...)

	if inv.Notes != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+inv.Notes, props.Text{Size: 8, Color: colorGray, Top: 3}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y número + fecha + estado (der).
func (g *InvoicePDFGenerator) headerRow(inv *entity.SalesInvoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Factura de venta", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(inv.InvoiceNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+inv.Date, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(inv.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func customerRow(inv *entity.SalesInvoice) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Desc.%", 1, align.Center),
		h("IVA%", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

func tableLineRows(lines []entity.SalesLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		base := l.Qty.Mul(l.UnitPrice.Decimal)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Qty.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.DiscountPct.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.TaxPct.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				base.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRows(t entity.Totals) []core.Row {
	label := func(s string) core.Col {
		return col.New(3).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		}))
	}
	value := func(s string) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1}))
	}
	return []core.Row{
		row.New(6).Add(col.New(6), label("Subtotal:"), value(t.SubTotal.StringFixed(2))),
		row.New(6).Add(col.New(6), label("Descuento:"), value(t.DiscountTotal.StringFixed(2))),
		row.New(6).Add(col.New(6), label("IVA:"), value(t.TaxTotal.StringFixed(2))),
		row.New(8).Add(col.New(6),
			col.New(3).Add(text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2,
			})),
			col.New(3).Add(text.New(t.GrandTotal.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1,
			})),
		),
	}
}
