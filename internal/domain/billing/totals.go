// Package billing contiene los servicios de dominio de facturación puros
// (sin dependencias de infraestructura).
package billing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// CalcTotals calcula los totales de una factura a partir de sus líneas.
//
// Por línea:
//
//	base          = qty * unit
//	lineDiscount  = base * discountPct/100
//	lineTax       = (base - lineDiscount) * taxPct/100
//
// Agregados: subTotal = Σ base; discountTotal = Σ lineDiscount;
// taxTotal = Σ lineTax; grandTotal = subTotal - discountTotal + taxTotal.
//
// Es una función pura y determinista: sin líneas retorna todo en cero, y el
// resultado no depende del orden de las líneas.
func CalcTotals[L entity.LineAmounts](lines []L) entity.Totals {
	subTotal := decimal.Zero
	discountTotal := decimal.Zero
	taxTotal := decimal.Zero

	for _, l := range lines {
		qty, unit, discountPct, taxPct := l.Amounts()

		base := qty.Mul(unit)
		lineDiscount := base.Mul(discountPct).Div(cien)
		lineTax := base.Sub(lineDiscount).Mul(taxPct).Div(cien)

		subTotal = subTotal.Add(base)
		discountTotal = discountTotal.Add(lineDiscount)
		taxTotal = taxTotal.Add(lineTax)
	}

	return entity.Totals{
		SubTotal:      entity.N(subTotal),
		DiscountTotal: entity.N(discountTotal),
		TaxTotal:      entity.N(taxTotal),
		GrandTotal:    entity.N(subTotal.Sub(discountTotal).Add(taxTotal)),
	}
}
