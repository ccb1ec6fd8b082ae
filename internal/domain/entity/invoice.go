package entity

import "github.com/shopspring/decimal"

// Estados del ciclo de vida de una factura. DRAFT es el estado inicial;
// POSTED, CANCELLED y VOID son terminales: no hay transiciones de salida.
const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusPosted    = "POSTED"
	InvoiceStatusCancelled = "CANCELLED"
	InvoiceStatusVoid      = "VOID"
)

// TerminalStatus indica si el estado no admite más transiciones.
func TerminalStatus(status string) bool {
	switch status {
	case InvoiceStatusPosted, InvoiceStatusCancelled, InvoiceStatusVoid:
		return true
	}
	return false
}

// Totals snapshot de totales de una factura. El valor canónico se recalcula
// siempre desde las líneas al guardar; esto es solo la copia persistida.
type Totals struct {
	SubTotal      Number `json:"subTotal"`
	DiscountTotal Number `json:"discountTotal"`
	TaxTotal      Number `json:"taxTotal"`
	GrandTotal    Number `json:"grandTotal"`
}

// LineAmounts expone las cifras de una línea para el cálculo de totales.
// Las líneas de venta usan precio unitario y las de compra costo unitario;
// la aritmética es idéntica.
type LineAmounts interface {
	Amounts() (qty, unit, discountPct, taxPct decimal.Decimal)
}
