package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesLine línea de una factura de venta.
type SalesLine struct {
	ID          ID     `json:"id"`
	ItemID      ID     `json:"itemId"`
	Description string `json:"description"`
	Qty         Number `json:"qty"`
	UnitPrice   Number `json:"price"`
	DiscountPct Number `json:"discountPct"`
	TaxPct      Number `json:"taxPct"`
}

// Amounts implementa LineAmounts.
func (l SalesLine) Amounts() (qty, unit, discountPct, taxPct decimal.Decimal) {
	return l.Qty.Decimal, l.UnitPrice.Decimal, l.DiscountPct.Decimal, l.TaxPct.Decimal
}

// SalesInvoice factura de venta. La factura es dueña exclusiva de sus líneas;
// los items y el cliente se referencian por id (relación débil, solo lookup).
type SalesInvoice struct {
	ID           ID          `json:"id"`
	InvoiceNo    string      `json:"invoiceNo"` // asignado una sola vez, inmutable
	Date         string      `json:"date"`      // YYYY-MM-DD
	CustomerID   ID          `json:"customerId"`
	CustomerName string      `json:"customerName"` // denormalizado en el documento
	Notes        string      `json:"notes"`
	Status       string      `json:"status"`
	Lines        []SalesLine `json:"lines"`
	Totals       Totals      `json:"totals"`
	GrandTotal   Number      `json:"grandTotal"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	PostedAt     *time.Time  `json:"postedAt,omitempty"`
}

func (inv *SalesInvoice) DocID() string       { return string(inv.ID) }
func (inv *SalesInvoice) Touch(now time.Time) { inv.UpdatedAt = now }

// Counterparty nombre o id de la contraparte requerida para guardar o contabilizar.
func (inv *SalesInvoice) Counterparty() bool {
	return inv.CustomerName != "" || !inv.CustomerID.IsZero()
}
