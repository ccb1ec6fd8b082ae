package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLine línea de una factura de compra. Usa costo unitario en lugar
// de precio de venta; la aritmética de totales es la misma.
type PurchaseLine struct {
	ID          ID     `json:"id"`
	ItemID      ID     `json:"itemId"`
	Description string `json:"description"`
	Qty         Number `json:"qty"`
	Cost        Number `json:"cost"`
	DiscountPct Number `json:"discountPct"`
	TaxPct      Number `json:"taxPct"`
}

// Amounts implementa LineAmounts.
func (l PurchaseLine) Amounts() (qty, unit, discountPct, taxPct decimal.Decimal) {
	return l.Qty.Decimal, l.Cost.Decimal, l.DiscountPct.Decimal, l.TaxPct.Decimal
}

// PurchaseInvoice factura de compra. Contabilizarla (POSTED) incrementa el
// stock de cada item referenciado; ese efecto se aplica exactamente una vez.
type PurchaseInvoice struct {
	ID           ID             `json:"id"`
	InvoiceNo    string         `json:"invoiceNo"`
	Date         string         `json:"date"` // YYYY-MM-DD
	SupplierID   ID             `json:"supplierId"`
	SupplierName string         `json:"supplierName"`
	Notes        string         `json:"notes"`
	Status       string         `json:"status"`
	Lines        []PurchaseLine `json:"lines"`
	Totals       Totals         `json:"totals"`
	GrandTotal   Number         `json:"grandTotal"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	PostedAt     *time.Time     `json:"postedAt,omitempty"`
}

func (inv *PurchaseInvoice) DocID() string       { return string(inv.ID) }
func (inv *PurchaseInvoice) Touch(now time.Time) { inv.UpdatedAt = now }

// Counterparty nombre o id del proveedor requerido para guardar o contabilizar.
func (inv *PurchaseInvoice) Counterparty() bool {
	return inv.SupplierName != "" || !inv.SupplierID.IsZero()
}
