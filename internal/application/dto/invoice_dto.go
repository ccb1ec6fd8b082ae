package dto

import "github.com/tu-usuario/tanerp/internal/domain/entity"

// SalesLineRequest línea de factura de venta tal como llega del formulario.
// Los campos numéricos usan la deserialización tolerante de entity.Number:
// valores ausentes o no numéricos quedan en cero.
type SalesLineRequest struct {
	ID          string        `json:"id"`
	ItemID      string        `json:"itemId"`
	Description string        `json:"description"`
	Qty         entity.Number `json:"qty"`
	Price       entity.Number `json:"price"`
	DiscountPct entity.Number `json:"discountPct"`
	TaxPct      entity.Number `json:"taxPct"`
}

// SalesInvoiceRequest documento de venta para guardar como borrador o
// contabilizar. Con ID vacío se crea; con ID se actualiza el existente.
type SalesInvoiceRequest struct {
	ID           string             `json:"id"`
	InvoiceNo    string             `json:"invoiceNo"`
	Date         string             `json:"date"`
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Notes        string             `json:"notes"`
	Lines        []SalesLineRequest `json:"lines"`
}

// PurchaseLineRequest línea de factura de compra (costo en lugar de precio).
type PurchaseLineRequest struct {
	ID          string        `json:"id"`
	ItemID      string        `json:"itemId"`
	Description string        `json:"description"`
	Qty         entity.Number `json:"qty"`
	Cost        entity.Number `json:"cost"`
	DiscountPct entity.Number `json:"discountPct"`
	TaxPct      entity.Number `json:"taxPct"`
}

// PurchaseInvoiceRequest documento de compra para guardar o contabilizar.
type PurchaseInvoiceRequest struct {
	ID           string                `json:"id"`
	InvoiceNo    string                `json:"invoiceNo"`
	Date         string                `json:"date"`
	SupplierID   string                `json:"supplierId"`
	SupplierName string                `json:"supplierName"`
	Notes        string                `json:"notes"`
	Lines        []PurchaseLineRequest `json:"lines"`
}

// SetStatusRequest transición directa de estado desde la vista de lista.
type SetStatusRequest struct {
	Status string `json:"status"`
}
