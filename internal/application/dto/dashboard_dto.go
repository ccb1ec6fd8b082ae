package dto

import "github.com/tu-usuario/tanerp/internal/domain/entity"

// DashboardSummary cifras del tablero: conteos de maestros y totales de
// facturación, calculados al momento desde las colecciones.
type DashboardSummary struct {
	Customers       int `json:"customers"`
	ActiveSuppliers int `json:"activeSuppliers"`
	Items           int `json:"items"`
	OutOfStockItems int `json:"outOfStockItems"`

	SalesInvoices   int `json:"salesInvoices"`
	DraftSales      int `json:"draftSales"`
	PostedSales     int `json:"postedSales"`
	PurchaseDrafts  int `json:"purchaseDrafts"`
	PostedPurchases int `json:"postedPurchases"`

	SalesPostedTotal    entity.Number `json:"salesPostedTotal"`
	PurchasePostedTotal entity.Number `json:"purchasePostedTotal"`
}
