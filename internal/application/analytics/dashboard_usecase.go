// Package analytics contiene el caso de uso del tablero: conteos de
// maestros y totales de facturación calculados al momento desde las
// colecciones (no hay snapshot precalculado).
package analytics

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
)

// DashboardUseCase resumen del negocio para la vista inicial.
type DashboardUseCase struct {
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	customers repository.CustomerRepository
	sales     repository.SalesInvoiceRepository
	purchases repository.PurchaseInvoiceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
	sales repository.SalesInvoiceRepository,
	purchases repository.PurchaseInvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		items:     items,
		suppliers: suppliers,
		customers: customers,
		sales:     sales,
		purchases: purchases,
	}
}

// GetSummary recorre las cinco colecciones y agrega conteos y totales.
// Los montos de venta y compra solo suman facturas POSTED; solo los items
// activos cuentan como agotados.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	out := &dto.DashboardSummary{}

	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	out.Items = len(items)
	for _, it := range items {
		if it.Active() && !it.StockQty.IsPositive() {
			out.OutOfStockItems++
		}
	}

	suppliers, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		if s.Status == entity.StatusActive {
			out.ActiveSuppliers++
		}
	}

	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out.Customers = len(customers)

	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	out.SalesInvoices = len(sales)
	salesTotal := decimal.Zero
	for _, inv := range sales {
		switch inv.Status {
		case entity.InvoiceStatusDraft:
			out.DraftSales++
		case entity.InvoiceStatusPosted:
			out.PostedSales++
			salesTotal = salesTotal.Add(inv.GrandTotal.Decimal)
		}
	}
	out.SalesPostedTotal = entity.N(salesTotal)

	purchases, err := uc.purchases.List(ctx)
	if err != nil {
		return nil, err
	}
	purchaseTotal := decimal.Zero
	for _, inv := range purchases {
		switch inv.Status {
		case entity.InvoiceStatusDraft:
			out.PurchaseDrafts++
		case entity.InvoiceStatusPosted:
			out.PostedPurchases++
			purchaseTotal = purchaseTotal.Add(inv.GrandTotal.Decimal)
		}
	}
	out.PurchasePostedTotal = entity.N(purchaseTotal)

	return out, nil
}
