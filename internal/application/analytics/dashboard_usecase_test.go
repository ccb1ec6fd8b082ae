package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tanerp/internal/application/analytics"
	"github.com/tu-usuario/tanerp/internal/domain/storage"
	"github.com/tu-usuario/tanerp/internal/infrastructure/kvrepo"
	"github.com/tu-usuario/tanerp/internal/infrastructure/memstore"
)

// TestGetSummary_AgregaDesdeColecciones el resumen cuenta maestros y solo
// suma montos de facturas POSTED; los borradores no aportan al total.
func TestGetSummary_AgregaDesdeColecciones(t *testing.T) {
	store := memstore.New()
	store.Seed(storage.CollectionItems, []byte(`[
		{"id":"1","code":"A","name":"con stock","stockQty":5,"status":"ACTIVE"},
		{"id":"2","code":"B","name":"agotado","stockQty":0,"status":"ACTIVE"},
		{"id":"3","code":"C","name":"descontinuado","stockQty":0,"status":"INACTIVE"}
	]`))
	store.Seed(storage.CollectionSuppliers, []byte(`[
		{"id":"1","code":"SUP-0001","name":"activo","status":"ACTIVE"},
		{"id":"2","code":"SUP-0002","name":"inactivo","status":"INACTIVE"}
	]`))
	store.Seed(storage.CollectionCustomers, []byte(`[
		{"id":"1","name":"ABC Trading Co.","status":"ACTIVE"}
	]`))
	store.Seed(storage.CollectionSalesInvoices, []byte(`[
		{"id":"1","invoiceNo":"SI-000001","status":"POSTED","grandTotal":1035},
		{"id":"2","invoiceNo":"SI-000002","status":"DRAFT","grandTotal":500},
		{"id":"3","invoiceNo":"SI-000003","status":"CANCELLED","grandTotal":90}
	]`))
	store.Seed(storage.CollectionPurchaseInvoices, []byte(`[
		{"id":"1","invoiceNo":"PINV-000001","status":"POSTED","grandTotal":23}
	]`))

	uc := analytics.NewDashboardUseCase(
		kvrepo.NewItemRepository(store),
		kvrepo.NewSupplierRepository(store),
		kvrepo.NewCustomerRepository(store),
		kvrepo.NewSalesInvoiceRepository(store),
		kvrepo.NewPurchaseInvoiceRepository(store),
	)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Items)
	assert.Equal(t, 1, summary.OutOfStockItems, "los items inactivos sin stock no cuentan como agotados")
	assert.Equal(t, 1, summary.ActiveSuppliers, "los proveedores inactivos no cuentan")
	assert.Equal(t, 1, summary.Customers)

	assert.Equal(t, 3, summary.SalesInvoices)
	assert.Equal(t, 1, summary.DraftSales)
	assert.Equal(t, 1, summary.PostedSales)
	assert.True(t, summary.SalesPostedTotal.Equal(decimal.NewFromInt(1035)),
		"solo las facturas POSTED suman al total: %s", summary.SalesPostedTotal)

	assert.Equal(t, 1, summary.PostedPurchases)
	assert.True(t, summary.PurchasePostedTotal.Equal(decimal.NewFromInt(23)))
}

// TestGetSummary_Vacio sin datos todo queda en cero.
func TestGetSummary_Vacio(t *testing.T) {
	store := memstore.New()
	uc := analytics.NewDashboardUseCase(
		kvrepo.NewItemRepository(store),
		kvrepo.NewSupplierRepository(store),
		kvrepo.NewCustomerRepository(store),
		kvrepo.NewSalesInvoiceRepository(store),
		kvrepo.NewPurchaseInvoiceRepository(store),
	)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Items)
	assert.Zero(t, summary.SalesInvoices)
	assert.True(t, summary.SalesPostedTotal.IsZero())
}
