package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/application/inventory"
	"github.com/tu-usuario/tanerp/internal/domain"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/infrastructure/kvrepo"
	"github.com/tu-usuario/tanerp/internal/infrastructure/memstore"
	"github.com/tu-usuario/tanerp/pkg/logger"
)

// arma el caso de uso de compras sobre un almacén en memoria con un item
// sembrado (stock inicial 3).
func newPurchaseUC(t *testing.T) (*billing.PurchaseInvoiceUseCase, *kvrepo.ItemRepository) {
	t.Helper()
	store := memstore.New()
	items := kvrepo.NewItemRepository(store)
	now := time.Now()
	require.NoError(t, items.Create(context.Background(), &entity.Item{
		ID: "1", Code: "ITM-001", Name: "Resma papel", UOM: "PCS",
		StockQty: entity.NFromInt(3), Status: entity.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))

	ledger := inventory.NewStockLedger(items, logger.Nop())
	uc := billing.NewPurchaseInvoiceUseCase(kvrepo.NewPurchaseInvoiceRepository(store), ledger, logger.Nop())
	return uc, items
}

func purchaseRequest() dto.PurchaseInvoiceRequest {
	return dto.PurchaseInvoiceRequest{
		SupplierName: "Distribuidora Andina",
		Lines: []dto.PurchaseLineRequest{
			{ItemID: "1", Description: "Resma papel", Qty: entity.NFromInt(5), Cost: entity.NFromInt(4), TaxPct: entity.NFromInt(15)},
		},
	}
}

// TestCompra_ContraparteSoloPorID el id de proveedor sin nombre basta como
// contraparte.
func TestCompra_ContraparteSoloPorID(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPurchaseUC(t)

	in := purchaseRequest()
	in.SupplierName = ""
	in.SupplierID = "prov-1"

	inv, err := uc.SaveDraft(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "prov-1", string(inv.SupplierID))
}

// TestPostCompra_SumaStock contabilizar incrementa el stock del item por la
// cantidad de la línea: 3 + 5 = 8.
func TestPostCompra_SumaStock(t *testing.T) {
	ctx := context.Background()
	uc, items := newPurchaseUC(t)

	inv, err := uc.Post(ctx, purchaseRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPosted, inv.Status)
	assert.Equal(t, "PINV-000001", inv.InvoiceNo)
	require.NotNil(t, inv.PostedAt)

	item, err := items.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(8)), "stock: %s", item.StockQty)
}

// TestPostCompra_NoDuplicaAjuste recontabilizar falla con ErrAlreadyPosted y
// el stock no se toca otra vez.
func TestPostCompra_NoDuplicaAjuste(t *testing.T) {
	ctx := context.Background()
	uc, items := newPurchaseUC(t)

	inv, err := uc.Post(ctx, purchaseRequest())
	require.NoError(t, err)

	again := purchaseRequest()
	again.ID = inv.ID.String()
	_, err = uc.Post(ctx, again)
	assert.ErrorIs(t, err, domain.ErrAlreadyPosted)

	item, err := items.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(8)), "el stock debe aplicarse exactamente una vez")
}

// TestBorradorCompra_NoTocaStock guardar el borrador no mueve inventario.
func TestBorradorCompra_NoTocaStock(t *testing.T) {
	ctx := context.Background()
	uc, items := newPurchaseUC(t)

	inv, err := uc.SaveDraft(ctx, purchaseRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	assert.Nil(t, inv.PostedAt)

	item, err := items.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(3)))
}

// TestPostCompra_ItemInexistenteSeOmite una línea que referencia un item
// borrado no aborta la contabilización; las demás líneas sí ajustan.
func TestPostCompra_ItemInexistenteSeOmite(t *testing.T) {
	ctx := context.Background()
	uc, items := newPurchaseUC(t)

	in := purchaseRequest()
	in.Lines = append(in.Lines, dto.PurchaseLineRequest{
		ItemID: "fantasma", Description: "item borrado", Qty: entity.NFromInt(99), Cost: entity.NFromInt(1),
	})

	inv, err := uc.Post(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPosted, inv.Status)
	assert.Len(t, inv.Lines, 2, "la línea huérfana se conserva en el documento")

	item, err := items.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(8)))
}

// TestPostCompra_LineasSinItemOSinCantidad líneas de texto libre (sin item)
// o con cantidad no positiva no generan ajuste.
func TestPostCompra_LineasSinItemOSinCantidad(t *testing.T) {
	ctx := context.Background()
	uc, items := newPurchaseUC(t)

	in := dto.PurchaseInvoiceRequest{
		SupplierName: "Distribuidora Andina",
		Lines: []dto.PurchaseLineRequest{
			{Description: "flete", Qty: entity.NFromInt(1), Cost: entity.NFromInt(30)},
			{ItemID: "1", Description: "qty cero", Qty: entity.NFromInt(0), Cost: entity.NFromInt(4)},
		},
	}

	_, err := uc.Post(ctx, in)
	require.NoError(t, err)

	item, err := items.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(3)), "sin ajustes: stock intacto")
}

// TestCompra_SinContraparte proveedor requerido igual que en ventas.
func TestCompra_SinContraparte(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPurchaseUC(t)

	_, err := uc.SaveDraft(ctx, dto.PurchaseInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCompra_TotalesConCosto la aritmética de totales usa el costo unitario:
// 5*4 = 20, IVA 15% = 3, total 23.
func TestCompra_TotalesConCosto(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPurchaseUC(t)

	inv, err := uc.SaveDraft(ctx, purchaseRequest())
	require.NoError(t, err)
	assert.True(t, inv.Totals.SubTotal.Equal(decimal.NewFromInt(20)))
	assert.True(t, inv.Totals.TaxTotal.Equal(decimal.NewFromInt(3)))
	assert.True(t, inv.GrandTotal.Equal(decimal.NewFromInt(23)))
}
