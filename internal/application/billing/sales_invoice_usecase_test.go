package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tanerp/internal/application/billing"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/infrastructure/kvrepo"
	"github.com/tu-usuario/tanerp/internal/infrastructure/memstore"
	"github.com/tu-usuario/tanerp/pkg/logger"
)

func newSalesUC() *billing.SalesInvoiceUseCase {
	return billing.NewSalesInvoiceUseCase(kvrepo.NewSalesInvoiceRepository(memstore.New()), logger.Nop())
}

func salesRequest() dto.SalesInvoiceRequest {
	return dto.SalesInvoiceRequest{
		CustomerName: "ABC Trading Co.",
		Lines: []dto.SalesLineRequest{
			{ItemID: "1", Description: "Resma papel", Qty: entity.NFromInt(10), Price: entity.NFromInt(100), DiscountPct: entity.NFromInt(10), TaxPct: entity.NFromInt(15)},
		},
	}
}

// TestSaveDraft_CreaConNumeroYTotales el alta asigna id y consecutivo y
// recalcula los totales desde las líneas.
func TestSaveDraft_CreaConNumeroYTotales(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	inv, err := uc.SaveDraft(ctx, salesRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, "SI-000001", inv.InvoiceNo)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	assert.NotEmpty(t, inv.Date, "sin fecha en el request se usa la del día")
	assert.True(t, inv.Totals.GrandTotal.Equal(decimal.NewFromInt(1035)), "grandTotal: %s", inv.Totals.GrandTotal)
	assert.True(t, inv.GrandTotal.Equal(inv.Totals.GrandTotal.Decimal))
	assert.Nil(t, inv.PostedAt)
}

// TestSaveDraft_SinContraparte sin nombre ni id de cliente no se persiste
// nada.
func TestSaveDraft_SinContraparte(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	_, err := uc.SaveDraft(ctx, dto.SalesInvoiceRequest{Lines: salesRequest().Lines})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "la validación fallida no debe dejar rastro")
}

// TestSaveDraft_ContraparteSoloPorID el id de cliente sin nombre basta como
// contraparte.
func TestSaveDraft_ContraparteSoloPorID(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	in := salesRequest()
	in.CustomerName = ""
	in.CustomerID = "cliente-1"

	inv, err := uc.SaveDraft(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "cliente-1", string(inv.CustomerID))
}

// TestSaveDraft_NumeroInmutable actualizar el borrador conserva el número
// asignado en el alta aunque el request traiga otro.
func TestSaveDraft_NumeroInmutable(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	created, err := uc.SaveDraft(ctx, salesRequest())
	require.NoError(t, err)

	update := salesRequest()
	update.ID = created.ID.String()
	update.InvoiceNo = "SI-999999"
	update.Notes = "editado"

	updated, err := uc.SaveDraft(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNo, updated.InvoiceNo)
	assert.Equal(t, "editado", updated.Notes)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "CreatedAt se conserva en la actualización")
}

// TestPost_EstampaPostedAt contabilizar marca POSTED con su timestamp.
func TestPost_EstampaPostedAt(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	inv, err := uc.Post(ctx, salesRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPosted, inv.Status)
	require.NotNil(t, inv.PostedAt)
}

// TestPost_YaContabilizada recontabilizar retorna ErrAlreadyPosted, nunca un
// no-op silencioso.
func TestPost_YaContabilizada(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	inv, err := uc.Post(ctx, salesRequest())
	require.NoError(t, err)

	again := salesRequest()
	again.ID = inv.ID.String()
	_, err = uc.Post(ctx, again)
	assert.ErrorIs(t, err, domain.ErrAlreadyPosted)
}

// TestSaveDraft_SobreTerminalRechazado una factura POSTED no vuelve a DRAFT.
func TestSaveDraft_SobreTerminalRechazado(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	inv, err := uc.Post(ctx, salesRequest())
	require.NoError(t, err)

	edit := salesRequest()
	edit.ID = inv.ID.String()
	_, err = uc.SaveDraft(ctx, edit)
	assert.ErrorIs(t, err, domain.ErrAlreadyPosted)
}

// TestSetStatus_Transiciones DRAFT puede pasar a cualquier terminal; desde
// CANCELLED o VOID no hay salida (ErrConflict) y un destino desconocido es
// inválido.
func TestSetStatus_Transiciones(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	draft, err := uc.SaveDraft(ctx, salesRequest())
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, draft.ID.String(), "ARCHIVED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cancelled, err := uc.SetStatus(ctx, draft.ID.String(), entity.InvoiceStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusCancelled, cancelled.Status)

	_, err = uc.SetStatus(ctx, draft.ID.String(), entity.InvoiceStatusPosted)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// TestSetStatus_PostedDesdeLista la transición directa a POSTED también
// estampa PostedAt.
func TestSetStatus_PostedDesdeLista(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	draft, err := uc.SaveDraft(ctx, salesRequest())
	require.NoError(t, err)

	posted, err := uc.SetStatus(ctx, draft.ID.String(), entity.InvoiceStatusPosted)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPosted, posted.Status)
	require.NotNil(t, posted.PostedAt)

	_, err = uc.SetStatus(ctx, draft.ID.String(), entity.InvoiceStatusVoid)
	assert.ErrorIs(t, err, domain.ErrAlreadyPosted)
}

// TestNextInvoiceNo_Consecutivo el consecutivo avanza con cada alta.
func TestNextInvoiceNo_Consecutivo(t *testing.T) {
	ctx := context.Background()
	uc := newSalesUC()

	_, err := uc.SaveDraft(ctx, salesRequest())
	require.NoError(t, err)

	no, err := uc.NextInvoiceNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SI-000002", no)
}
