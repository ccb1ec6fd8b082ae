package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/application/inventory"
	"github.com/tu-usuario/tanerp/internal/domain"
	domainbilling "github.com/tu-usuario/tanerp/internal/domain/billing"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
	"github.com/tu-usuario/tanerp/pkg/logger"
)

// PurchaseInvoiceUseCase ciclo de vida de facturas de compra. Contabilizar
// (POSTED) es la única operación con efecto sobre inventario: por cada línea
// con item referenciado y cantidad positiva se incrementa el stock vía el
// libro de inventario, exactamente una vez por factura.
type PurchaseInvoiceUseCase struct {
	repo   repository.PurchaseInvoiceRepository
	ledger *inventory.StockLedger
	log    *logger.Logger
}

// NewPurchaseInvoiceUseCase construye el caso de uso.
func NewPurchaseInvoiceUseCase(repo repository.PurchaseInvoiceRepository, ledger *inventory.StockLedger, log *logger.Logger) *PurchaseInvoiceUseCase {
	return &PurchaseInvoiceUseCase{repo: repo, ledger: ledger, log: log}
}

// List retorna todas las facturas de compra, las más recientes primero.
func (uc *PurchaseInvoiceUseCase) List(ctx context.Context) ([]*entity.PurchaseInvoice, error) {
	return uc.repo.List(ctx)
}

// GetByID busca una factura.
func (uc *PurchaseInvoiceUseCase) GetByID(ctx context.Context, id string) (*entity.PurchaseInvoice, error) {
	return uc.repo.GetByID(ctx, id)
}

// NextInvoiceNo siguiente consecutivo PINV-######.
func (uc *PurchaseInvoiceUseCase) NextInvoiceNo(ctx context.Context) (string, error) {
	return uc.repo.NextInvoiceNo(ctx)
}

// SaveDraft recalcula totales, marca DRAFT y persiste, sin tocar inventario.
// Con ID vacío crea y asigna número; con ID actualiza conservando el número.
func (uc *PurchaseInvoiceUseCase) SaveDraft(ctx context.Context, in dto.PurchaseInvoiceRequest) (*entity.PurchaseInvoice, error) {
	inv, _, err := uc.prepare(ctx, in, entity.InvoiceStatusDraft)
	if err != nil {
		return nil, err
	}
	return uc.persist(ctx, inv, in.ID != "")
}

// Post contabiliza la factura de compra:
//
//  1. Verifica contraparte y que la factura no esté ya POSTED
//     (ErrAlreadyPosted; el stock se aplica exactamente una vez).
//  2. Por cada línea con item referenciado y qty > 0 incrementa el stock.
//     Un item inexistente solo omite esa línea; no aborta las demás.
//  3. Persiste la factura con estado POSTED y PostedAt estampado.
//
// El ajuste de stock y la persistencia no son atómicos: si la escritura
// final falla, el stock queda ajustado con la factura aún en DRAFT y un
// reintento volvería a ajustar. La guarda de transición solo protege tras
// una contabilización persistida.
func (uc *PurchaseInvoiceUseCase) Post(ctx context.Context, in dto.PurchaseInvoiceRequest) (*entity.PurchaseInvoice, error) {
	inv, existing, err := uc.prepare(ctx, in, entity.InvoiceStatusPosted)
	if err != nil {
		return nil, err
	}

	for _, line := range inv.Lines {
		if line.ItemID.IsZero() || !line.Qty.IsPositive() {
			continue
		}
		if _, err := uc.ledger.AdjustStock(ctx, line.ItemID.String(), line.Qty.Decimal); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.log.Warn().
					Str("invoice_no", inv.InvoiceNo).
					Str("item_id", line.ItemID.String()).
					Msg("línea de compra referencia un item inexistente; se omite el ajuste")
				continue
			}
			return nil, err
		}
	}

	saved, err := uc.persist(ctx, inv, existing != nil)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_no", saved.InvoiceNo).Msg("factura de compra contabilizada")
	return saved, nil
}

// prepare valida, reconstruye el documento con totales recalculados y aplica
// la guarda de transición cuando la factura ya existe.
func (uc *PurchaseInvoiceUseCase) prepare(ctx context.Context, in dto.PurchaseInvoiceRequest, status string) (*entity.PurchaseInvoice, *entity.PurchaseInvoice, error) {
	lines := buildPurchaseLines(in.Lines)
	totals := domainbilling.CalcTotals(lines)
	now := time.Now()

	date := in.Date
	if date == "" {
		date = now.Format(dateLayout)
	}

	inv := &entity.PurchaseInvoice{
		ID:           entity.ID(in.ID),
		InvoiceNo:    in.InvoiceNo,
		Date:         date,
		SupplierID:   entity.ID(in.SupplierID),
		SupplierName: in.SupplierName,
		Notes:        in.Notes,
		Status:       status,
		Lines:        lines,
		Totals:       totals,
		GrandTotal:   totals.GrandTotal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if status == entity.InvoiceStatusPosted {
		inv.PostedAt = &now
	}
	if !inv.Counterparty() {
		return nil, nil, domain.ErrInvalidInput
	}

	if in.ID == "" {
		if inv.InvoiceNo == "" {
			no, err := uc.repo.NextInvoiceNo(ctx)
			if err != nil {
				return nil, nil, err
			}
			inv.InvoiceNo = no
		}
		inv.ID = entity.ID(uuid.New().String())
		return inv, nil, nil
	}

	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, nil, err
	}
	if err := guardTransition(existing.Status); err != nil {
		return nil, nil, err
	}
	inv.InvoiceNo = existing.InvoiceNo
	inv.CreatedAt = existing.CreatedAt
	return inv, existing, nil
}

func (uc *PurchaseInvoiceUseCase) persist(ctx context.Context, inv *entity.PurchaseInvoice, exists bool) (*entity.PurchaseInvoice, error) {
	if exists {
		return uc.repo.Replace(ctx, inv)
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func buildPurchaseLines(in []dto.PurchaseLineRequest) []entity.PurchaseLine {
	lines := make([]entity.PurchaseLine, 0, len(in))
	for _, l := range in {
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}
		lines = append(lines, entity.PurchaseLine{
			ID:          entity.ID(id),
			ItemID:      entity.ID(l.ItemID),
			Description: l.Description,
			Qty:         l.Qty,
			Cost:        l.Cost,
			DiscountPct: l.DiscountPct,
			TaxPct:      l.TaxPct,
		})
	}
	return lines
}
