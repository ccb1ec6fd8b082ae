package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain"
	domainbilling "github.com/tu-usuario/tanerp/internal/domain/billing"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
	"github.com/tu-usuario/tanerp/pkg/logger"
)

const dateLayout = "2006-01-02"

// SalesInvoiceUseCase ciclo de vida de facturas de venta:
// DRAFT -> POSTED | CANCELLED | VOID, estados terminales sin salida.
// La contabilización de ventas no toca inventario en el alcance actual; el
// gancho de salida de stock existe en el libro (delta negativo) y se
// conectará cuando producto lo confirme.
type SalesInvoiceUseCase struct {
	repo repository.SalesInvoiceRepository
	log  *logger.Logger
}

// NewSalesInvoiceUseCase construye el caso de uso.
func NewSalesInvoiceUseCase(repo repository.SalesInvoiceRepository, log *logger.Logger) *SalesInvoiceUseCase {
	return &SalesInvoiceUseCase{repo: repo, log: log}
}

// List retorna todas las facturas de venta, las más recientes primero.
func (uc *SalesInvoiceUseCase) List(ctx context.Context) ([]*entity.SalesInvoice, error) {
	return uc.repo.List(ctx)
}

// GetByID busca una factura.
func (uc *SalesInvoiceUseCase) GetByID(ctx context.Context, id string) (*entity.SalesInvoice, error) {
	return uc.repo.GetByID(ctx, id)
}

// NextInvoiceNo siguiente consecutivo SI-######.
func (uc *SalesInvoiceUseCase) NextInvoiceNo(ctx context.Context) (string, error) {
	return uc.repo.NextInvoiceNo(ctx)
}

// SaveDraft recalcula totales, marca DRAFT y persiste. Con ID vacío crea la
// factura y le asigna número; con ID actualiza la existente conservando el
// número original (inmutable tras la primera asignación). Nada se persiste
// si la validación falla, y guardar sobre una factura terminal es rechazado.
func (uc *SalesInvoiceUseCase) SaveDraft(ctx context.Context, in dto.SalesInvoiceRequest) (*entity.SalesInvoice, error) {
	return uc.save(ctx, in, entity.InvoiceStatusDraft)
}

// Post contabiliza la factura: mismo guardado pero con estado POSTED y
// PostedAt estampado. Recontabilizar una factura POSTED retorna
// ErrAlreadyPosted, nunca un no-op silencioso.
func (uc *SalesInvoiceUseCase) Post(ctx context.Context, in dto.SalesInvoiceRequest) (*entity.SalesInvoice, error) {
	inv, err := uc.save(ctx, in, entity.InvoiceStatusPosted)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_no", inv.InvoiceNo).Msg("factura de venta contabilizada")
	return inv, nil
}

func (uc *SalesInvoiceUseCase) save(ctx context.Context, in dto.SalesInvoiceRequest, status string) (*entity.SalesInvoice, error) {
	lines := buildSalesLines(in.Lines)
	totals := domainbilling.CalcTotals(lines)
	now := time.Now()

	date := in.Date
	if date == "" {
		date = now.Format(dateLayout)
	}

	inv := &entity.SalesInvoice{
		ID:           entity.ID(in.ID),
		InvoiceNo:    in.InvoiceNo,
		Date:         date,
		CustomerID:   entity.ID(in.CustomerID),
		CustomerName: in.CustomerName,
		Notes:        in.Notes,
		Status:       status,
		Lines:        lines,
		Totals:       totals,
		GrandTotal:   totals.GrandTotal,
	}
	if status == entity.InvoiceStatusPosted {
		inv.PostedAt = &now
	}
	if !inv.Counterparty() {
		return nil, domain.ErrInvalidInput
	}

	if in.ID == "" {
		if inv.InvoiceNo == "" {
			no, err := uc.repo.NextInvoiceNo(ctx)
			if err != nil {
				return nil, err
			}
			inv.InvoiceNo = no
		}
		inv.ID = entity.ID(uuid.New().String())
		inv.CreatedAt = now
		inv.UpdatedAt = now
		if err := uc.repo.Create(ctx, inv); err != nil {
			return nil, err
		}
		return inv, nil
	}

	existing, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(existing.Status); err != nil {
		return nil, err
	}
	inv.InvoiceNo = existing.InvoiceNo
	inv.CreatedAt = existing.CreatedAt
	return uc.repo.Replace(ctx, inv)
}

// SetStatus transición directa de estado desde la vista de lista, sin
// recomputar líneas. Solo documentos DRAFT pueden transicionar; el destino
// debe ser un estado terminal válido.
func (uc *SalesInvoiceUseCase) SetStatus(ctx context.Context, id, status string) (*entity.SalesInvoice, error) {
	switch status {
	case entity.InvoiceStatusPosted, entity.InvoiceStatusCancelled, entity.InvoiceStatusVoid:
	default:
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(existing.Status); err != nil {
		return nil, err
	}
	now := time.Now()
	return uc.repo.Update(ctx, id, func(inv *entity.SalesInvoice) {
		inv.Status = status
		if status == entity.InvoiceStatusPosted {
			inv.PostedAt = &now
		}
	})
}

// guardTransition rechaza transiciones desde estados terminales: POSTED es
// compuerta de una sola vía (ErrAlreadyPosted); CANCELLED y VOID no se
// reabren (ErrConflict).
func guardTransition(current string) error {
	if current == entity.InvoiceStatusPosted {
		return domain.ErrAlreadyPosted
	}
	if entity.TerminalStatus(current) {
		return domain.ErrConflict
	}
	return nil
}

func buildSalesLines(in []dto.SalesLineRequest) []entity.SalesLine {
	lines := make([]entity.SalesLine, 0, len(in))
	for _, l := range in {
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}
		lines = append(lines, entity.SalesLine{
			ID:          entity.ID(id),
			ItemID:      entity.ID(l.ItemID),
			Description: l.Description,
			Qty:         l.Qty,
			UnitPrice:   l.Price,
			DiscountPct: l.DiscountPct,
			TaxPct:      l.TaxPct,
		})
	}
	return lines
}
