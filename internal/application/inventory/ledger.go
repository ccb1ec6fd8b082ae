// Package inventory contiene el libro de inventario: la única vía permitida
// para modificar el stock de un item.
package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
	"github.com/tu-usuario/tanerp/pkg/logger"
)

// StockLedger aplica ajustes de stock con convención de signo: delta positivo
// para entradas (recepción de compra), negativo para salidas (despacho de
// venta; el flujo de ventas aún no lo invoca, pero el gancho existe).
type StockLedger struct {
	items repository.ItemRepository
	log   *logger.Logger
}

// NewStockLedger construye el libro.
func NewStockLedger(items repository.ItemRepository, log *logger.Logger) *StockLedger {
	return &StockLedger{items: items, log: log}
}

// AdjustStock suma delta al stock del item (stock ausente cuenta como cero)
// y persiste. Retorna ErrNotFound si el item no existe; durante una
// contabilización masiva el llamador decide si eso aborta o solo omite la
// línea.
func (l *StockLedger) AdjustStock(ctx context.Context, itemID string, delta decimal.Decimal) (*entity.Item, error) {
	item, err := l.items.Update(ctx, itemID, func(it *entity.Item) {
		it.StockQty = entity.N(it.StockQty.Add(delta))
	})
	if err != nil {
		return nil, err
	}
	l.log.Debug().
		Str("item_id", itemID).
		Str("delta", delta.String()).
		Str("stock", item.StockQty.String()).
		Msg("ajuste de stock aplicado")
	return item, nil
}
