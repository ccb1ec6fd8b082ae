package entity

import "time"

// Estados de registros maestros (items, proveedores, clientes).
// La desactivación es una marca suave; nunca se borra el registro.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Item representa un producto o servicio del inventario.
// StockQty solo se modifica a través del libro de inventario (StockLedger);
// ninguna otra capa escribe ese campo directamente.
type Item struct {
	ID        ID        `json:"id"`
	Code      string    `json:"code"` // código único asignado por el usuario
	Name      string    `json:"name"`
	UOM       string    `json:"uom"` // unidad de medida, ej. PCS
	Price     Number    `json:"price"`
	TaxRate   Number    `json:"taxRate"` // porcentaje de IVA
	Status    string    `json:"status"`
	StockQty  Number    `json:"stockQty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Item) DocID() string       { return string(i.ID) }
func (i *Item) Touch(now time.Time) { i.UpdatedAt = now }

// Active indica si el item puede usarse en nuevos documentos.
func (i *Item) Active() bool { return i.Status == StatusActive }
