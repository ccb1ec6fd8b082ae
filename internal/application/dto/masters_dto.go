package dto

import "github.com/tu-usuario/tanerp/internal/domain/entity"

// CreateItemRequest alta de un item. Code y Name son obligatorios; UOM y
// TaxRate reciben valores por defecto si vienen vacíos.
type CreateItemRequest struct {
	Code    string         `json:"code"`
	Name    string         `json:"name"`
	UOM     string         `json:"uom"`
	Price   entity.Number  `json:"price"`
	TaxRate *entity.Number `json:"taxRate"`
}

// UpdateItemRequest parche parcial de un item: solo los campos no nulos se
// aplican. El stock no es parchable; solo lo modifica el libro de inventario.
type UpdateItemRequest struct {
	Code    *string        `json:"code"`
	Name    *string        `json:"name"`
	UOM     *string        `json:"uom"`
	Price   *entity.Number `json:"price"`
	TaxRate *entity.Number `json:"taxRate"`
	Status  *string        `json:"status"`
}

// CreateSupplierRequest alta de proveedor. Si Code viene vacío se asigna el
// siguiente consecutivo SUP-####.
type CreateSupplierRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	VATNo   string `json:"vatNo"`
	Address string `json:"address"`
}

// UpdateSupplierRequest parche parcial de proveedor.
type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	VATNo   *string `json:"vatNo"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	City  string `json:"city"`
}

// UpdateCustomerRequest parche parcial de cliente.
type UpdateCustomerRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	City   *string `json:"city"`
	Status *string `json:"status"`
}

// AdjustStockRequest ajuste manual de stock vía el libro de inventario.
// Delta positivo es entrada; negativo, salida.
type AdjustStockRequest struct {
	ItemID string        `json:"item_id"`
	Delta  entity.Number `json:"delta"`
}
