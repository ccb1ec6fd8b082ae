// Package repository define los puertos de persistencia por entidad,
// implementados por kvrepo sobre el Store de colecciones.
package repository

import (
	"context"

	"github.com/tu-usuario/tanerp/internal/domain/entity"
)

// ItemRepository puerto de persistencia para items de inventario.
type ItemRepository interface {
	List(ctx context.Context) ([]*entity.Item, error)
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, id string, mutate func(*entity.Item)) (*entity.Item, error)
	Remove(ctx context.Context, id string) error
}

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, id string, mutate func(*entity.Supplier)) (*entity.Supplier, error)
	Remove(ctx context.Context, id string) error
	NextCode(ctx context.Context) (string, error)
}

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, id string, mutate func(*entity.Customer)) (*entity.Customer, error)
}

// SalesInvoiceRepository puerto de persistencia para facturas de venta.
type SalesInvoiceRepository interface {
	List(ctx context.Context) ([]*entity.SalesInvoice, error)
	GetByID(ctx context.Context, id string) (*entity.SalesInvoice, error)
	Create(ctx context.Context, inv *entity.SalesInvoice) error
	Replace(ctx context.Context, inv *entity.SalesInvoice) (*entity.SalesInvoice, error)
	Update(ctx context.Context, id string, mutate func(*entity.SalesInvoice)) (*entity.SalesInvoice, error)
	NextInvoiceNo(ctx context.Context) (string, error)
}

// PurchaseInvoiceRepository puerto de persistencia para facturas de compra.
type PurchaseInvoiceRepository interface {
	List(ctx context.Context) ([]*entity.PurchaseInvoice, error)
	GetByID(ctx context.Context, id string) (*entity.PurchaseInvoice, error)
	Create(ctx context.Context, inv *entity.PurchaseInvoice) error
	Replace(ctx context.Context, inv *entity.PurchaseInvoice) (*entity.PurchaseInvoice, error)
	NextInvoiceNo(ctx context.Context) (string, error)
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

// SessionRepository puerto para la sesión activa (colección tanerp_auth,
// a lo sumo un registro).
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context) (*entity.Session, error)
	Clear(ctx context.Context) error
}
