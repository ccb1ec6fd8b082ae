package kvrepo

import (
	"context"
	"strings"

	"github.com/tu-usuario/tanerp/internal/domain"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/numbering"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
	"github.com/tu-usuario/tanerp/internal/domain/storage"
)

// Verificación en compilación de que los repos implementan sus puertos.
var (
	_ repository.ItemRepository            = (*ItemRepository)(nil)
	_ repository.SupplierRepository        = (*SupplierRepository)(nil)
	_ repository.CustomerRepository        = (*CustomerRepository)(nil)
	_ repository.SalesInvoiceRepository    = (*SalesInvoiceRepository)(nil)
	_ repository.PurchaseInvoiceRepository = (*PurchaseInvoiceRepository)(nil)
	_ repository.UserRepository            = (*UserRepository)(nil)
	_ repository.SessionRepository         = (*SessionRepository)(nil)
)

// ItemRepository colección de items.
type ItemRepository struct {
	*Collection[*entity.Item]
}

// NewItemRepository construye el repo sobre la colección tanerp_items.
func NewItemRepository(store storage.Store) *ItemRepository {
	return &ItemRepository{Collection: NewCollection[*entity.Item](store, storage.CollectionItems)}
}

// GetByCode busca un item por su código (único, asignado por el usuario).
func (r *ItemRepository) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if strings.EqualFold(it.Code, code) {
			return it, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SupplierRepository colección de proveedores.
type SupplierRepository struct {
	*Collection[*entity.Supplier]
}

// NewSupplierRepository construye el repo sobre la colección tanerp_suppliers.
func NewSupplierRepository(store storage.Store) *SupplierRepository {
	return &SupplierRepository{Collection: NewCollection[*entity.Supplier](store, storage.CollectionSuppliers)}
}

// NextCode consecutivo SUP-#### por escaneo de prefijo sobre los códigos existentes.
func (r *SupplierRepository) NextCode(ctx context.Context) (string, error) {
	return r.NextNumber(ctx,
		func(s *entity.Supplier) string { return s.Code },
		numbering.SupplierPrefix, numbering.SupplierPad)
}

// CustomerRepository colección de clientes.
type CustomerRepository struct {
	*Collection[*entity.Customer]
}

// NewCustomerRepository construye el repo sobre la colección tanerp_customers_v1.
func NewCustomerRepository(store storage.Store) *CustomerRepository {
	return &CustomerRepository{Collection: NewCollection[*entity.Customer](store, storage.CollectionCustomers)}
}

// SalesInvoiceRepository colección de facturas de venta.
type SalesInvoiceRepository struct {
	*Collection[*entity.SalesInvoice]
}

// NewSalesInvoiceRepository construye el repo sobre tanerp_sales_invoices_v1.
func NewSalesInvoiceRepository(store storage.Store) *SalesInvoiceRepository {
	return &SalesInvoiceRepository{Collection: NewCollection[*entity.SalesInvoice](store, storage.CollectionSalesInvoices)}
}

// NextInvoiceNo consecutivo SI-###### sobre los números existentes.
func (r *SalesInvoiceRepository) NextInvoiceNo(ctx context.Context) (string, error) {
	return r.NextNumber(ctx,
		func(inv *entity.SalesInvoice) string { return inv.InvoiceNo },
		numbering.SalesInvoicePrefix, numbering.SalesInvoicePad)
}

// PurchaseInvoiceRepository colección de facturas de compra.
type PurchaseInvoiceRepository struct {
	*Collection[*entity.PurchaseInvoice]
}

// NewPurchaseInvoiceRepository construye el repo sobre tanerp_purchase_invoices.
func NewPurchaseInvoiceRepository(store storage.Store) *PurchaseInvoiceRepository {
	return &PurchaseInvoiceRepository{Collection: NewCollection[*entity.PurchaseInvoice](store, storage.CollectionPurchaseInvoices)}
}

// NextInvoiceNo consecutivo PINV-###### sobre los números existentes.
func (r *PurchaseInvoiceRepository) NextInvoiceNo(ctx context.Context) (string, error) {
	return r.NextNumber(ctx,
		func(inv *entity.PurchaseInvoice) string { return inv.InvoiceNo },
		numbering.PurchaseInvoicePrefix, numbering.PurchaseInvoicePad)
}

// UserRepository colección de usuarios.
type UserRepository struct {
	*Collection[*entity.User]
}

// NewUserRepository construye el repo sobre tanerp_users.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{Collection: NewCollection[*entity.User](store, storage.CollectionUsers)}
}

// GetByEmail busca un usuario por email (case-insensitive).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// SessionRepository sesión activa en tanerp_auth. La colección guarda a lo
// sumo un registro: Save reemplaza lo que haya.
type SessionRepository struct {
	col *Collection[*entity.Session]
}

// NewSessionRepository construye el repo sobre tanerp_auth.
func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{col: NewCollection[*entity.Session](store, storage.CollectionAuthSession)}
}

// Save reemplaza la sesión activa.
func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	return r.col.writeAll(ctx, []*entity.Session{session})
}

// Get retorna la sesión activa o ErrUnauthorized si no hay ninguna.
func (r *SessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	sessions, err := r.col.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, domain.ErrUnauthorized
	}
	return sessions[0], nil
}

// Clear elimina la sesión activa; es idempotente.
func (r *SessionRepository) Clear(ctx context.Context) error {
	r.col.mu.Lock()
	defer r.col.mu.Unlock()
	return r.col.writeAll(ctx, []*entity.Session{})
}
