// Package storage define el puerto de persistencia clave/valor del sistema.
// Cada colección se lee y escribe completa, serializada como un arreglo JSON
// de documentos; esa disciplina de read-modify-write es segura solo bajo un
// único escritor a la vez (ver kvrepo, que serializa con un mutex por proceso).
package storage

import "context"

// Nombres lógicos de colecciones. Son estables: coinciden con las claves del
// almacén de la versión anterior del sistema para conservar compatibilidad
// de formato.
const (
	CollectionItems            = "tanerp_items"
	CollectionSuppliers        = "tanerp_suppliers"
	CollectionCustomers        = "tanerp_customers_v1"
	CollectionSalesInvoices    = "tanerp_sales_invoices_v1"
	CollectionPurchaseInvoices = "tanerp_purchase_invoices"
	CollectionAuthSession      = "tanerp_auth"
	CollectionUsers            = "tanerp_users"
)

// Store almacén clave/valor de colecciones serializadas.
//
// ReadCollection retorna nil (sin error) si la colección no existe todavía.
// Un payload presente pero corrupto debe retornar error, nunca fallar en
// silencio. WriteCollection reemplaza el contenido completo de la colección.
type Store interface {
	ReadCollection(ctx context.Context, name string) ([]byte, error)
	WriteCollection(ctx context.Context, name string, payload []byte) error
	Close() error
}
