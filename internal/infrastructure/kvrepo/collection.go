// Package kvrepo implementa el repositorio genérico de documentos sobre el
// Store de colecciones: CRUD + consecutivos, con la colección completa leída
// y reescrita en cada mutación.
package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/tanerp/internal/domain"
	"github.com/tu-usuario/tanerp/internal/domain/numbering"
	"github.com/tu-usuario/tanerp/internal/domain/storage"
)

// Document contrato mínimo de un registro persistible.
type Document interface {
	DocID() string
	Touch(now time.Time)
}

// Collection repositorio genérico sobre una colección nombrada del Store.
//
// Cada mutación hace read-modify-write de la colección completa. El mutex
// serializa esas secuencias dentro del proceso; la corrección frente a
// escritores externos concurrentes queda fuera de alcance (un solo proceso
// escritor, igual que la versión de navegador con una sola pestaña).
type Collection[T Document] struct {
	store storage.Store
	name  string
	mu    sync.Mutex
	now   func() time.Time
}

// NewCollection construye la colección sobre el Store.
func NewCollection[T Document](store storage.Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name, now: time.Now}
}

func (c *Collection[T]) readAll(ctx context.Context) ([]T, error) {
	payload, err := c.store.ReadCollection(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("leer colección %s: %w", c.name, err)
	}
	if len(payload) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("colección %s corrupta: %w", c.name, err)
	}
	return records, nil
}

func (c *Collection[T]) writeAll(ctx context.Context, records []T) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", c.name, err)
	}
	if err := c.store.WriteCollection(ctx, c.name, payload); err != nil {
		return fmt.Errorf("escribir colección %s: %w", c.name, err)
	}
	return nil
}

// List retorna todos los registros en el orden almacenado (los creados más
// recientemente primero, porque Create antepone).
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readAll(ctx)
}

// GetByID busca por identificador. Los ids se normalizan a string al
// deserializar, así que "7" y 7 resuelven al mismo registro.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	records, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if rec.DocID() == id {
			return rec, nil
		}
	}
	return zero, domain.ErrNotFound
}

// Create antepone el registro a la colección y la persiste completa.
func (c *Collection[T]) Create(ctx context.Context, rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.readAll(ctx)
	if err != nil {
		return err
	}
	records = append([]T{rec}, records...)
	return c.writeAll(ctx, records)
}

// Update aplica mutate sobre el registro con el id dado, estampa UpdatedAt y
// persiste. Retorna ErrNotFound sin tocar la colección si el id no existe.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	records, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}
	for i, rec := range records {
		if rec.DocID() != id {
			continue
		}
		mutate(rec)
		rec.Touch(c.now())
		records[i] = rec
		if err := c.writeAll(ctx, records); err != nil {
			return zero, err
		}
		return rec, nil
	}
	return zero, domain.ErrNotFound
}

// Replace sustituye el registro completo que comparte id con rec, estampa
// UpdatedAt y persiste. ErrNotFound si el id no existe.
func (c *Collection[T]) Replace(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	records, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}
	for i, existing := range records {
		if existing.DocID() != rec.DocID() {
			continue
		}
		rec.Touch(c.now())
		records[i] = rec
		if err := c.writeAll(ctx, records); err != nil {
			return zero, err
		}
		return rec, nil
	}
	return zero, domain.ErrNotFound
}

// Remove filtra el registro y persiste. Es idempotente: borrar un id
// inexistente no es error.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.readAll(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.DocID() != id {
			kept = append(kept, rec)
		}
	}
	return c.writeAll(ctx, kept)
}

// NextNumber calcula el siguiente consecutivo con el prefijo dado, escaneando
// la proyección (código o número de factura) de todos los registros.
func (c *Collection[T]) NextNumber(ctx context.Context, project func(T) string, prefix string, pad int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.readAll(ctx)
	if err != nil {
		return "", err
	}
	values := make([]string, 0, len(records))
	for _, rec := range records {
		values = append(values, project(rec))
	}
	return numbering.Next(values, prefix, pad), nil
}
