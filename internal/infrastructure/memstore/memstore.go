// Package memstore implementa el Store de colecciones en memoria. Se usa
// como doble de pruebas en los tests de casos de uso y está disponible como
// driver "memory" para entornos efímeros.
package memstore

import (
	"context"
	"sync"

	"github.com/tu-usuario/tanerp/internal/domain/storage"
)

var _ storage.Store = (*Store)(nil)

// Store almacén de colecciones en memoria, seguro para uso concurrente.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// New construye el store vacío.
func New() *Store {
	return &Store{collections: make(map[string][]byte)}
}

// Seed precarga una colección; pensado para tests.
func (s *Store) Seed(name string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = append([]byte(nil), payload...)
}

func (s *Store) ReadCollection(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.collections[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

func (s *Store) WriteCollection(_ context.Context, name string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = append([]byte(nil), payload...)
	return nil
}

func (s *Store) Close() error { return nil }
