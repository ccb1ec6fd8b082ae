// Package filestore implementa el Store de colecciones sobre archivos JSON
// locales: un archivo por colección dentro del directorio de datos. Es el
// análogo directo del almacén de navegador de la versión anterior.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/tanerp/internal/domain/storage"
)

var _ storage.Store = (*Store)(nil)

// Store almacén de colecciones en disco.
type Store struct {
	dir string
}

// New crea el directorio de datos si no existe y retorna el store.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("filestore: directorio de datos vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: crear directorio %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// ReadCollection lee el archivo de la colección; nil si no existe todavía.
func (s *Store) ReadCollection(_ context.Context, name string) ([]byte, error) {
	payload, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: leer %s: %w", name, err)
	}
	return payload, nil
}

// WriteCollection escribe a un archivo temporal y renombra, para que una
// caída a mitad de escritura no deje la colección truncada.
func (s *Store) WriteCollection(_ context.Context, name string, payload []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: archivo temporal para %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("filestore: escribir %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: cerrar %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: renombrar %s: %w", name, err)
	}
	return nil
}

// Close no retiene recursos abiertos entre operaciones.
func (s *Store) Close() error { return nil }
