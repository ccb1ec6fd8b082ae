// Package postgres implementa el Store de colecciones sobre PostgreSQL:
// una sola tabla collections(name, payload) donde payload es el arreglo
// JSON completo de la colección. Se conserva así la misma semántica de
// lectura/escritura de colección completa que el driver de archivos.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/tanerp/internal/domain/storage"
	"github.com/tu-usuario/tanerp/pkg/config"
)

var _ storage.Store = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name       TEXT PRIMARY KEY,
    payload    JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store almacén de colecciones respaldado por un pool pgx.
type Store struct {
	pool *pgxpool.Pool
}

// New abre el pool, verifica la conexión y asegura el esquema.
func New(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("postgres: parse DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: crear esquema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// ReadCollection retorna el payload de la colección, o nil si nunca se ha escrito.
func (s *Store) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM collections WHERE name = $1`, name,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: leer colección %s: %w", name, err)
	}
	return payload, nil
}

// WriteCollection reemplaza el payload completo de la colección (upsert).
func (s *Store) WriteCollection(ctx context.Context, name string, payload []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO collections (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()`,
		name, payload,
	)
	if err != nil {
		return fmt.Errorf("postgres: escribir colección %s: %w", name, err)
	}
	return nil
}

// Close cierra el pool de conexiones.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
