package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tanerp/internal/infrastructure/filestore"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	payload := []byte(`[{"id":"1","name":"x"}]`)
	require.NoError(t, store.WriteCollection(ctx, "tanerp_items", payload))

	got, err := store.ReadCollection(ctx, "tanerp_items")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

// TestStore_ColeccionAusente leer una colección que nunca se escribió
// retorna nil sin error (colección vacía, no fallo).
func TestStore_ColeccionAusente(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	got, err := store.ReadCollection(context.Background(), "tanerp_nada")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestStore_EscrituraReemplaza cada escritura deja exactamente un archivo
// por colección, sin temporales residuales.
func TestStore_EscrituraReemplaza(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := filestore.New(dir)
	require.NoError(t, err)

	require.NoError(t, store.WriteCollection(ctx, "tanerp_items", []byte(`[1]`)))
	require.NoError(t, store.WriteCollection(ctx, "tanerp_items", []byte(`[1,2]`)))

	got, err := store.ReadCollection(ctx, "tanerp_items")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tanerp_items.json", filepath.Base(entries[0].Name()))
}

func TestNew_DirectorioVacio(t *testing.T) {
	_, err := filestore.New("")
	assert.Error(t, err)
}
