package settings

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	domain "github.com/inteligent/dashboard/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "offer-template-settings.json")
	return NewFileStore(FileStoreConfig{Path: path}), path
}

func TestFileStore_GetMaterializesDefaults(t *testing.T) {
	store, path := newTestStore(t)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Inteligent d.o.o.", got.Company.Name)

	// The defaults also land on disk so the next process sees them.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted domain.TemplateSettings
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, got, persisted)
}

func TestFileStore_PutThenGetReturnsNewValue(t *testing.T) {
	store, _ := newTestStore(t)

	next := domain.Defaults()
	next.Company.Name = "Nova družba d.o.o."
	next.Company.Address = "Partizanska cesta 5, 2000 Maribor"

	_, err := store.Put(context.Background(), next)
	require.NoError(t, err)

	// Even within the same timestamp granularity the write must be visible.
	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nova družba d.o.o.", got.Company.Name)
	assert.Equal(t, "Partizanska cesta 5, 2000 Maribor", got.Company.Address)
}

func TestFileStore_ExternalEditInvalidatesCache(t *testing.T) {
	store, path := newTestStore(t)

	first, err := store.Get(context.Background())
	require.NoError(t, err)

	edited := first
	edited.Company.Name = "Ročno urejeno d.o.o."
	raw, err := json.Marshal(edited)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	// Push the file's mtime past the cached snapshot so the store notices.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ročno urejeno d.o.o.", got.Company.Name)
}

func TestFileStore_CorruptFileFallsBackToDefaults(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Defaults(), got)

	// The broken file stays untouched for inspection.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}

func TestFileStore_PutWritesAtomically(t *testing.T) {
	store, path := newTestStore(t)

	_, err := store.Put(context.Background(), domain.Defaults())
	require.NoError(t, err)

	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr), "temp file must not survive a completed Put")
}
