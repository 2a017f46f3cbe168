package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ormodels/ormodels/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelsCache_Read_Miss(t *testing.T) {
	cache := NewModelsCache(filepath.Join(t.TempDir(), "models.json"))

	_, _, err := cache.Read()
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestModelsCache_RoundTrip(t *testing.T) {
	cache := NewModelsCache(filepath.Join(t.TempDir(), "models.json"))
	batch := []domain.Model{
		testModel("acme/widget-1", "0.000001", "0.000002"),
		testModel("acme/widget-2", "0", "0"),
	}

	require.NoError(t, cache.Write(batch))

	got, age, err := cache.Read()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Less(t, age, time.Minute)

	// Validation-equal: identity, pricing, and capability fields survive
	// the trip. The opaque metadata blobs may be reformatted.
	for i := range batch {
		assert.Equal(t, batch[i].ID, got[i].ID)
		assert.Equal(t, batch[i].Name, got[i].Name)
		assert.Equal(t, batch[i].Description, got[i].Description)
		assert.Equal(t, batch[i].ContextLength, got[i].ContextLength)
		assert.Equal(t, batch[i].Created, got[i].Created)
		assert.Equal(t, batch[i].Pricing, got[i].Pricing)
		assert.Equal(t, batch[i].SupportedParams, got[i].SupportedParams)
	}
}

func TestModelsCache_Write_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "models.json")
	cache := NewModelsCache(path)

	require.NoError(t, cache.Write([]domain.Model{testModel("acme/widget", "0", "0")}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestModelsCache_Write_PrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.json")
	cache := NewModelsCache(path)
	require.NoError(t, cache.Write([]domain.Model{testModel("acme/widget", "0", "0")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{\n  \"data\": [")
}

func TestModelsCache_Write_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	cache := NewModelsCache(filepath.Join(dir, "models.json"))
	require.NoError(t, cache.Write([]domain.Model{testModel("acme/widget", "0", "0")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "models.json", entries[0].Name())
}

func TestModelsCache_Read_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.json")
	require.NoError(t, os.WriteFile(path, []byte("not valid json{"), 0644))

	cache := NewModelsCache(path)
	_, _, err := cache.Read()
	assert.ErrorIs(t, err, domain.ErrCacheCorrupt)
}

func TestModelsCache_Read_InvalidShape(t *testing.T) {
	// Decodable JSON that fails catalog validation is corrupt, not a miss.
	path := filepath.Join(t.TempDir(), "models.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data": [{"id": "acme/widget"}]}`), 0644))

	cache := NewModelsCache(path)
	_, _, err := cache.Read()
	assert.ErrorIs(t, err, domain.ErrCacheCorrupt)
}

func TestModelsCache_Read_AgeFromModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.json")
	cache := NewModelsCache(path)
	require.NoError(t, cache.Write([]domain.Model{testModel("acme/widget", "0", "0")}))

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	_, age, err := cache.Read()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, age, 47*time.Hour)
}
