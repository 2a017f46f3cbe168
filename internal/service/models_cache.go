package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ormodels/ormodels/internal/domain"
)

// ModelsCache persists the validated catalog as a pretty-printed JSON
// blob at a fixed path. Staleness is derived from the file's modification
// time, not an embedded timestamp, and there is no locking between
// concurrent runs: the last writer wins.
type ModelsCache struct {
	path string
}

func NewModelsCache(path string) *ModelsCache {
	return &ModelsCache{path: path}
}

type catalogDocument struct {
	Data []domain.Model `json:"data"`
}

// Read returns the cached batch and its age. It fails with
// domain.ErrCacheMiss when no cache file exists and with
// domain.ErrCacheCorrupt when the content cannot be read, decoded, or
// validated.
func (c *ModelsCache) Read() ([]domain.Model, time.Duration, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, domain.ErrCacheMiss
		}
		return nil, 0, fmt.Errorf("stat cache: %w", err)
	}
	age := time.Since(info.ModTime())

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrCacheCorrupt, err)
	}

	models, err := ParseCatalog(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrCacheCorrupt, err)
	}

	return models, age, nil
}

// Write persists the batch, creating the cache directory when missing.
// The blob goes to a temp file first and is renamed into place so a
// concurrent reader never sees a partial document.
func (c *ModelsCache) Write(models []domain.Model) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(catalogDocument{Data: models}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	tmp := c.path + "." + uuid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace cache file: %w", err)
	}

	return nil
}
