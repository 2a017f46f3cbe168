package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ormodels/ormodels/internal/domain"
)

// Source identifies which branch produced the catalog.
type Source int

const (
	SourceCache Source = iota
	SourceNetwork
	SourceStale
)

func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceNetwork:
		return "network"
	case SourceStale:
		return "stale cache"
	default:
		return "unknown"
	}
}

// Catalog is the resolved record batch plus its provenance. Age is zero
// for a network result.
type Catalog struct {
	Models []domain.Model
	Source Source
	Age    time.Duration
}

// Fetcher is the network side of the pipeline.
type Fetcher interface {
	ListModels(ctx context.Context) ([]domain.Model, error)
}

// CatalogService decides cache-hit vs network-fetch vs stale-fallback.
// It is the only component that touches the cache store.
type CatalogService struct {
	fetcher Fetcher
	cache   *ModelsCache
	ttl     time.Duration
}

func NewCatalogService(fetcher Fetcher, cache *ModelsCache, ttl time.Duration) *CatalogService {
	return &CatalogService{fetcher: fetcher, cache: cache, ttl: ttl}
}

// Load resolves the catalog. Branch order: fresh cache, network (with a
// best-effort cache write), stale cache. Failures on the first two
// branches are absorbed and logged; only exhaustion of all three becomes
// an error.
func (s *CatalogService) Load(ctx context.Context, forceRefresh bool) (*Catalog, error) {
	if !forceRefresh {
		models, age, err := s.cache.Read()
		switch {
		case err == nil && age < s.ttl:
			return &Catalog{Models: models, Source: SourceCache, Age: age}, nil
		case err == nil:
			slog.Debug("model cache stale", "age", age)
		case errors.Is(err, domain.ErrCacheMiss):
			slog.Debug("model cache miss")
		default:
			slog.Warn("model cache read failed, refetching", "error", err)
		}
	}

	models, err := s.fetcher.ListModels(ctx)
	if err == nil {
		if werr := s.cache.Write(models); werr != nil {
			slog.Warn("model cache write failed", "error", werr)
		}
		return &Catalog{Models: models, Source: SourceNetwork}, nil
	}
	slog.Warn("model fetch failed, trying stale cache", "error", err)

	models, age, cerr := s.cache.Read()
	if cerr != nil {
		return nil, fmt.Errorf("%w: fetch failed (%v), cache unusable (%v)",
			domain.ErrNoCatalog, err, cerr)
	}

	return &Catalog{Models: models, Source: SourceStale, Age: age}, nil
}
