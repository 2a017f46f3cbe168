package service

import (
	"context"
	"encoding/json"

	"github.com/ormodels/ormodels/internal/domain"
)

// testModel builds a record that passes catalog validation.
func testModel(id, prompt, completion string) domain.Model {
	return domain.Model{
		ID:              id,
		Name:            "Test " + id,
		Description:     "test model " + id,
		ContextLength:   8192,
		Created:         1_700_000_000,
		Pricing:         domain.Pricing{Prompt: prompt, Completion: completion},
		SupportedParams: []string{"temperature"},
		Architecture:    json.RawMessage(`{"modality":"text->text"}`),
		TopProvider:     json.RawMessage(`{"context_length":8192}`),
	}
}

// fakeFetcher implements Fetcher with canned results.
type fakeFetcher struct {
	models []domain.Model
	err    error
	calls  int
}

func (f *fakeFetcher) ListModels(ctx context.Context) ([]domain.Model, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.models, nil
}
