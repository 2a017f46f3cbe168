package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ormodels/ormodels/internal/config"
	"github.com/ormodels/ormodels/internal/domain"
)

// OpenRouterService fetches the model catalog from the OpenRouter API.
type OpenRouterService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenRouterService(cfg *config.Config) *OpenRouterService {
	return &OpenRouterService{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

// ListModels performs the catalog GET and validates the decoded body.
// The models endpoint is public; the Authorization header is sent only
// when a key is configured.
func (s *OpenRouterService) ListModels(ctx context.Context) ([]domain.Model, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch models: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	models, err := ParseCatalog(body)
	if err != nil {
		return nil, fmt.Errorf("parse models: %w", err)
	}

	return models, nil
}
