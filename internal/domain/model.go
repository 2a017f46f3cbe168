package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AutoRouterID is the auto-routing meta-model. It carries no fixed price
// of its own: price accessors substitute an extreme value so it orders
// after every real model and never tests as free.
const AutoRouterID = "openrouter/auto"

// unpriced stands in for the auto router's prompt and completion cost.
var unpriced = decimal.New(1, 15)

// Pricing holds per-token costs as decimal strings. Prompt and completion
// are always present; the rest appear only on models that support the
// corresponding feature.
type Pricing struct {
	Prompt            string `json:"prompt"`
	Completion        string `json:"completion"`
	Request           string `json:"request,omitempty"`
	Image             string `json:"image,omitempty"`
	WebSearch         string `json:"web_search,omitempty"`
	InternalReasoning string `json:"internal_reasoning,omitempty"`
	InputCacheRead    string `json:"input_cache_read,omitempty"`
	InputCacheWrite   string `json:"input_cache_write,omitempty"`
}

// Model is one catalog entry. Architecture and TopProvider are kept as raw
// JSON: they are re-emitted by the JSON renderer but never computed on.
type Model struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ContextLength   int             `json:"context_length"`
	Created         int64           `json:"created"`
	Pricing         Pricing         `json:"pricing"`
	SupportedParams []string        `json:"supported_parameters"`
	Architecture    json.RawMessage `json:"architecture"`
	TopProvider     json.RawMessage `json:"top_provider"`
}

func (m *Model) IsAutoRouter() bool {
	return m.ID == AutoRouterID
}

// PromptPrice returns the effective per-token prompt price.
func (m *Model) PromptPrice() decimal.Decimal {
	if m.IsAutoRouter() {
		return unpriced
	}
	return parsePrice(m.Pricing.Prompt)
}

// CompletionPrice returns the effective per-token completion price.
func (m *Model) CompletionPrice() decimal.Decimal {
	if m.IsAutoRouter() {
		return unpriced
	}
	return parsePrice(m.Pricing.Completion)
}

// IsFree reports whether the effective prompt price is exactly zero.
// The auto router never qualifies.
func (m *Model) IsFree() bool {
	return m.PromptPrice().IsZero()
}

func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Capability tokens in supported_parameters. A model supports a feature
// when any token of the set is present.
var (
	reasoningParams        = []string{"reasoning", "include_reasoning"}
	toolParams             = []string{"tools", "tool_choice"}
	structuredOutputParams = []string{"structured_outputs"}
	responseFormatParams   = []string{"response_format"}
)

func (m *Model) SupportsReasoning() bool {
	return m.hasAnyParam(reasoningParams)
}

func (m *Model) SupportsTools() bool {
	return m.hasAnyParam(toolParams)
}

func (m *Model) SupportsStructuredOutput() bool {
	return m.hasAnyParam(structuredOutputParams)
}

func (m *Model) SupportsResponseFormat() bool {
	return m.hasAnyParam(responseFormatParams)
}

func (m *Model) hasAnyParam(tokens []string) bool {
	for _, p := range m.SupportedParams {
		for _, t := range tokens {
			if p == t {
				return true
			}
		}
	}
	return false
}
