package service

import (
	"strings"

	"github.com/ormodels/ormodels/internal/domain"
	"github.com/shopspring/decimal"
)

// Filter is a conjunction of independent predicates. Nil pointers and
// false booleans mean "no constraint", not a vacuously satisfied one.
// Price bounds apply to the effective prompt price and are inclusive,
// as are the context bounds.
type Filter struct {
	Search           string
	FreeOnly         bool
	MinPromptPrice   *decimal.Decimal
	MaxPromptPrice   *decimal.Decimal
	MinContext       *int
	MaxContext       *int
	Reasoning        bool
	Tools            bool
	StructuredOutput bool
	ResponseFormat   bool
}

// FilterModels keeps records matching every active predicate, preserving
// input order. It never fails: malformed bounds are rejected at the CLI
// boundary before a Filter is built.
func FilterModels(models []domain.Model, f Filter) []domain.Model {
	search := strings.ToLower(f.Search)

	filtered := make([]domain.Model, 0, len(models))
	for _, m := range models {
		if search != "" && !matchesSearch(&m, search) {
			continue
		}
		if f.FreeOnly && !m.IsFree() {
			continue
		}
		if f.MinPromptPrice != nil && m.PromptPrice().Cmp(*f.MinPromptPrice) < 0 {
			continue
		}
		if f.MaxPromptPrice != nil && m.PromptPrice().Cmp(*f.MaxPromptPrice) > 0 {
			continue
		}
		if f.MinContext != nil && m.ContextLength < *f.MinContext {
			continue
		}
		if f.MaxContext != nil && m.ContextLength > *f.MaxContext {
			continue
		}
		if f.Reasoning && !m.SupportsReasoning() {
			continue
		}
		if f.Tools && !m.SupportsTools() {
			continue
		}
		if f.StructuredOutput && !m.SupportsStructuredOutput() {
			continue
		}
		if f.ResponseFormat && !m.SupportsResponseFormat() {
			continue
		}
		filtered = append(filtered, m)
	}

	return filtered
}

func matchesSearch(m *domain.Model, query string) bool {
	return strings.Contains(strings.ToLower(m.ID), query) ||
		strings.Contains(strings.ToLower(m.Name), query) ||
		strings.Contains(strings.ToLower(m.Description), query)
}
