package service

import (
	"sort"
	"strings"

	"github.com/ormodels/ormodels/internal/domain"
)

// Sort keys accepted by SortModels.
const (
	SortPromptPrice     = "prompt_price"
	SortCompletionPrice = "completion_price"
	SortContext         = "context"
	SortCreated         = "created"
	SortName            = "name"
)

// SortModels orders records in place, stably. Descending flips the
// comparison rather than the final slice, so ties keep input order in
// both directions. An unrecognized key leaves the order untouched.
func SortModels(models []domain.Model, key string, desc bool) {
	less := lessFunc(models, key)
	if less == nil {
		return
	}
	if desc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(models, less)
}

func lessFunc(models []domain.Model, key string) func(i, j int) bool {
	switch key {
	case SortPromptPrice:
		return func(i, j int) bool {
			return models[i].PromptPrice().Cmp(models[j].PromptPrice()) < 0
		}
	case SortCompletionPrice:
		return func(i, j int) bool {
			return models[i].CompletionPrice().Cmp(models[j].CompletionPrice()) < 0
		}
	case SortContext:
		return func(i, j int) bool {
			return models[i].ContextLength < models[j].ContextLength
		}
	case SortCreated:
		return func(i, j int) bool {
			return models[i].Created < models[j].Created
		}
	case SortName:
		return func(i, j int) bool {
			return strings.ToLower(models[i].Name) < strings.ToLower(models[j].Name)
		}
	}
	return nil
}
