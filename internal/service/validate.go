package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ormodels/ormodels/internal/domain"
)

// requiredFields must be present and non-null on every record;
// requiredPricing on every pricing object. Optional pricing sub-fields
// (cache read/write, web search, ...) are deliberately not checked.
var requiredFields = []string{
	"id", "name", "description", "context_length", "created",
	"architecture", "pricing", "top_provider", "supported_parameters",
}

var requiredPricing = []string{"prompt", "completion"}

// ValidationError reports which fields of which record violate the
// expected catalog shape.
type ValidationError struct {
	Index  int
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model record %d: invalid or missing fields: %s",
		e.Index, strings.Join(e.Fields, ", "))
}

// ParseCatalog decodes and validates a {"data": [...]} catalog document.
// It is pure: no I/O, no mutation of its input.
func ParseCatalog(data []byte) ([]domain.Model, error) {
	var doc struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if doc.Data == nil {
		return nil, fmt.Errorf("decode catalog: missing data array")
	}

	models := make([]domain.Model, 0, len(doc.Data))
	for i, raw := range doc.Data {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("model record %d: %w", i, err)
		}

		var missing []string
		for _, f := range requiredFields {
			if isNullOrAbsent(fields[f]) {
				missing = append(missing, f)
			}
		}
		if p, ok := fields["pricing"]; ok {
			var pricing map[string]json.RawMessage
			if err := json.Unmarshal(p, &pricing); err == nil {
				for _, f := range requiredPricing {
					if isNullOrAbsent(pricing[f]) {
						missing = append(missing, "pricing."+f)
					}
				}
			}
		}
		if len(missing) > 0 {
			return nil, &ValidationError{Index: i, Fields: missing}
		}

		var m domain.Model
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("model record %d: %w", i, err)
		}
		if m.ContextLength < 0 {
			return nil, &ValidationError{Index: i, Fields: []string{"context_length"}}
		}
		models = append(models, m)
	}

	return models, nil
}

func isNullOrAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
