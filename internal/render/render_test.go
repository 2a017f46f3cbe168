package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ormodels/ormodels/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Unix(1_700_000_000, 0)

func sampleModel() domain.Model {
	return domain.Model{
		ID:              "acme/widget-1",
		Name:            "Widget 1",
		Description:     "a test model",
		ContextLength:   8192,
		Created:         testNow.Add(-48 * time.Hour).Unix(),
		Pricing:         domain.Pricing{Prompt: "0.00000015", Completion: "0.0000006"},
		SupportedParams: []string{"temperature"},
		Architecture:    json.RawMessage(`{"modality":"text->text"}`),
		TopProvider:     json.RawMessage(`{"context_length":8192}`),
	}
}

func renderString(t *testing.T, models []domain.Model, opts Options) string {
	t.Helper()
	opts.Now = testNow
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, models, opts))
	return buf.String()
}

func TestRender_Table(t *testing.T) {
	out := renderString(t, []domain.Model{sampleModel()}, Options{Format: FormatTable})

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "PROMPT $/M")
	assert.Contains(t, out, "acme/widget-1")
	assert.Contains(t, out, "$0.15")
	assert.Contains(t, out, "$0.6")
	assert.Contains(t, out, "2 days")
	assert.Contains(t, out, "1 models")
}

func TestRender_Table_InvertPrice(t *testing.T) {
	out := renderString(t, []domain.Model{sampleModel()}, Options{Format: FormatTable, InvertPrice: true})

	assert.Contains(t, out, "PROMPT TOK/$")
	// 1 / 0.00000015 per token, rounded.
	assert.Contains(t, out, "6666667")
}

func TestRender_Table_InvertPrice_FreeModel(t *testing.T) {
	m := sampleModel()
	m.Pricing = domain.Pricing{Prompt: "0", Completion: "0"}
	out := renderString(t, []domain.Model{m}, Options{Format: FormatTable, InvertPrice: true})

	assert.Contains(t, out, "free")
}

func TestRender_Table_AutoRouterShowsNA(t *testing.T) {
	m := sampleModel()
	m.ID = domain.AutoRouterID

	for _, invert := range []bool{false, true} {
		out := renderString(t, []domain.Model{m}, Options{Format: FormatTable, InvertPrice: invert})
		// Both price columns, regardless of the underlying numbers.
		assert.Equal(t, 2, strings.Count(out, "n/a"), "invert=%v", invert)
	}
}

func TestRender_Table_LongWidensIDColumn(t *testing.T) {
	m := sampleModel()
	m.ID = "acme/a-very-long-model-identifier-that-overflows-the-default-column"

	normal := renderString(t, []domain.Model{m}, Options{Format: FormatTable})
	long := renderString(t, []domain.Model{m}, Options{Format: FormatTable, LongIDs: true})

	assert.NotContains(t, normal, m.ID)
	assert.Contains(t, normal, "…")
	assert.Contains(t, long, m.ID)
}

func TestRender_JSON(t *testing.T) {
	out := renderString(t, []domain.Model{sampleModel()}, Options{Format: FormatJSON})

	// Pretty-printed full record, opaque metadata included.
	assert.Contains(t, out, "\n  \"id\": \"acme/widget-1\"")
	assert.Contains(t, out, "supported_parameters")
	assert.Contains(t, out, "modality")
}

func TestRender_CSV(t *testing.T) {
	out := renderString(t, []domain.Model{sampleModel()}, Options{Format: FormatCSV})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,context_length,prompt_price,completion_price,free", lines[0])
	assert.Equal(t, `"acme/widget-1","Widget 1",8192,0.00000015,0.0000006,false`, lines[1])
}

func TestRender_Markdown(t *testing.T) {
	out := renderString(t, []domain.Model{sampleModel()}, Options{Format: FormatMarkdown})

	assert.Contains(t, out, "| ID | Context | Age |")
	assert.Contains(t, out, "| acme/widget-1 | 8192 | 2 days |")
	assert.NotContains(t, out, "Widget 1")
}

func TestRender_MarkdownVerbose(t *testing.T) {
	out := renderString(t, []domain.Model{sampleModel()}, Options{Format: FormatMarkdownVerbose})

	assert.Contains(t, out, "| ID | Name | Prompt | Context | Age |")
	assert.Contains(t, out, "Widget 1")
	assert.Contains(t, out, "$0.15")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, nil, Options{Format: "yaml"})
	assert.Error(t, err)
}

func TestPriceLabel(t *testing.T) {
	m := sampleModel()
	assert.Equal(t, "$0.15/M", PriceLabel(&m))

	m.Pricing.Prompt = "0"
	assert.Equal(t, "free", PriceLabel(&m))

	m.ID = domain.AutoRouterID
	assert.Equal(t, "n/a", PriceLabel(&m))
}
