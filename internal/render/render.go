// Package render projects the final record set into the CLI's output
// encodings: a styled table, pretty-printed JSON records, CSV, and
// markdown tables.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ormodels/ormodels/internal/config"
	"github.com/ormodels/ormodels/internal/domain"
	"github.com/shopspring/decimal"
)

// Format names accepted by Render.
const (
	FormatTable           = "table"
	FormatJSON            = "json"
	FormatCSV             = "csv"
	FormatMarkdown        = "md"
	FormatMarkdownVerbose = "md-verbose"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7AA2F7"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

var perMillion = decimal.NewFromInt(config.PricePerTokens)

type Options struct {
	Format      string
	InvertPrice bool
	LongIDs     bool

	// Now anchors age rendering; zero means time.Now().
	Now time.Time
}

// Render writes the record set to w in the requested format.
func Render(w io.Writer, models []domain.Model, opts Options) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	switch opts.Format {
	case FormatTable, "":
		return renderTable(w, models, opts)
	case FormatJSON:
		return renderJSON(w, models)
	case FormatCSV:
		return renderCSV(w, models)
	case FormatMarkdown:
		return renderMarkdown(w, models, opts, false)
	case FormatMarkdownVerbose:
		return renderMarkdown(w, models, opts, true)
	default:
		return fmt.Errorf("unknown output format: %q", opts.Format)
	}
}

func renderTable(w io.Writer, models []domain.Model, opts Options) error {
	idWidth := config.IDColumnWidth
	if opts.LongIDs {
		idWidth = config.IDColumnWidthLong
	}

	header := fmt.Sprintf("%-*s %9s %14s %14s %10s",
		idWidth, "ID", "CONTEXT", priceHeader("PROMPT", opts), priceHeader("COMPLETION", opts), "AGE")
	fmt.Fprintln(w, headerStyle.Render(header))

	for i := range models {
		m := &models[i]
		fmt.Fprintf(w, "%-*s %9d %14s %14s %10s\n",
			idWidth, truncate(m.ID, idWidth),
			m.ContextLength,
			priceCell(m, m.PromptPrice(), opts),
			priceCell(m, m.CompletionPrice(), opts),
			FormatAge(m.Created, opts.Now))
	}

	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d models", len(models))))
	return nil
}

func priceHeader(name string, opts Options) string {
	if opts.InvertPrice {
		return name + " TOK/$"
	}
	return name + " $/M"
}

// priceCell formats one price column. The auto router has no fixed price
// and always renders as n/a. Under inversion a zero price would divide by
// zero, so it renders as free.
func priceCell(m *domain.Model, price decimal.Decimal, opts Options) string {
	if m.IsAutoRouter() {
		return "n/a"
	}
	if opts.InvertPrice {
		if price.IsZero() {
			return "free"
		}
		return decimal.NewFromInt(1).DivRound(price, 0).String()
	}
	return "$" + price.Mul(perMillion).String()
}

// PriceLabel is a compact prompt-price label for list views.
func PriceLabel(m *domain.Model) string {
	if m.IsAutoRouter() {
		return "n/a"
	}
	if m.IsFree() {
		return "free"
	}
	return "$" + m.PromptPrice().Mul(perMillion).String() + "/M"
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

// renderJSON emits each record pretty-printed, in sequence, including the
// opaque architecture and top_provider metadata.
func renderJSON(w io.Writer, models []domain.Model) error {
	for i := range models {
		data, err := json.MarshalIndent(&models[i], "", "  ")
		if err != nil {
			return fmt.Errorf("marshal model %s: %w", models[i].ID, err)
		}
		fmt.Fprintln(w, string(data))
	}
	return nil
}

// renderCSV always quotes id and name; numeric and boolean fields are
// emitted raw, with prices as their original decimal strings.
func renderCSV(w io.Writer, models []domain.Model) error {
	fmt.Fprintln(w, "id,name,context_length,prompt_price,completion_price,free")
	for i := range models {
		m := &models[i]
		fmt.Fprintf(w, "%q,%q,%d,%s,%s,%t\n",
			m.ID, m.Name, m.ContextLength,
			m.Pricing.Prompt, m.Pricing.Completion, m.IsFree())
	}
	return nil
}

func renderMarkdown(w io.Writer, models []domain.Model, opts Options, verbose bool) error {
	if verbose {
		fmt.Fprintln(w, "| ID | Name | Prompt | Context | Age |")
		fmt.Fprintln(w, "|----|------|-------:|--------:|-----|")
	} else {
		fmt.Fprintln(w, "| ID | Context | Age |")
		fmt.Fprintln(w, "|----|--------:|-----|")
	}

	for i := range models {
		m := &models[i]
		age := FormatAge(m.Created, opts.Now)
		if verbose {
			fmt.Fprintf(w, "| %s | %s | %s | %d | %s |\n",
				escapePipes(m.ID), escapePipes(m.Name),
				priceCell(m, m.PromptPrice(), opts), m.ContextLength, age)
		} else {
			fmt.Fprintf(w, "| %s | %d | %s |\n", escapePipes(m.ID), m.ContextLength, age)
		}
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
