// Package main is the ormodels CLI entry point: fetch the OpenRouter
// model catalog (cached for 24h), then filter, sort, and render it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/ormodels/ormodels/internal/config"
	"github.com/ormodels/ormodels/internal/render"
	"github.com/ormodels/ormodels/internal/service"
	"github.com/ormodels/ormodels/internal/tui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// version is set at build time.
var version = "dev"

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		freeOnly         bool
		minPrice         string
		maxPrice         string
		minContext       int
		maxContext       int
		reasoning        bool
		tools            bool
		structuredOutput bool
		responseFormat   bool

		output       string
		sortBy       string
		desc         bool
		invertPrice  bool
		forceRefresh bool
		longIDs      bool
		interactive  bool
		verbose      bool
	)

	rootCmd := &cobra.Command{
		Use:   "ormodels [search term]",
		Short: "Explore the OpenRouter model catalog",
		Long: `Fetch the OpenRouter model catalog, cache it locally for 24 hours,
and explore it with filters, sorting, and multiple output formats.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			filter := service.Filter{
				FreeOnly:         freeOnly,
				Reasoning:        reasoning,
				Tools:            tools,
				StructuredOutput: structuredOutput,
				ResponseFormat:   responseFormat,
			}
			if len(args) == 1 {
				filter.Search = args[0]
			}

			// Numeric bounds are validated here, before the filter engine
			// ever sees them.
			if minPrice != "" {
				d, err := decimal.NewFromString(minPrice)
				if err != nil {
					return fmt.Errorf("invalid --min-price %q", minPrice)
				}
				filter.MinPromptPrice = &d
			}
			if maxPrice != "" {
				d, err := decimal.NewFromString(maxPrice)
				if err != nil {
					return fmt.Errorf("invalid --max-price %q", maxPrice)
				}
				filter.MaxPromptPrice = &d
			}
			if cmd.Flags().Changed("min-context") {
				filter.MinContext = &minContext
			}
			if cmd.Flags().Changed("max-context") {
				filter.MaxContext = &maxContext
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			catalogSvc := service.NewCatalogService(
				service.NewOpenRouterService(cfg),
				service.NewModelsCache(cfg.CachePath()),
				cfg.CacheTTL,
			)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			catalog, err := catalogSvc.Load(ctx, forceRefresh)
			if err != nil {
				return err
			}
			if catalog.Source == service.SourceStale {
				slog.Warn("showing stale data: the upstream fetch failed",
					"cache_age", catalog.Age.Round(0))
			}

			models := service.FilterModels(catalog.Models, filter)
			service.SortModels(models, sortBy, desc)

			if interactive {
				return tui.Browse(models)
			}

			return render.Render(os.Stdout, models, render.Options{
				Format:      output,
				InvertPrice: invertPrice,
				LongIDs:     longIDs,
			})
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&freeOnly, "free", false, "Only models with a zero prompt price")
	flags.StringVar(&minPrice, "min-price", "", "Minimum prompt price per token (inclusive)")
	flags.StringVar(&maxPrice, "max-price", "", "Maximum prompt price per token (inclusive)")
	flags.IntVar(&minContext, "min-context", 0, "Minimum context length (inclusive)")
	flags.IntVar(&maxContext, "max-context", 0, "Maximum context length (inclusive)")
	flags.BoolVar(&reasoning, "reasoning", false, "Only models that support reasoning")
	flags.BoolVar(&tools, "tools", false, "Only models that support tool calling")
	flags.BoolVar(&structuredOutput, "structured-output", false, "Only models that support structured outputs")
	flags.BoolVar(&responseFormat, "response-format", false, "Only models that support response_format")
	flags.StringVar(&output, "output", config.DefaultOutput, "Output format: table|json|csv|md|md-verbose")
	flags.StringVar(&sortBy, "sort-by", config.DefaultSortKey, "Sort key: prompt_price|completion_price|context|created|name")
	flags.BoolVar(&desc, "desc", false, "Sort descending")
	flags.BoolVar(&invertPrice, "invert-price", false, "Show tokens-per-dollar instead of dollars-per-million-tokens")
	flags.BoolVar(&forceRefresh, "force-refresh", false, "Skip the cache and fetch from the API")
	flags.BoolVar(&longIDs, "long", false, "Widen the ID column")
	flags.BoolVar(&interactive, "interactive", false, "Browse the catalog in an interactive list")
	flags.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flags.BoolP("version", "v", false, "Print the version and exit")

	return rootCmd
}

// setupLogging sends structured logs to stderr so rendered output on
// stdout stays machine-consumable.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
