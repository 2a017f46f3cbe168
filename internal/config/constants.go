package config

import "time"

const (
	// Upstream request timeout
	RequestTimeout = 10 * time.Second

	// Cache file inside CacheDir
	CacheFileName = "models.json"

	// Upstream prices are quoted per token; display is per million tokens.
	PricePerTokens = 1_000_000

	// Table layout
	IDColumnWidth     = 42
	IDColumnWidthLong = 72

	// Defaults for the CLI surface
	DefaultSortKey = "created"
	DefaultOutput  = "table"
)
