package domain

import "errors"

var (
	ErrCacheMiss    = errors.New("model cache not found")
	ErrCacheCorrupt = errors.New("model cache corrupt")
	ErrNoCatalog    = errors.New("no model catalog available")
)
