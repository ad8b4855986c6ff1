// Package source fetches raw article records from external providers.
package source

import (
	"context"

	"github.com/sofiya-medyamin/newsmood/internal/article"
)

// Source issues one query against an article provider. A failed fetch is
// terminal for the run: callers report the error and continue with an empty
// set, never retry.
type Source interface {
	Fetch(ctx context.Context, query string, limit int) ([]article.Raw, error)
	Name() string
}

const (
	// MinArticles and MaxArticles bound the per-request article count.
	MinArticles = 5
	MaxArticles = 50
)

// ClampLimit forces a requested count into the supported range.
func ClampLimit(n int) int {
	if n < MinArticles {
		return MinArticles
	}
	if n > MaxArticles {
		return MaxArticles
	}
	return n
}
