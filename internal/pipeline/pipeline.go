// Package pipeline wires the fetch, normalize, score, and bucket stages into
// one linear, single-pass run over an in-memory article set.
package pipeline

import (
	"context"
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/bucket"
	"github.com/sofiya-medyamin/newsmood/internal/normalize"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
	"github.com/sofiya-medyamin/newsmood/internal/source"
)

// Outcome is the full result of one run. FetchErr is informational: a failed
// fetch degrades to an empty article set and the run still completes.
type Outcome struct {
	Articles []article.Processed
	Buckets  bucket.Buckets
	Skipped  []normalize.Skip
	FetchErr error
}

// Run executes one fetch and processes the results. No stage retries or
// calls back into an earlier one.
func Run(ctx context.Context, src source.Source, analyzer sentiment.Analyzer, query string, limit int, now time.Time) Outcome {
	raws, err := src.Fetch(ctx, query, limit)
	out := Process(raws, analyzer, now)
	out.FetchErr = err
	return out
}

// Process normalizes, scores, and buckets an already-fetched batch.
func Process(raws []article.Raw, analyzer sentiment.Analyzer, now time.Time) Outcome {
	res := normalize.Run(raws)

	for i := range res.Articles {
		p := analyzer.Score(res.Articles[i].Text())
		res.Articles[i].Polarity = p
		res.Articles[i].Label = sentiment.LabelFor(p)
	}

	return Outcome{
		Articles: res.Articles,
		Buckets:  bucket.Partition(res.Articles, now),
		Skipped:  res.Skipped,
	}
}
