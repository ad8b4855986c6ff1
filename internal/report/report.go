// Package report computes summary metrics over processed articles and writes
// the tabular export.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
)

// DefaultExportName is the filename used when no export path is given.
const DefaultExportName = "filtered_articles.csv"

// Average returns the mean polarity, or 0.0 for an empty set.
func Average(articles []article.Processed) float64 {
	if len(articles) == 0 {
		return 0.0
	}
	var sum float64
	for _, a := range articles {
		sum += a.Polarity
	}
	return sum / float64(len(articles))
}

// Tally counts articles per sentiment label.
func Tally(articles []article.Processed) map[sentiment.Label]int {
	counts := make(map[sentiment.Label]int, 3)
	for _, a := range articles {
		counts[a.Label]++
	}
	return counts
}

// WriteCSV writes the table columns (title, sentiment, polarity, source) in
// article order.
func WriteCSV(w io.Writer, articles []article.Processed) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Title", "Sentiment", "Polarity", "Source"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, a := range articles {
		row := []string{a.Title, string(a.Label), fmt.Sprintf("%.4f", a.Polarity), a.Source}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %q: %w", a.Title, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the export to path, creating or truncating the file.
func ExportCSV(path string, articles []article.Processed) error {
	if path == "" {
		path = DefaultExportName
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, articles); err != nil {
		return err
	}
	return f.Close()
}
