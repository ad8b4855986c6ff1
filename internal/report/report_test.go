package report

import (
	"bytes"
	"encoding/csv"
	"math"
	"path/filepath"
	"os"
	"testing"

	"github.com/sofiya-medyamin/newsmood/internal/article"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
)

func sample() []article.Processed {
	return []article.Processed{
		{Title: "up", Polarity: 0.6, Label: sentiment.Positive, Source: "Reuters"},
		{Title: "down", Polarity: -0.4, Label: sentiment.Negative, Source: "AP"},
		{Title: "flat", Polarity: 0.0, Label: sentiment.Neutral, Source: "Unknown"},
	}
}

func TestAverage(t *testing.T) {
	got := Average(sample())
	want := (0.6 - 0.4 + 0.0) / 3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Average = %v, want %v", got, want)
	}
}

func TestAverageEmpty(t *testing.T) {
	if got := Average(nil); got != 0.0 {
		t.Errorf("Average(nil) = %v, want 0.0", got)
	}
	if got := Average([]article.Processed{}); got != 0.0 {
		t.Errorf("Average(empty) = %v, want 0.0", got)
	}
}

func TestTally(t *testing.T) {
	counts := Tally(sample())
	if counts[sentiment.Positive] != 1 || counts[sentiment.Negative] != 1 || counts[sentiment.Neutral] != 1 {
		t.Errorf("Tally = %v", counts)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}

	header := rows[0]
	wantHeader := []string{"Title", "Sentiment", "Polarity", "Source"}
	for i := range wantHeader {
		if header[i] != wantHeader[i] {
			t.Errorf("header[%d] = %q, want %q", i, header[i], wantHeader[i])
		}
	}

	first := rows[1]
	if first[0] != "up" || first[1] != "Positive" || first[2] != "0.6000" || first[3] != "Reuters" {
		t.Errorf("first row = %v", first)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty set should still write the header, got %d rows", len(rows))
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ExportCSV(path, sample()); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if len(data) == 0 {
		t.Error("export file is empty")
	}
}
