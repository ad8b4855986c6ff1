package article

import (
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
)

// Raw is an article record exactly as a provider returned it. The schema is
// owned by the provider: any field may be absent, null, or the wrong type.
type Raw map[string]any

// Processed is a validated article ready for display. Immutable once built.
type Processed struct {
	Title       string
	Description string
	Published   time.Time
	Source      string
	URL         string
	Polarity    float64
	Label       sentiment.Label
}

// Text returns the content used for sentiment scoring: title and
// description joined with a single space.
func (p Processed) Text() string {
	return p.Title + " " + p.Description
}
