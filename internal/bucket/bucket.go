// Package bucket partitions processed articles into date-relative views.
// Buckets overlap: an article published today belongs to all three.
package bucket

import (
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/article"
)

// Buckets holds the three date views of a processed article set.
type Buckets struct {
	Today    []article.Processed
	ThisWeek []article.Processed
	AllTime  []article.Processed
}

// Partition evaluates each bucket predicate independently against a snapshot
// of now. Pure; re-running with the same inputs yields identical membership.
func Partition(articles []article.Processed, now time.Time) Buckets {
	today := dateOf(now)
	weekStart := startOfWeek(today)

	b := Buckets{AllTime: articles}
	for _, a := range articles {
		d := dateOf(a.Published)
		if d.Equal(today) {
			b.Today = append(b.Today, a)
		}
		if !d.Before(weekStart) && !d.After(today) {
			b.ThisWeek = append(b.ThisWeek, a)
		}
	}
	return b
}

// startOfWeek returns the most recent Monday on or before d (ISO week).
func startOfWeek(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.AddDate(0, 0, -offset)
}

// dateOf truncates t to its calendar date, ignoring the time zone offset so
// a provider timestamp is compared by the date it carries.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
