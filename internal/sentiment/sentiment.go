// Package sentiment scores article text for polarity and maps scores to
// discrete labels.
package sentiment

import (
	"strings"
	"unicode"
)

// Label is a human-readable sentiment class.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// LabelFor maps a polarity score to a label. The neutral band is the closed
// interval [-0.1, 0.1]; no rounding is applied before comparison.
func LabelFor(polarity float64) Label {
	switch {
	case polarity > 0.1:
		return Positive
	case polarity < -0.1:
		return Negative
	default:
		return Neutral
	}
}

// Analyzer scores free text for polarity in [-1.0, 1.0].
type Analyzer interface {
	Score(text string) float64
}

// Lexicon is a word-valence analyzer. Polarity is the mean valence of
// matched tokens, with single-token negation and intensifier handling.
type Lexicon struct{}

func NewLexicon() *Lexicon {
	return &Lexicon{}
}

func (l *Lexicon) Score(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}

	var sum float64
	matched := 0
	for i, tok := range tokens {
		v, ok := valences[tok]
		if !ok {
			continue
		}
		if i > 0 {
			prev := tokens[i-1]
			if scale, ok := intensifiers[prev]; ok {
				v *= scale
			}
			if negators[prev] {
				v = -v
			}
		}
		sum += v
		matched++
	}

	if matched == 0 {
		return 0.0
	}
	return clamp(sum/float64(matched), -1.0, 1.0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, word)
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
