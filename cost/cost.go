// Package cost approximates the price of a model response from its length.
package cost

import "github.com/datar-psa/ctxeval/internal/words"

// DefaultRatePerWord is the simulated price of a single token, in USD
const DefaultRatePerWord = 0.00001

// Estimator treats every whitespace-delimited word as one token, splitting
// on the same separators as the hallucination check
type Estimator struct {
	RatePerWord float64
}

// New returns an Estimator charging rate per word. A negative rate is
// clamped to zero so estimates stay non-negative.
func New(rate float64) *Estimator {
	if rate < 0 {
		rate = 0
	}
	return &Estimator{RatePerWord: rate}
}

// Tokens returns the number of whitespace-delimited words in text
func (e *Estimator) Tokens(text string) int {
	return len(words.Split(text))
}

// Estimate returns Tokens(text) * RatePerWord, unrounded
func (e *Estimator) Estimate(text string) float64 {
	return float64(e.Tokens(text)) * e.RatePerWord
}
