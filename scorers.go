package ctxeval

import (
	"github.com/datar-psa/ctxeval/api"
	"github.com/datar-psa/ctxeval/cost"
	"github.com/datar-psa/ctxeval/heuristic"
)

// Heuristic exposes convenient constructors for heuristic scorers.
type Heuristic struct{}

// NewHeuristic creates a new Heuristic.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// ContextRelevance returns a scorer that measures how many context snippets the output contains.
func (h *Heuristic) ContextRelevance() api.Scorer {
	return heuristic.ContextRelevance()
}

type HallucinationOptions = heuristic.HallucinationOptions

// Hallucination returns a scorer that flags output tokens unsupported by the context.
func (h *Heuristic) Hallucination(opts HallucinationOptions) api.Scorer {
	return heuristic.Hallucination(opts)
}

const DefaultCostPerWord = cost.DefaultRatePerWord

// NewCostEstimator returns an estimator charging rate per whitespace-delimited word.
func NewCostEstimator(rate float64) *cost.Estimator {
	return cost.New(rate)
}
