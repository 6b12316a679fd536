package heuristic

import (
	"context"
	"strings"

	"github.com/datar-psa/ctxeval/api"
)

// ContextRelevance returns a scorer that measures the fraction of context
// snippets that appear verbatim, ignoring case, in the output
func ContextRelevance() api.Scorer {
	return &contextRelevanceScorer{}
}

type contextRelevanceScorer struct{}

func (s *contextRelevanceScorer) Score(ctx context.Context, in api.ScoreInputs) api.Score {
	result := api.Score{
		Name:     "ContextRelevance",
		Metadata: make(map[string]any),
	}

	matched := countContained(in.Output, in.Context)

	result.Score = relevanceRatio(matched, len(in.Context))
	result.Metadata["matched"] = matched
	result.Metadata["total"] = len(in.Context)

	return result
}

// Relevance returns matched/total for the context snippets contained in
// response. An empty context is fully relevant.
func Relevance(response string, contexts []string) float64 {
	return relevanceRatio(countContained(response, contexts), len(contexts))
}

func countContained(response string, contexts []string) int {
	text := strings.ToLower(response)

	matched := 0
	for _, c := range contexts {
		if strings.Contains(text, strings.ToLower(c)) {
			matched++
		}
	}
	return matched
}

func relevanceRatio(matched, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(matched) / float64(total)
}
