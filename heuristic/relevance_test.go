package heuristic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datar-psa/ctxeval/api"
)

func TestContextRelevance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		output      string
		context     []string
		wantScore   float64
		wantMatched int
	}{
		{
			name:        "all snippets contained",
			output:      "Paris is the capital of France",
			context:     []string{"Paris", "capital of France"},
			wantScore:   1.0,
			wantMatched: 2,
		},
		{
			name:        "phrase not contiguous",
			output:      "The moon is made of cheese",
			context:     []string{"The moon orbits Earth"},
			wantScore:   0.0,
			wantMatched: 0,
		},
		{
			name:        "empty context is fully relevant",
			output:      "anything at all",
			context:     nil,
			wantScore:   1,
			wantMatched: 0,
		},
		{
			name:        "empty context with empty output",
			output:      "",
			context:     []string{},
			wantScore:   1,
			wantMatched: 0,
		},
		{
			name:        "case insensitive",
			output:      "the EIFFEL tower is in paris",
			context:     []string{"Eiffel Tower", "PARIS", "London"},
			wantScore:   2.0 / 3.0,
			wantMatched: 2,
		},
		{
			name:        "order matters",
			output:      "France capital",
			context:     []string{"capital France"},
			wantScore:   0.0,
			wantMatched: 0,
		},
		{
			name:        "substring within a word counts",
			output:      "categorical",
			context:     []string{"cat"},
			wantScore:   1.0,
			wantMatched: 1,
		},
		{
			name:        "empty snippet always matches",
			output:      "short",
			context:     []string{"", "missing"},
			wantScore:   0.5,
			wantMatched: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := ContextRelevance()
			result := scorer.Score(ctx, api.ScoreInputs{Output: tt.output, Context: tt.context})

			assert.NoError(t, result.Error)
			assert.Equal(t, "ContextRelevance", result.Name)
			assert.InDelta(t, tt.wantScore, result.Score, 1e-12)
			assert.Equal(t, tt.wantMatched, result.Metadata["matched"])
			assert.Equal(t, len(tt.context), result.Metadata["total"])

			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 1.0)
			assert.Equal(t, result.Score, Relevance(tt.output, tt.context))
		})
	}
}
