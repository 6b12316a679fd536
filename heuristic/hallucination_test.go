package heuristic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datar-psa/ctxeval/api"
)

func TestHallucination(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		opts        HallucinationOptions
		output      string
		context     []string
		want        []string
		wantFlagged int
		wantScore   float64
	}{
		{
			name:        "grounded answer",
			output:      "Paris is the capital of France",
			context:     []string{"Paris", "capital of France"},
			want:        []string{"the"},
			wantFlagged: 1,
			wantScore:   5.0 / 6.0,
		},
		{
			name:        "unsupported claim",
			output:      "The moon is made of cheese",
			context:     []string{"The moon orbits Earth"},
			want:        []string{"is", "made", "of", "cheese"},
			wantFlagged: 4,
			wantScore:   2.0 / 6.0,
		},
		{
			name:        "casing and order preserved",
			output:      "Moon XYZ Orbits Qux",
			context:     []string{"the moon orbits"},
			want:        []string{"XYZ", "Qux"},
			wantFlagged: 2,
			wantScore:   0.5,
		},
		{
			name:        "truncated to default limit",
			output:      "a1 a2 a3 a4 a5 a6 a7",
			context:     []string{"nothing here"},
			want:        []string{"a1", "a2", "a3", "a4", "a5"},
			wantFlagged: 7,
			wantScore:   0,
		},
		{
			name:        "custom limit",
			opts:        HallucinationOptions{Limit: 2},
			output:      "a1 a2 a3",
			context:     nil,
			want:        []string{"a1", "a2"},
			wantFlagged: 3,
			wantScore:   0,
		},
		{
			name:        "punctuation is not stripped",
			output:      "Paris. Paris",
			context:     []string{"Paris"},
			want:        []string{"Paris."},
			wantFlagged: 1,
			wantScore:   0.5,
		},
		{
			name:        "token cannot span two snippets",
			output:      "ab",
			context:     []string{"xa", "bx"},
			want:        []string{"ab"},
			wantFlagged: 1,
			wantScore:   0,
		},
		{
			name:        "ascii separators split tokens",
			output:      "Paris\x1cmoon\x1fParis",
			context:     []string{"paris"},
			want:        []string{"moon"},
			wantFlagged: 1,
			wantScore:   2.0 / 3.0,
		},
		{
			name:        "empty output",
			output:      "   ",
			context:     []string{"anything"},
			want:        []string{},
			wantFlagged: 0,
			wantScore:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := Hallucination(tt.opts)
			result := scorer.Score(ctx, api.ScoreInputs{Output: tt.output, Context: tt.context})

			assert.NoError(t, result.Error)
			assert.Equal(t, "Hallucination", result.Name)
			assert.Equal(t, tt.want, result.Metadata["hallucinations"])
			assert.Equal(t, tt.wantFlagged, result.Metadata["flagged_count"])
			assert.InDelta(t, tt.wantScore, result.Score, 1e-12)

			if tt.opts.Limit == 0 {
				assert.Equal(t, tt.want, UnsupportedTokens(tt.output, tt.context, 0))
			}
		})
	}
}

func TestUnsupportedTokens_NeverExceedsLimit(t *testing.T) {
	response := "one two three four five six seven eight nine ten"

	for limit := -1; limit <= 12; limit++ {
		got := UnsupportedTokens(response, []string{"zzz"}, limit)

		wantMax := limit
		if limit <= 0 {
			wantMax = DefaultHallucinationLimit
		}
		assert.LessOrEqual(t, len(got), wantMax)
		assert.Equal(t, []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}[:len(got)], got)
	}
}
