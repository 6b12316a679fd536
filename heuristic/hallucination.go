package heuristic

import (
	"context"
	"strings"

	"github.com/datar-psa/ctxeval/api"
	"github.com/datar-psa/ctxeval/internal/words"
)

// DefaultHallucinationLimit is the number of flagged tokens reported when
// HallucinationOptions.Limit is not set
const DefaultHallucinationLimit = 5

// HallucinationOptions configures the Hallucination scorer
type HallucinationOptions struct {
	// Limit caps the number of flagged tokens reported. Zero means DefaultHallucinationLimit.
	Limit int
}

func (o HallucinationOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultHallucinationLimit
	}
	return o.Limit
}

// Hallucination returns a scorer that flags output tokens not found in the
// context. The score is the fraction of tokens that are supported.
func Hallucination(opts HallucinationOptions) api.Scorer {
	return &hallucinationScorer{opts: opts}
}

type hallucinationScorer struct {
	opts HallucinationOptions
}

func (s *hallucinationScorer) Score(ctx context.Context, in api.ScoreInputs) api.Score {
	result := api.Score{
		Name:     "Hallucination",
		Metadata: make(map[string]any),
	}

	tokens := words.Split(in.Output)
	flagged := flagUnsupported(tokens, in.Context)

	if len(tokens) == 0 {
		result.Score = 1
	} else {
		result.Score = float64(len(tokens)-len(flagged)) / float64(len(tokens))
	}

	result.Metadata["hallucinations"] = truncate(flagged, s.opts.limit())
	result.Metadata["flagged_count"] = len(flagged)
	result.Metadata["token_count"] = len(tokens)

	return result
}

// UnsupportedTokens returns, in response order and original casing, the first
// limit whitespace-delimited tokens of response that do not occur in the
// lowercased, space-joined context. A limit of zero or less means
// DefaultHallucinationLimit.
func UnsupportedTokens(response string, contexts []string, limit int) []string {
	flagged := flagUnsupported(words.Split(response), contexts)
	return truncate(flagged, HallucinationOptions{Limit: limit}.limit())
}

// flagUnsupported checks tokens against the space-joined context. Tokens never
// contain whitespace, so a match cannot straddle two snippets.
func flagUnsupported(tokens, contexts []string) []string {
	text := strings.ToLower(strings.Join(contexts, " "))

	flagged := []string{}
	for _, tok := range tokens {
		if !strings.Contains(text, strings.ToLower(tok)) {
			flagged = append(flagged, tok)
		}
	}
	return flagged
}

func truncate(tokens []string, limit int) []string {
	if len(tokens) > limit {
		return tokens[:limit]
	}
	return tokens
}
