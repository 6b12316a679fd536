package ctxeval

// Result is the printed outcome of one evaluation
type Result struct {
	// RelevanceScore is the fraction of context vectors found in the response, 1 when there are none
	RelevanceScore float64 `json:"relevance_score"`
	// Hallucinations lists up to five response tokens not found in the context
	Hallucinations []string `json:"hallucinations"`
	// EstimatedCostUSD is the word count of the response times the per-word rate
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}

// Evaluation is a Result together with values computed along the way that
// are not part of the printed output.
type Evaluation struct {
	Result

	LastUserMessage string
	// ContextPath is the context document actually loaded, after fallbacks
	ContextPath string
	TokenCount  int
	// Latency is the time spent scoring, in seconds
	Latency float64
	Scores  []Score
}
