package ctxeval

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/datar-psa/ctxeval/api"
	"github.com/datar-psa/ctxeval/cost"
	"github.com/datar-psa/ctxeval/document"
	"github.com/datar-psa/ctxeval/heuristic"
	"github.com/datar-psa/ctxeval/internal/timing"
)

// Default input locations used by the command line tool.
const (
	DefaultChatPath    = "chat.json"
	DefaultContextPath = "context.json"
)

// Evaluator scores an assistant response against reference context snippets.
type Evaluator struct {
	logger        *zap.Logger
	loader        *document.Loader
	fallbacks     []string
	relevance     api.Scorer
	hallucination api.Scorer
	cost          *cost.Estimator
}

// EvaluatorOptions configures Evaluator creation
type EvaluatorOptions struct {
	logger             *zap.Logger
	costPerWord        float64
	fallbacks          []string
	baseDir            string
	hallucinationLimit int
}

// WithLogger sets the logger used by the evaluator and its document loader
func WithLogger(logger *zap.Logger) func(*EvaluatorOptions) {
	return func(opts *EvaluatorOptions) {
		opts.logger = logger
	}
}

// WithCostPerWord overrides DefaultCostPerWord
func WithCostPerWord(rate float64) func(*EvaluatorOptions) {
	return func(opts *EvaluatorOptions) {
		opts.costPerWord = rate
	}
}

// WithContextFallbacks replaces the file names tried when the context document is missing
func WithContextFallbacks(paths ...string) func(*EvaluatorOptions) {
	return func(opts *EvaluatorOptions) {
		opts.fallbacks = paths
	}
}

// WithBaseDir resolves relative input paths, fallbacks included, against dir
func WithBaseDir(dir string) func(*EvaluatorOptions) {
	return func(opts *EvaluatorOptions) {
		opts.baseDir = dir
	}
}

// WithHallucinationLimit sets how many unsupported tokens are reported
func WithHallucinationLimit(limit int) func(*EvaluatorOptions) {
	return func(opts *EvaluatorOptions) {
		opts.hallucinationLimit = limit
	}
}

// NewEvaluator creates a new Evaluator using functional options.
func NewEvaluator(opts ...func(*EvaluatorOptions)) *Evaluator {
	options := &EvaluatorOptions{
		logger:             zap.NewNop(),
		costPerWord:        DefaultCostPerWord,
		fallbacks:          document.DefaultContextFallbacks,
		hallucinationLimit: heuristic.DefaultHallucinationLimit,
	}
	for _, opt := range opts {
		opt(options)
	}

	h := NewHeuristic()
	return &Evaluator{
		logger: options.logger,
		loader: document.New(
			document.WithDir(options.baseDir),
			document.WithLogger(options.logger),
		),
		fallbacks: options.fallbacks,
		relevance: h.ContextRelevance(),
		hallucination: h.Hallucination(HallucinationOptions{
			Limit: options.hallucinationLimit,
		}),
		cost: NewCostEstimator(options.costPerWord),
	}
}

// Evaluate loads the conversation at chatPath and the context at contextPath,
// falling back to the configured alternatives, and scores the assistant response.
func (e *Evaluator) Evaluate(ctx context.Context, chatPath, contextPath string) (*Result, error) {
	ev, err := e.EvaluateDetailed(ctx, chatPath, contextPath)
	if err != nil {
		return nil, err
	}
	return &ev.Result, nil
}

// EvaluateDetailed is Evaluate returning the intermediate values as well.
func (e *Evaluator) EvaluateDetailed(ctx context.Context, chatPath, contextPath string) (*Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conv, err := e.loader.LoadConversation(chatPath)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	doc, resolved, err := e.loader.LoadContextWithFallback(contextPath, e.fallbacks)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	ev, err := e.EvaluateRecords(ctx, conv, doc)
	if err != nil {
		return nil, err
	}
	ev.ContextPath = resolved

	return ev, nil
}

// EvaluateRecords scores already loaded documents.
func (e *Evaluator) EvaluateRecords(ctx context.Context, conv *Conversation, doc *ContextDocument) (*Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, &MissingFieldError{Field: "conversation"}
	}

	lastUserMessage, err := conv.LastMessage()
	if err != nil {
		return nil, err
	}

	var vectors []string
	if doc != nil {
		vectors = doc.Vectors
	}

	in := ScoreInputs{
		Output:  conv.AssistantResponse,
		Context: vectors,
		Input:   lastUserMessage,
	}

	ev, latency := timing.Measure(func() *Evaluation {
		return e.score(ctx, in)
	})
	ev.Latency = latency

	e.logger.Debug("evaluation complete",
		zap.Float64("relevance_score", ev.RelevanceScore),
		zap.Int("hallucinations", len(ev.Hallucinations)),
		zap.Int("tokens", ev.TokenCount),
		zap.Float64("latency_seconds", latency),
	)

	return ev, nil
}

func (e *Evaluator) score(ctx context.Context, in ScoreInputs) *Evaluation {
	relevance := e.relevance.Score(ctx, in)
	hallucination := e.hallucination.Score(ctx, in)

	flagged, _ := hallucination.Metadata["hallucinations"].([]string)
	if flagged == nil {
		flagged = []string{}
	}

	return &Evaluation{
		Result: Result{
			RelevanceScore:   relevance.Score,
			Hallucinations:   flagged,
			EstimatedCostUSD: e.cost.Estimate(in.Output),
		},
		LastUserMessage: in.Input,
		TokenCount:      e.cost.Tokens(in.Output),
		Scores:          []Score{relevance, hallucination},
	}
}
