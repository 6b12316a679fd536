package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datar-psa/ctxeval"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	os.Exit(run(newRootCmd(logger), logger))
}

// run executes cmd and flushes logger before reporting the exit code.
func run(cmd *cobra.Command, logger *zap.Logger) int {
	err := cmd.ExecuteContext(context.Background())
	_ = logger.Sync()
	if err != nil {
		return 1
	}
	return 0
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newRootCmd(logger *zap.Logger, opts ...func(*ctxeval.EvaluatorOptions)) *cobra.Command {
	return &cobra.Command{
		Use:   "ctxeval",
		Short: "Score chat.json's assistant response against context.json",
		Long: `ctxeval reads chat.json and context.json from the working directory and
prints the relevance score, suspected hallucinations and estimated cost of
the assistant response as JSON.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			evaluator := ctxeval.NewEvaluator(append([]func(*ctxeval.EvaluatorOptions){
				ctxeval.WithLogger(logger),
			}, opts...)...)

			result, err := evaluator.Evaluate(cmd.Context(), ctxeval.DefaultChatPath, ctxeval.DefaultContextPath)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}
}

func writeResult(w io.Writer, result *ctxeval.Result) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
