// Command belts reads a flow-network problem as JSON on stdin and
// writes its max-flow result or infeasibility certificate as JSON to
// stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/optiflow/belts"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "belts",
		Short: "Solve a generalized max-flow problem from stdin JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), os.Stdin, os.Stdout, verbose, timeout)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solve diagnostics to stderr")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Second, "maximum time to spend solving")

	return cmd
}

func run(ctx context.Context, in io.Reader, out io.Writer, verbose bool, timeout time.Duration) error {
	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	raw, err := io.ReadAll(in)
	if err != nil {
		logger.Error("read stdin", zap.Error(err))
		return err
	}

	var schema belts.Schema
	if err := sonic.Unmarshal(raw, &schema); err != nil {
		logger.Error("decode problem", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := belts.Solve(ctx, schema)
	if err != nil {
		var malformed *belts.MalformedProblem
		var anomaly *belts.NumericAnomaly
		switch {
		case errors.As(err, &malformed):
			logger.Error("malformed problem", zap.String("field", malformed.Field), zap.String("reason", malformed.Reason))
		case errors.As(err, &anomaly):
			logger.Error("numeric anomaly", zap.String("reason", anomaly.Reason))
		default:
			logger.Error("solve failed", zap.Error(err))
		}
		return err
	}

	encoded, err := sonic.Marshal(result)
	if err != nil {
		logger.Error("encode result", zap.Error(err))
		return err
	}
	if _, err := fmt.Fprintln(out, string(encoded)); err != nil {
		return err
	}

	logger.Debug("solved", zap.String("status", result.Status))
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
