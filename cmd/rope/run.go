package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"knot-chain/internal/batch"
	"knot-chain/pkg/rope"
)

var (
	runKnots   []int
	runWorkers int
	runChecked bool
	runFormat  string
)

// runCmd simulates a command stream for every requested chain length
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Simulate a command stream and print the visited cell counts",
	Long: `Reads one "<U|D|L|R> <count>" command per line from the file (or stdin when
the file is omitted or "-") and prints, for every chain length, the number of
distinct cells the tail visited.

Example:
  rope run -k 2 -k 10 moves.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulation,
}

func init() {
	runCmd.Flags().IntSliceVarP(&runKnots, "knots", "k", nil, "chain length (repeatable; overrides config)")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "concurrent runs (overrides config)")
	runCmd.Flags().BoolVar(&runChecked, "checked", false, "verify the adjacency invariant after every step")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "text", "output format: text, json or yaml")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	input := cfg.Input
	if len(args) == 1 {
		input = args[0]
	}
	if len(runKnots) > 0 {
		cfg.Knots = runKnots
	}
	if runWorkers > 0 {
		cfg.Workers = runWorkers
	}
	if runChecked {
		cfg.Checked = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cmds, err := readCommands(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	logger.Info("Decoded commands", zap.String("input", input), zap.Int("commands", len(cmds)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := batch.Run(ctx, cmds, cfg.Knots, batch.Options{
		Workers:         cfg.Workers,
		VisitedCapacity: cfg.VisitedCapacity,
		Checked:         cfg.Checked,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	return writeResults(cmd.OutOrStdout(), runFormat, results)
}

func readCommands(stdin io.Reader, path string) ([]rope.Command, error) {
	if path == "" || path == "-" {
		return rope.DecodeCommands(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	cmds, err := rope.DecodeCommands(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmds, nil
}

func writeResults(w io.Writer, format string, results []batch.Result) error {
	switch format {
	case "text":
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "knots=%d visited=%d\n", r.Knots, r.Visited); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
