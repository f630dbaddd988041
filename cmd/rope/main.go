package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"knot-chain/internal/config"
	"knot-chain/internal/logging"
	_ "knot-chain/internal/sims/rope"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rope",
	Short: "Count the cells visited by the tail of a knot chain",
	Long: `rope drives a chain of knots with a stream of "<U|D|L|R> <count>" moves.
The head moves one cell per elementary step and every other knot follows its
predecessor so that neighbours always touch. The result is the number of
distinct cells the last knot ever occupied.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "rope.yaml", "path to YAML config (missing file means defaults)")

	rootCmd.AddCommand(runCmd, randomCmd, paramsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
