package main

import (
	"github.com/spf13/cobra"

	"knot-chain/pkg/core"
	"knot-chain/pkg/rope"
)

var (
	randomSeed    int64
	randomCount   int
	randomMaxStep int
)

// randomCmd prints a reproducible command stream
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a deterministic random command stream",
	Long: `Writes a stream in the format "rope run" reads. The same seed always
produces the same stream.

Example:
  rope random --seed 7 --count 2000 | rope run -k 2 -k 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmds := rope.RandomCommands(core.NewRNG(randomSeed), randomCount, randomMaxStep)
		return rope.EncodeCommands(cmd.OutOrStdout(), cmds)
	},
}

func init() {
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 1337, "stream seed")
	randomCmd.Flags().IntVar(&randomCount, "count", 2000, "number of commands")
	randomCmd.Flags().IntVar(&randomMaxStep, "max-step", 20, "largest count per command")
}
