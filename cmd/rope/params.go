package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"knot-chain/internal/core"
)

var (
	paramsSim string
	paramsSet []string
)

// paramsCmd prints the parameter snapshot of a registered sim
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Show the parameters of a registered rope sim",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		factory, err := core.Lookup(paramsSim)
		if err != nil {
			return err
		}
		overrides, err := parseOverrides(paramsSet)
		if err != nil {
			return err
		}
		provider, ok := factory(overrides).(core.ParameterProvider)
		if !ok {
			return fmt.Errorf("sim %q has no parameters", paramsSim)
		}
		out := cmd.OutOrStdout()
		for _, g := range provider.Parameters().Groups {
			fmt.Fprintf(out, "%s:\n", g.Name)
			for _, p := range g.Params {
				fmt.Fprintf(out, "  %-12s %s\n", p.Key, p.Value)
			}
		}
		return nil
	},
}

func init() {
	paramsCmd.Flags().StringVar(&paramsSim, "sim", "rope", "registered sim name")
	paramsCmd.Flags().StringArrayVar(&paramsSet, "set", nil, "parameter override in key=value form (repeatable)")
}

func parseOverrides(kvs []string) (map[string]string, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}
