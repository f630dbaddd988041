package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"knot-chain/internal/core"
	simsrope "knot-chain/internal/sims/rope"
	"knot-chain/pkg/rope"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Scale   int
	SPS     int
	Seed    int64
	Input   string
	Set     []string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "rope", Scale: 5, SPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "elementary steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random command stream")
	fs.StringVarP(&c.Input, "input", "i", c.Input, "command file to replay instead of a random stream")
	fs.StringArrayVar(&c.Set, "set", c.Set, "sim parameter override in key=value form (repeatable)")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logging")
}

// Overrides turns the repeated --set flags into a sim config map.
func (c *Config) Overrides() (map[string]string, error) {
	out := make(map[string]string, len(c.Set)+1)
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[key] = value
	}
	if _, ok := out["seed"]; !ok {
		out["seed"] = fmt.Sprint(c.Seed)
	}
	return out, nil
}

// BuildSim constructs the configured sim and, when an input file is given,
// switches it to replay that stream.
func BuildSim(c *Config) (core.Sim, error) {
	factory, err := core.Lookup(c.Sim)
	if err != nil {
		return nil, err
	}
	overrides, err := c.Overrides()
	if err != nil {
		return nil, err
	}
	sim := factory(overrides)
	if c.Input == "" {
		return sim, nil
	}

	world, ok := sim.(*simsrope.World)
	if !ok {
		return nil, fmt.Errorf("sim %q cannot replay command files", c.Sim)
	}
	f, err := os.Open(c.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	cmds, err := rope.DecodeCommands(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Input, err)
	}
	world.Replay(cmds)
	return world, nil
}
