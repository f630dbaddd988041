package rope

import "strconv"

// Config controls the viewport and the command stream the rope sim plays.
type Config struct {
	Width  int
	Height int

	Knots int
	Seed  int64

	// Commands and MaxStep shape the random stream used when no explicit
	// stream is supplied.
	Commands int
	MaxStep  int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    128,
		Height:   128,
		Knots:    10,
		Seed:     1337,
		Commands: 400,
		MaxStep:  20,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("w", &c.Width)
	positive("h", &c.Height)
	positive("knots", &c.Knots)
	positive("commands", &c.Commands)
	positive("max_step", &c.MaxStep)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
