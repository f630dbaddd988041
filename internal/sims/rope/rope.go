// Package rope adapts the knot-chain simulator to the steppable core.Sim
// contract so it can be animated one elementary step at a time.
package rope

import (
	"knot-chain/internal/core"
	pkgcore "knot-chain/pkg/core"
	"knot-chain/pkg/rope"
)

// Cell values written to the viewport.
const (
	CellEmpty uint8 = iota
	CellVisited
	CellKnot
	CellTail
	CellHead
)

// World plays a command stream on a chain and rasterizes it into a viewport
// centered on the origin.
type World struct {
	cfg  Config
	name string

	sim  *rope.Simulator
	grid *core.ByteGrid

	fixed     []rope.Command
	cmds      []rope.Command
	cmdIdx    int
	remaining int
}

// NewWithConfig returns a World that plays a random stream seeded from cfg.
func NewWithConfig(cfg Config) (*World, error) {
	return newWorld(cfg, nil)
}

// NewWithCommands returns a World that plays cmds instead of a random stream.
func NewWithCommands(cfg Config, cmds []rope.Command) (*World, error) {
	return newWorld(cfg, append([]rope.Command{}, cmds...))
}

func newWorld(cfg Config, fixed []rope.Command) (*World, error) {
	sim, err := rope.New(cfg.Knots)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:   cfg,
		name:  "rope",
		sim:   sim,
		grid:  core.NewByteGrid(cfg.Width, cfg.Height),
		fixed: fixed,
	}
	w.Reset(0)
	return w, nil
}

// Replay switches the world to an explicit stream and rewinds it.
func (w *World) Replay(cmds []rope.Command) {
	w.fixed = append([]rope.Command{}, cmds...)
	w.Reset(0)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size returns the viewport dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the viewport buffer.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Simulator exposes the underlying chain simulator.
func (w *World) Simulator() *rope.Simulator { return w.sim }

// Done reports whether the whole stream has been played.
func (w *World) Done() bool {
	w.skipEmpty()
	return w.cmdIdx >= len(w.cmds)
}

// Reset rewinds the chain. A zero seed reuses the configured seed; any other
// seed regenerates the random stream. Explicit streams are replayed as-is.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.cfg.Seed = seed
	}
	w.cmds = w.fixed
	if w.cmds == nil {
		w.cmds = rope.RandomCommands(pkgcore.NewRNG(w.cfg.Seed), w.cfg.Commands, w.cfg.MaxStep)
	}
	w.cmdIdx = 0
	w.remaining = 0
	if len(w.cmds) > 0 {
		w.remaining = w.cmds[0].Count
	}
	w.sim.Reset()
	w.redraw()
}

// Step plays one elementary step. It does nothing once the stream is exhausted.
func (w *World) Step() {
	if w.Done() {
		return
	}
	w.sim.Step(w.cmds[w.cmdIdx].Dir)
	w.remaining--
	w.redraw()
}

// skipEmpty advances past finished and zero-count commands. Negative counts are
// treated like zero here since the viewer has no error channel.
func (w *World) skipEmpty() {
	for w.cmdIdx < len(w.cmds) && w.remaining <= 0 {
		w.cmdIdx++
		if w.cmdIdx < len(w.cmds) {
			w.remaining = w.cmds[w.cmdIdx].Count
		}
	}
}

func (w *World) redraw() {
	w.grid.Clear()
	w.sim.Visited().Each(func(p rope.Point) {
		w.grid.Plot(p.X, p.Y, CellVisited)
	})
	chain := w.sim.Chain()
	for i := chain.Len() - 1; i >= 0; i-- {
		v := CellKnot
		switch i {
		case 0:
			v = CellHead
		case chain.Len() - 1:
			v = CellTail
		}
		p := chain.Knot(i)
		w.grid.Plot(p.X, p.Y, v)
	}
}

func init() {
	core.Register("rope", func(cfg map[string]string) core.Sim {
		return mustWorld(FromMap(cfg), "rope")
	})
	core.Register("rope2", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		if _, ok := cfg["knots"]; !ok {
			c.Knots = 2
		}
		return mustWorld(c, "rope2")
	})
}

// mustWorld builds a World from a FromMap config, which never yields fewer
// than one knot.
func mustWorld(cfg Config, name string) *World {
	w, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	w.name = name
	return w
}
