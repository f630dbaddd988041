//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"knot-chain/internal/core"
	"knot-chain/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation, advancing it sps
// elementary steps per second.
func New(sim core.Sim, scale int, sps int) *Game {
	palette := render.DefaultPalette
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		palette: palette,
		pacer:   core.NewFixedStep(sps),
		scale:   scale,
	}
}

// Reset reinitializes the simulation state. A zero seed rewinds the current
// stream; any other seed starts a new one.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pacer.SetRate(g.pacer.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.pacer.Rate() > 1 {
		g.pacer.SetRate(g.pacer.Rate() / 2)
	}

	due := g.pacer.Due(time.Now())
	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for range due {
			g.sim.Step()
		}
	}
	return nil
}

// Draw renders the current simulation state and a one-line status.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) status() string {
	provider, ok := g.sim.(core.ParameterProvider)
	if !ok {
		return g.sim.Name()
	}
	snap := provider.Parameters()
	value := func(key string) string {
		p, _ := snap.Lookup(key)
		return p.Value
	}
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s knots=%s steps=%s visited=%s sps=%d %s",
		g.sim.Name(), value("knots"), value("steps"), value("visited"), g.pacer.Rate(), state)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
