package rope

import "image/color"

var ropePalette = []color.RGBA{
	CellEmpty:   {R: 16, G: 16, B: 24, A: 255},
	CellVisited: {R: 60, G: 90, B: 140, A: 255},
	CellKnot:    {R: 220, G: 200, B: 120, A: 255},
	CellTail:    {R: 255, G: 120, B: 60, A: 255},
	CellHead:    {R: 255, G: 255, B: 255, A: 255},
}

// Palette exposes the colors used for rendering the viewport.
func (w *World) Palette() []color.RGBA {
	return ropePalette
}
