// Package rope simulates a chain of knots on the integer plane. The head is
// driven by unit-step commands and every other knot follows its predecessor so
// that adjacent knots never drift more than one cell apart (Chebyshev metric).
package rope

import "fmt"

// Point is a cell on the unbounded integer plane. Coordinates are plain ints;
// callers must keep command streams small enough that no coordinate leaves the
// int range during a run.
type Point struct {
	X, Y int
}

// Origin is the starting cell of every knot.
var Origin = Point{}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the per-axis difference p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Chebyshev returns max(|dx|, |dy|) between p and q.
func (p Point) Chebyshev(q Point) int {
	d := p.Sub(q)
	return max(abs(d.X), abs(d.Y))
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
