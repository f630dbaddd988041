package rope

import "fmt"

// Chain is an ordered run of knots; index 0 is the head and the last index is
// the tail. Only a Simulator mutates it.
type Chain struct {
	knots []Point
}

// NewChain returns n knots stacked on the origin.
func NewChain(n int) (*Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	return &Chain{knots: make([]Point, n)}, nil
}

// Len returns the number of knots.
func (c *Chain) Len() int { return len(c.knots) }

// Head returns knot 0.
func (c *Chain) Head() Point { return c.knots[0] }

// Tail returns the last knot. For a single-knot chain this is the head.
func (c *Chain) Tail() Point { return c.knots[len(c.knots)-1] }

// Knot returns knot i.
func (c *Chain) Knot(i int) Point { return c.knots[i] }

// Knots returns a copy of every knot position, head first.
func (c *Chain) Knots() []Point { return append([]Point(nil), c.knots...) }

// Valid reports whether every adjacent pair is within one cell. It returns the
// index of the first offending follower when it is not.
func (c *Chain) Valid() (int, bool) {
	for i := 1; i < len(c.knots); i++ {
		if c.knots[i-1].Chebyshev(c.knots[i]) > 1 {
			return i, false
		}
	}
	return 0, true
}

func (c *Chain) moveHead(d Direction) {
	c.knots[0] = c.knots[0].Add(d.Vector())
}

// propagate pulls every follower after the head moved. It stops at the first
// knot that does not move and reports whether the pull reached the tail; once
// a knot stays put nothing behind it can move either.
func (c *Chain) propagate() bool {
	for i := 1; i < len(c.knots); i++ {
		next := Follow(c.knots[i-1], c.knots[i])
		if next == c.knots[i] {
			return false
		}
		c.knots[i] = next
	}
	return true
}

// propagateAll pulls every follower without stopping early.
func (c *Chain) propagateAll() {
	for i := 1; i < len(c.knots); i++ {
		c.knots[i] = Follow(c.knots[i-1], c.knots[i])
	}
}

func (c *Chain) reset() {
	clear(c.knots)
}
