package rope

// Follow returns the new position of a knot at f whose predecessor sits at
// pred. A knot that still touches its predecessor stays put; otherwise it moves
// one cell toward it on each axis independently, which covers both straight and
// diagonal pulls.
func Follow(pred, f Point) Point {
	if pred.Chebyshev(f) <= 1 {
		return f
	}
	d := pred.Sub(f)
	return Point{X: f.X + sign(d.X), Y: f.Y + sign(d.Y)}
}
