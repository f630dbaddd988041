package rope

// DefaultVisitedCapacity sizes the visited set for typical puzzle-sized inputs.
// It is only an allocation hint.
const DefaultVisitedCapacity = 2000

// Visited is the set of cells the tail has occupied. It only grows.
type Visited struct {
	cells map[Point]struct{}
}

// NewVisited returns a set that already contains the origin.
func NewVisited(capacity int) *Visited {
	if capacity < 1 {
		capacity = 1
	}
	v := &Visited{cells: make(map[Point]struct{}, capacity)}
	v.Insert(Origin)
	return v
}

// Insert records p. Inserting a known cell is a no-op.
func (v *Visited) Insert(p Point) { v.cells[p] = struct{}{} }

// Contains reports whether p has been recorded.
func (v *Visited) Contains(p Point) bool {
	_, ok := v.cells[p]
	return ok
}

// Len returns the number of distinct recorded cells.
func (v *Visited) Len() int { return len(v.cells) }

// Each calls fn for every recorded cell in unspecified order.
func (v *Visited) Each(fn func(Point)) {
	for p := range v.cells {
		fn(p)
	}
}
