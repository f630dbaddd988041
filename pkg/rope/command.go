package rope

import "fmt"

// Direction is one of the four unit moves the head accepts.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionVectors = [...]Point{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var directionTokens = [...]string{
	Up:    "U",
	Down:  "D",
	Left:  "L",
	Right: "R",
}

// Directions lists every valid direction in declaration order.
func Directions() []Direction { return []Direction{Up, Down, Left, Right} }

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool { return int(d) < len(directionVectors) }

// Vector returns the unit offset for d. Unknown values map to the zero vector.
func (d Direction) Vector() Point {
	if int(d) >= len(directionVectors) {
		return Point{}
	}
	return directionVectors[d]
}

// String returns the single-letter token used in command streams.
func (d Direction) String() string {
	if int(d) >= len(directionTokens) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionTokens[d]
}

// ParseDirection maps a "U", "D", "L" or "R" token to its Direction.
func ParseDirection(token string) (Direction, error) {
	for d, t := range directionTokens {
		if t == token {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, token)
}

// Command moves the head Count times in Dir, one cell per elementary step.
type Command struct {
	Dir   Direction
	Count int
}

func (c Command) String() string { return fmt.Sprintf("%s %d", c.Dir, c.Count) }
