package rope

import "errors"

var (
	// ErrInvalidLength is returned when a chain is requested with fewer than one knot.
	ErrInvalidLength = errors.New("rope: chain length must be at least 1")
	// ErrNegativeCount is returned when a command asks for a negative number of steps.
	ErrNegativeCount = errors.New("rope: negative command count")
	// ErrInvariant is returned by a checked simulator when adjacent knots drift apart.
	ErrInvariant = errors.New("rope: adjacent knots more than one cell apart")

	// ErrBadDirection reports an unknown direction token.
	ErrBadDirection = errors.New("rope: unknown direction")
	// ErrBadCount reports a count that is not a decimal integer.
	ErrBadCount = errors.New("rope: invalid count")
	// ErrMalformedLine reports a line that is not "<dir> <count>".
	ErrMalformedLine = errors.New("rope: malformed command line")
)
