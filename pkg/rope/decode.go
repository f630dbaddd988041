package rope

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineError ties a decoding failure to its 1-based input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// ParseCommand decodes a single "<U|D|L|R> <count>" line.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	dir, err := ParseDirection(fields[0])
	if err != nil {
		return Command{}, err
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return Command{}, fmt.Errorf("%w %q: %v", ErrBadCount, fields[1], err)
	}
	return Command{Dir: dir, Count: count}, nil
}

// DecodeCommands reads one command per line from r. Blank lines are skipped.
func DecodeCommands(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cmd, err := ParseCommand(text)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	return cmds, nil
}

// RunReader decodes a command stream from r and runs it on a fresh chain of n
// knots, returning the number of distinct tail cells.
func RunReader(r io.Reader, n int, opts ...Option) (int, error) {
	cmds, err := DecodeCommands(r)
	if err != nil {
		return 0, err
	}
	return PositionsVisited(cmds, n, opts...)
}

// EncodeCommands writes cmds in the format DecodeCommands reads.
func EncodeCommands(w io.Writer, cmds []Command) error {
	bw := bufio.NewWriter(w)
	for _, cmd := range cmds {
		if _, err := fmt.Fprintln(bw, cmd); err != nil {
			return err
		}
	}
	return bw.Flush()
}
