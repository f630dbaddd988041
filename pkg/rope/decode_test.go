package rope

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr error
	}{
		{line: "U 4", want: Command{Dir: Up, Count: 4}},
		{line: "D 1", want: Command{Dir: Down, Count: 1}},
		{line: "L 0", want: Command{Dir: Left, Count: 0}},
		{line: "  R 17  ", want: Command{Dir: Right, Count: 17}},
		{line: "X 3", wantErr: ErrBadDirection},
		{line: "u 3", wantErr: ErrBadDirection},
		{line: "R three", wantErr: ErrBadCount},
		{line: "R", wantErr: ErrMalformedLine},
		{line: "R 1 2", wantErr: ErrMalformedLine},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCommandsSkipsBlankLines(t *testing.T) {
	cmds, err := DecodeCommands(strings.NewReader("R 4\n\n  \nU 2\n"))
	require.NoError(t, err)
	want := []Command{{Dir: Right, Count: 4}, {Dir: Up, Count: 2}}
	if diff := cmp.Diff(want, cmds); diff != "" {
		t.Fatalf("decoded commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCommandsReportsLine(t *testing.T) {
	_, err := DecodeCommands(strings.NewReader("R 4\nU 2\nQ 1\n"))
	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 3, lineErr.Line)
	assert.ErrorIs(t, err, ErrBadDirection)
}

func TestEncodeCommandsRoundTrip(t *testing.T) {
	cmds := mustDecode(t, largeStream)
	var buf bytes.Buffer
	require.NoError(t, EncodeCommands(&buf, cmds))
	assert.Equal(t, largeStream, buf.String())
}

func TestDirectionVectors(t *testing.T) {
	assert.Equal(t, Point{0, 1}, Up.Vector())
	assert.Equal(t, Point{0, -1}, Down.Vector())
	assert.Equal(t, Point{-1, 0}, Left.Vector())
	assert.Equal(t, Point{1, 0}, Right.Vector())
	assert.Equal(t, Point{}, Direction(9).Vector())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestRunReader(t *testing.T) {
	n, err := RunReader(strings.NewReader(largeStream), 10)
	require.NoError(t, err)
	assert.Equal(t, 36, n)

	n, err = RunReader(strings.NewReader(smallStream), 2, WithNaive())
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	_, err = RunReader(strings.NewReader("R 1\nW 2\n"), 2)
	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)

	_, err = RunReader(strings.NewReader(smallStream), 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}
