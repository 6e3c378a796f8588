package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetPadsOverPreviousFrame(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Set("abcdef", 6, 0)
	require.Equal(t, cursorHide+syncBegin+cursorBOL+"abcdef"+syncEnd, buf.String())

	buf.Reset()
	l.Set("xy", 2, 6)
	require.Equal(t, syncBegin+cursorBOL+"xy"+"    "+syncEnd, buf.String())

	// a frame at least as wide as its predecessor needs no padding
	buf.Reset()
	l.Set("xyz", 3, 3)
	require.Equal(t, syncBegin+cursorBOL+"xyz"+syncEnd, buf.String())
}

func TestRepaint(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	// nothing drawn yet, nothing to repaint
	l.Repaint()
	require.Empty(t, buf.String())

	l.Set("frame", 5, 0)
	buf.Reset()
	l.Repaint()
	require.Equal(t, syncBegin+cursorBOL+"frame"+syncEnd, buf.String())
}

func TestStop(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Set("done", 4, 0)
	buf.Reset()
	l.Stop()
	require.Equal(t, "\n"+cursorShow, buf.String())

	// stopping again must not emit another newline
	buf.Reset()
	l.Stop()
	require.Equal(t, cursorShow, buf.String())
}

func TestStopAndClear(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Set("wip", 3, 0)
	buf.Reset()
	l.StopAndClear()
	require.Equal(t, eraseLine+cursorBOL+cursorShow, buf.String())
	require.False(t, strings.Contains(buf.String(), "\n"))
}

func TestStopWithoutFrames(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Stop()
	require.Equal(t, cursorShow, buf.String())
}
