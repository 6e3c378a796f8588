package track

import (
	"bytes"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pacebar/pace/bar"
)

func testBar(t *testing.T, total int64, w io.Writer) *bar.Bar {
	t.Helper()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b, err := bar.New(total,
		bar.WithColor(false),
		bar.WithWriter(w),
		bar.WithClock(func() time.Time {
			clock = clock.Add(10 * time.Millisecond)
			return clock
		}))
	require.NoError(t, err)
	return b
}

func TestRange(t *testing.T) {
	b := testBar(t, -1, io.Discard)

	var got []int64
	first := true
	for v := range Range(5, b) {
		if first {
			// the count is reported before the element is handed out
			require.Contains(t, b.String(), " 0/5")
			first = false
		}
		got = append(got, v)
	}

	require.Equal(t, []int64{0, 1, 2, 3, 4}, got)
	require.Contains(t, b.String(), "100%")
	require.Contains(t, b.String(), "5/5")
}

func TestSlice(t *testing.T) {
	b := testBar(t, -1, io.Discard)

	words := []string{"alpha", "beta", "gamma"}
	var gotIdx []int
	var gotVals []string
	for i, v := range Slice(words, b) {
		gotIdx = append(gotIdx, i)
		gotVals = append(gotVals, v)
	}

	require.Equal(t, []int{0, 1, 2}, gotIdx)
	require.Equal(t, words, gotVals)
	require.Contains(t, b.String(), "3/3")
}

func TestSeqUnknownLength(t *testing.T) {
	b := testBar(t, -1, io.Discard)

	src := slices.Values([]string{"a", "b", "c"})
	got := slices.Collect(Seq(src, b))

	require.Equal(t, []string{"a", "b", "c"}, got)
	require.Contains(t, b.String(), "100%")
	require.Contains(t, b.String(), "3/3")
}

func TestEarlyBreakReleasesLine(t *testing.T) {
	var buf bytes.Buffer
	b := testBar(t, -1, &buf)

	var got []int64
	for v := range Range(5, b) {
		if v == 2 {
			break
		}
		got = append(got, v)
	}

	require.Equal(t, []int64{0, 1}, got)
	require.NotContains(t, b.String(), "100%")
	require.Contains(t, buf.String(), "\n")
}

func TestChan(t *testing.T) {
	b := testBar(t, -1, io.Discard)

	ch := make(chan int, 4)
	for _, v := range []int{7, 8, 9} {
		ch <- v
	}
	close(ch)

	var got []int
	for v := range Chan(ch, b) {
		got = append(got, v)
	}

	require.Equal(t, []int{7, 8, 9}, got)
	require.Contains(t, b.String(), "3/3")
}
