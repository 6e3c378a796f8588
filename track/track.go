// Package track drives a bar over ordinary Go iteration. Each wrapper
// reports the count of already-yielded elements before handing out the
// next one, never reads ahead, and finishes the bar when the underlying
// source is exhausted. A loop that breaks early releases the line as-is.
package track

import (
	"iter"

	"github.com/pacebar/pace/bar"
)

// Seq wraps a sequence of unknown length. The bar pulses until the
// sequence ends, then adopts the final count as its total.
func Seq[V any](seq iter.Seq[V], b *bar.Bar) iter.Seq[V] {
	return func(yield func(V) bool) {
		var n int64
		for v := range seq {
			b.Set(n)
			if !yield(v) {
				b.Stop()
				return
			}
			n++
		}
		b.Set(n)
		b.Finish()
	}
}

// Slice wraps a slice, reporting against its length.
func Slice[S ~[]V, V any](s S, b *bar.Bar) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		b.SetTotal(int64(len(s)))
		for i, v := range s {
			b.Set(int64(i))
			if !yield(i, v) {
				b.Stop()
				return
			}
		}
		b.Finish()
	}
}

// Range counts from 0 through n-1, the counted-loop form.
func Range(n int64, b *bar.Bar) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		b.SetTotal(n)
		for i := int64(0); i < n; i++ {
			b.Set(i)
			if !yield(i) {
				b.Stop()
				return
			}
		}
		b.Finish()
	}
}

// Chan drains a channel, pulsing until the sender closes it.
func Chan[V any](ch <-chan V, b *bar.Bar) iter.Seq[V] {
	return func(yield func(V) bool) {
		var n int64
		for v := range ch {
			b.Set(n)
			if !yield(v) {
				b.Stop()
				return
			}
			n++
		}
		b.Set(n)
		b.Finish()
	}
}
