package meter

import "github.com/emirpasic/gods/v2/lists/arraylist"

// sample is one accepted report: how long the interval between reports
// lasted and how many units arrived during it.
type sample struct {
	seconds float64
	count   int64
}

// window is a bounded FIFO of rate samples. Capacity is adjustable at
// runtime; the meter widens it once warm-up completes. Pushing onto a full
// window evicts the oldest sample first.
type window struct {
	list  *arraylist.List[sample]
	limit int
}

func newWindow(limit int) *window {
	return &window{list: arraylist.New[sample](), limit: limit}
}

func (w *window) push(s sample) {
	for w.list.Size() >= w.limit {
		w.list.Remove(0)
	}
	w.list.Add(s)
}

func (w *window) setLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	w.limit = limit
	for w.list.Size() > w.limit {
		w.list.Remove(0)
	}
}

func (w *window) len() int {
	return w.list.Size()
}

func (w *window) at(i int) sample {
	s, _ := w.list.Get(i)
	return s
}

func (w *window) reset() {
	w.list.Clear()
}
