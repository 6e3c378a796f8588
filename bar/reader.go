package bar

import "io"

// Reader advances a bar as bytes flow through it. Closing the reader
// finishes the bar and closes the source when the source is a closer.
type Reader struct {
	r io.Reader
	b *Bar
}

func NewReader(r io.Reader, b *Bar) *Reader {
	return &Reader{r: r, b: b}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.b.Add(int64(n))
	return n, err
}

func (r *Reader) Close() error {
	r.b.Finish()
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
