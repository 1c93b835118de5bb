package progressr

import (
	"io"
	"sync/atomic"
)

// Reader counts bytes as they are read and reports the completed fraction.
// The counter is atomic so Progress may be polled from another goroutine
// while a transport goroutine is reading.
type Reader struct {
	io.Reader
	total   int64
	current atomic.Int64
	onTick  func(fraction float64)
}

func NewReader(reader io.Reader, total int64) *Reader {
	return &Reader{
		Reader: reader,
		total:  total,
	}
}

// OnTick registers a callback fired after every successful read with the
// current fraction. Must be set before the first Read.
func (p *Reader) OnTick(fn func(fraction float64)) {
	p.onTick = fn
}

func (p *Reader) Read(b []byte) (int, error) {
	n, err := p.Reader.Read(b)
	if n > 0 {
		p.current.Add(int64(n))
		if p.onTick != nil {
			p.onTick(p.Progress())
		}
	}
	return n, err
}

func (p *Reader) Progress() float64 {
	if p.total <= 0 {
		return 0
	}
	f := float64(p.current.Load()) / float64(p.total)
	if f > 1 {
		return 1
	}
	return f
}
