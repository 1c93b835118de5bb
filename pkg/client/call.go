package client

import (
	"github.com/google/uuid"

	"github.com/beanbocchi/courier/pkg/response"
)

// Call is the handle for one dispatched request. Every Call resolves to
// exactly one terminal outcome: a decoded JSON object or an error. Uploads
// additionally publish progress fractions before the terminal outcome.
type Call struct {
	id       uuid.UUID
	progress chan float64
	done     chan struct{}

	// Written once before done is closed.
	result   response.Object
	err      error
	checksum string
}

func newCall() *Call {
	return &Call{
		id:       uuid.New(),
		progress: make(chan float64, 1),
		done:     make(chan struct{}),
	}
}

// ID is the request id attached to this call's log lines.
func (c *Call) ID() uuid.UUID {
	return c.id
}

// Done is closed once the call has reached its terminal outcome.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Progress yields upload fractions in [0,1]. Intermediate values may be
// dropped when the consumer lags, but the values received never decrease and
// the final 1.0 is always delivered. The channel is closed at the terminal
// outcome; for non-upload calls it closes without ever yielding.
func (c *Call) Progress() <-chan float64 {
	return c.progress
}

// Result blocks until the call is terminal and returns its outcome.
func (c *Call) Result() (response.Object, error) {
	<-c.done
	return c.result, c.err
}

// Checksum blocks until the call is terminal and returns the hex BLAKE3 hash
// of the uploaded file. Empty for non-upload calls and for uploads that
// failed before the file was fully streamed.
func (c *Call) Checksum() string {
	<-c.done
	return c.checksum
}

func (c *Call) finish(result response.Object, err error) {
	c.result = result
	c.err = err
	close(c.progress)
	close(c.done)
}

// publish conflates: a slow consumer sees the latest fraction, not every
// tick. The publisher is a single goroutine, so after draining one stale
// value the retry send cannot fail.
func (c *Call) publish(fraction float64) {
	select {
	case c.progress <- fraction:
	default:
		select {
		case <-c.progress:
		default:
		}
		select {
		case c.progress <- fraction:
		default:
		}
	}
}

// Callbacks is the callback-triple shape of the facade. Any field may be nil.
type Callbacks struct {
	OnSuccess  func(result response.Object)
	OnProgress func(fraction float64)
	OnError    func(err error)
}

// Notify delivers this call's outcome through callbacks: zero or more
// OnProgress invocations followed by exactly one of OnSuccess or OnError.
// If the call is already terminal (an invalid URL fails before dispatch),
// the terminal callback runs synchronously on the caller's goroutine;
// otherwise delivery happens on a separate goroutine.
func (c *Call) Notify(cb Callbacks) {
	deliver := func() {
		if c.err != nil {
			if cb.OnError != nil {
				cb.OnError(c.err)
			}
			return
		}
		if cb.OnSuccess != nil {
			cb.OnSuccess(c.result)
		}
	}

	select {
	case <-c.done:
		deliver()
		return
	default:
	}

	go func() {
		for fraction := range c.progress {
			if cb.OnProgress != nil {
				cb.OnProgress(fraction)
			}
		}
		<-c.done
		deliver()
	}()
}
