package progressr

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestReaderProgress(t *testing.T) {
	data := strings.Repeat("x", 100)
	r := NewReader(strings.NewReader(data), int64(len(data)))

	buf := make([]byte, 25)
	if _, err := r.Read(buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := r.Progress(); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}

	if _, err := io.Copy(io.Discard, r); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got := r.Progress(); got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
}

func TestReaderOnTick(t *testing.T) {
	data := bytes.Repeat([]byte("y"), 64)
	r := NewReader(bytes.NewReader(data), int64(len(data)))

	var ticks []float64
	r.OnTick(func(f float64) { ticks = append(ticks, f) })

	buf := make([]byte, 16)
	for {
		if _, err := r.Read(buf); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("read: %v", err)
		}
	}

	if len(ticks) == 0 {
		t.Fatal("expected at least one tick")
	}
	prev := 0.0
	for i, f := range ticks {
		if f < prev {
			t.Errorf("tick %d decreased: %v < %v", i, f, prev)
		}
		if f < 0 || f > 1 {
			t.Errorf("tick %d out of range: %v", i, f)
		}
		prev = f
	}
	if last := ticks[len(ticks)-1]; last != 1.0 {
		t.Errorf("expected final tick 1.0, got %v", last)
	}
}

func TestReaderZeroTotal(t *testing.T) {
	r := NewReader(strings.NewReader("abc"), 0)
	if _, err := io.Copy(io.Discard, r); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got := r.Progress(); got != 0 {
		t.Errorf("expected 0 for unknown total, got %v", got)
	}
}
