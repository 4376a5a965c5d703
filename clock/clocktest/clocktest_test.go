package clocktest

import (
	"testing"
	"time"
)

func TestNewFromDurations(t *testing.T) {
	c := NewFromDurations(0, time.Second, 3*time.Second)

	want := []time.Duration{0, time.Second, 3 * time.Second, 3 * time.Second}
	for i, w := range want {
		if got := c.Now().Sub(Epoch); got != w {
			t.Fatalf("call %d: got %v, want %v", i, got, w)
		}
	}
}

func TestManual(t *testing.T) {
	m := NewManual()
	start := m.Now()
	m.Advance(250 * time.Millisecond)

	if got := m.Now().Sub(start); got != 250*time.Millisecond {
		t.Fatalf("got %v, want 250ms", got)
	}
}
