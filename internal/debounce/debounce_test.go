package debounce

import (
	"sync"
	"testing"
	"time"
)

// collector records delivered values for assertions.
type collector struct {
	mu     sync.Mutex
	values []string
}

func (c *collector) add(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, v)
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.values...)
}

func TestDebouncer_RapidSetsDeliverOnlyLastValue(t *testing.T) {
	t.Parallel()

	var got collector
	d := New(30*time.Millisecond, got.add)
	t.Cleanup(d.Stop)

	d.Set("s")
	d.Set("sh")
	d.Set("shi")
	d.Set("shirt")

	deadline := time.Now().Add(2 * time.Second)
	for {
		if vals := got.snapshot(); len(vals) > 0 {
			if len(vals) != 1 || vals[0] != "shirt" {
				t.Fatalf("delivered %v, want exactly [shirt]", vals)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("debounced value never delivered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// No further deliveries should trickle in.
	time.Sleep(80 * time.Millisecond)
	if vals := got.snapshot(); len(vals) != 1 {
		t.Fatalf("delivered %v after settling, want exactly one value", vals)
	}
}

func TestDebouncer_SeparatedSetsEachDeliver(t *testing.T) {
	t.Parallel()

	var got collector
	d := New(20*time.Millisecond, got.add)
	t.Cleanup(d.Stop)

	d.Set("first")
	time.Sleep(100 * time.Millisecond)
	d.Set("second")
	time.Sleep(100 * time.Millisecond)

	vals := got.snapshot()
	if len(vals) != 2 || vals[0] != "first" || vals[1] != "second" {
		t.Fatalf("delivered %v, want [first second]", vals)
	}
}

func TestDebouncer_StopCancelsPendingDelivery(t *testing.T) {
	t.Parallel()

	var got collector
	d := New(30*time.Millisecond, got.add)

	d.Set("doomed")
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if vals := got.snapshot(); len(vals) != 0 {
		t.Fatalf("delivered %v after Stop, want none", vals)
	}

	// Set after Stop stays silent too.
	d.Set("still doomed")
	time.Sleep(100 * time.Millisecond)
	if vals := got.snapshot(); len(vals) != 0 {
		t.Fatalf("delivered %v after Stop+Set, want none", vals)
	}
}

func TestDebouncer_ZeroDelayUsesDefault(t *testing.T) {
	d := New[string](0, func(string) {})
	t.Cleanup(d.Stop)
	if d.delay != DefaultDelay {
		t.Fatalf("delay = %v, want %v", d.delay, DefaultDelay)
	}
}
