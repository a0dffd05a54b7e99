package keypad4x4

import (
	"testing"
	"time"

	"luxlogger-go/types"
)

// fakeMatrix emulates the electrical matrix: pressing a key pulls its
// column low while its row is driven low.
type fakeMatrix struct {
	rowLow  [4]bool
	pressed map[[2]int]bool // {row, col}
}

type fakeRow struct {
	m *fakeMatrix
	n int
}

func (r *fakeRow) Set(high bool) { r.m.rowLow[r.n] = !high }

type fakeCol struct {
	m *fakeMatrix
	n int
}

func (c *fakeCol) Get() bool {
	for r := 0; r < 4; r++ {
		if c.m.rowLow[r] && c.m.pressed[[2]int{r, c.n}] {
			return false
		}
	}
	return true
}

func newFakeKeypad() (*Device, *fakeMatrix, *time.Time) {
	m := &fakeMatrix{pressed: map[[2]int]bool{}}
	var rows [4]RowPin
	var cols [4]ColPin
	for i := 0; i < 4; i++ {
		rows[i] = &fakeRow{m: m, n: i}
		cols[i] = &fakeCol{m: m, n: i}
	}
	d := New(rows, cols)
	clock := time.Unix(0, 0)
	d.now = func() time.Time { return clock }
	return d, m, &clock
}

func poll(t *testing.T, d *Device) (types.Key, bool) {
	t.Helper()
	return d.Poll()
}

func TestPoll_NoKeys(t *testing.T) {
	d, _, _ := newFakeKeypad()
	if k, ok := poll(t, d); ok {
		t.Fatalf("idle keypad reported %q", k)
	}
}

func TestPoll_DebouncedSinglePress(t *testing.T) {
	d, m, clock := newFakeKeypad()

	m.pressed[[2]int{1, 2}] = true // '6'
	if _, ok := poll(t, d); ok {
		t.Fatal("key accepted before debounce interval")
	}

	*clock = clock.Add(25 * time.Millisecond)
	k, ok := poll(t, d)
	if !ok || k != '6' {
		t.Fatalf("poll = (%q, %v), want ('6', true)", k, ok)
	}

	// Held key is reported exactly once.
	*clock = clock.Add(500 * time.Millisecond)
	if k, ok := poll(t, d); ok {
		t.Fatalf("held key repeated as %q", k)
	}
}

func TestPoll_ChatterCollapsesToOneEvent(t *testing.T) {
	d, m, clock := newFakeKeypad()
	key := [2]int{3, 0} // '*'

	// Contact bounce: alternating make/break faster than the debounce.
	for i := 0; i < 6; i++ {
		m.pressed[key] = i%2 == 0
		*clock = clock.Add(2 * time.Millisecond)
		if k, ok := poll(t, d); ok {
			t.Fatalf("bounce emitted %q", k)
		}
	}

	// Settled press.
	m.pressed[key] = true
	*clock = clock.Add(2 * time.Millisecond)
	poll(t, d) // observes the stable level, starts the debounce window
	*clock = clock.Add(25 * time.Millisecond)
	k, ok := poll(t, d)
	if !ok || k != types.KeyStar {
		t.Fatalf("poll = (%q, %v), want ('*', true)", k, ok)
	}
}

func TestPoll_ReleaseThenNextPress(t *testing.T) {
	d, m, clock := newFakeKeypad()

	press := func(r, c int, want types.Key) {
		t.Helper()
		m.pressed = map[[2]int]bool{{r, c}: true}
		*clock = clock.Add(time.Millisecond)
		poll(t, d)
		*clock = clock.Add(25 * time.Millisecond)
		k, ok := poll(t, d)
		if !ok || k != want {
			t.Fatalf("press(%d,%d) = (%q, %v), want %q", r, c, k, ok, want)
		}
		// Release and let the scanner settle.
		m.pressed = map[[2]int]bool{}
		*clock = clock.Add(time.Millisecond)
		poll(t, d)
		*clock = clock.Add(time.Millisecond)
		poll(t, d)
	}

	press(0, 3, types.KeyA)
	press(3, 2, types.KeyHash)
	press(0, 0, '1')
}

func TestPoll_EventLatchedUntilPolled(t *testing.T) {
	d, m, clock := newFakeKeypad()

	m.pressed[[2]int{2, 1}] = true // '8'
	poll(t, d)
	*clock = clock.Add(25 * time.Millisecond)

	// The completed press is consumed by the next poll even if the key was
	// already released by then.
	m.pressed = map[[2]int]bool{}
	// Scanner saw the stable press before release only if it polled; emulate
	// the UI being busy by pressing long enough to be observed.
	m.pressed[[2]int{2, 1}] = true
	k, ok := poll(t, d)
	if !ok || k != '8' {
		t.Fatalf("poll = (%q, %v), want ('8', true)", k, ok)
	}
}
