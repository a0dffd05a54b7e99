// Package keypad4x4 drives a 4x4 matrix membrane keypad: rows are driven
// outputs (active low), columns are inputs with pull-ups. The scanner
// debounces internally and latches one event per completed press, so a
// caller polling it never sees press/release chatter as multiple events.
package keypad4x4

import (
	"time"

	"luxlogger-go/types"
)

// RowPin drives one keypad row.
type RowPin interface {
	Set(high bool)
}

// ColPin senses one keypad column (pulled up, low when pressed).
type ColPin interface {
	Get() bool
}

// DefaultKeymap is the common 4x4 membrane layout.
var DefaultKeymap = [4][4]types.Key{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

type Config struct {
	// Debounce is how long a raw key must stay stable before it is
	// accepted. Default 20 ms.
	Debounce time.Duration
	// Keymap overrides DefaultKeymap when non-nil.
	Keymap *[4][4]types.Key
}

type Device struct {
	rows [4]RowPin
	cols [4]ColPin
	keys [4][4]types.Key

	debounce time.Duration
	now      func() time.Time // test seam

	lastRaw  types.Key
	rawSince time.Time
	latched  bool

	pending    types.Key
	hasPending bool
}

// New creates a scanner over the given pins. Pin direction/pull setup is the
// wiring code's job.
func New(rows [4]RowPin, cols [4]ColPin) *Device {
	d := &Device{
		rows:     rows,
		cols:     cols,
		keys:     DefaultKeymap,
		debounce: 20 * time.Millisecond,
		now:      time.Now,
	}
	for _, r := range d.rows {
		r.Set(true)
	}
	return d
}

// Configure applies optional settings.
func (d *Device) Configure(cfg Config) {
	if cfg.Debounce > 0 {
		d.debounce = cfg.Debounce
	}
	if cfg.Keymap != nil {
		d.keys = *cfg.Keymap
	}
}

// Poll scans the matrix once and returns the most recently completed press
// since the last Poll, if any. A held key is reported exactly once; the next
// event requires a release first.
func (d *Device) Poll() (types.Key, bool) {
	raw := d.scan()
	now := d.now()

	switch {
	case raw != d.lastRaw:
		d.lastRaw = raw
		d.rawSince = now
	case raw == types.KeyNone:
		d.latched = false
	case !d.latched && now.Sub(d.rawSince) >= d.debounce:
		d.latched = true
		d.pending = raw
		d.hasPending = true
	}

	if d.hasPending {
		d.hasPending = false
		return d.pending, true
	}
	return types.KeyNone, false
}

// scan returns the first pressed key found, or KeyNone. Simultaneous
// presses resolve to the lowest row/column; the UI has no chord semantics.
func (d *Device) scan() types.Key {
	var found types.Key
	for r := 0; r < 4; r++ {
		d.rows[r].Set(false)
		for c := 0; c < 4; c++ {
			if !d.cols[c].Get() && found == types.KeyNone {
				found = d.keys[r][c]
			}
		}
		d.rows[r].Set(true)
	}
	return found
}
