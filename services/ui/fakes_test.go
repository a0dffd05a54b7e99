package ui

import (
	"sync"

	"luxlogger-go/types"
)

// scriptKeypad replays a fixed key sequence, one key per poll.
type scriptKeypad struct {
	mu   sync.Mutex
	keys []types.Key
}

func (k *scriptKeypad) push(keys ...types.Key) {
	k.mu.Lock()
	k.keys = append(k.keys, keys...)
	k.mu.Unlock()
}

func (k *scriptKeypad) Poll() (types.Key, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.keys) == 0 {
		return types.KeyNone, false
	}
	key := k.keys[0]
	k.keys = k.keys[1:]
	return key, true
}

// memDisplay records every line ever written, newest last.
type memDisplay struct {
	mu    sync.Mutex
	rows  [2]string
	lines []string
}

func (d *memDisplay) Clear() {
	d.mu.Lock()
	d.rows = [2]string{"", ""}
	d.mu.Unlock()
}

func (d *memDisplay) WriteAt(row, col uint8, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row < 2 && col == 0 {
		d.rows[row] = text
	}
	d.lines = append(d.lines, text)
}

func (d *memDisplay) sawLine(prefix string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, l := range d.lines {
		if len(l) >= len(prefix) && l[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func (d *memDisplay) row(n int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rows[n]
}

// fakeClock is a settable clock with an injectable failure.
type fakeClock struct {
	mu      sync.Mutex
	now     types.DateTime
	nowErr  error
	setTo   types.DateTime
	setDone bool
}

func (c *fakeClock) Now() (types.DateTime, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now, c.nowErr
}

func (c *fakeClock) Set(d types.DateTime) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setTo = d
	c.setDone = true
	c.now = d
	return nil
}

func (c *fakeClock) lastSet() (types.DateTime, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setTo, c.setDone
}
