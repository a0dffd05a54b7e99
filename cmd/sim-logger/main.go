// cmd/sim-logger/main.go
//
// Host-side simulator: the full service stack over a RAM store, a drifting
// fake light sensor, the system clock and a line-oriented console. Type keys
// ('0'-'9', A-D, '*', '#') followed by Enter; each character is delivered to
// the keypad in order.
package main

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"luxlogger-go/bus"
	"luxlogger-go/logstore"
	"luxlogger-go/mailbox"
	"luxlogger-go/services/config"
	"luxlogger-go/services/heartbeat"
	"luxlogger-go/services/sampler"
	"luxlogger-go/services/ui"
	"luxlogger-go/types"
)

const regionSize = 4096 // matches the AT24C32 on the real board

// sysClock is the host clock plus a settable offset, so the date editor works
// without touching the machine's time.
type sysClock struct {
	mu     sync.Mutex
	offset time.Duration
}

func (c *sysClock) Now() (types.DateTime, error) {
	c.mu.Lock()
	t := time.Now().Add(c.offset)
	c.mu.Unlock()
	return types.DateTime{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
		Second: uint8(t.Second()),
	}, nil
}

func (c *sysClock) Set(d types.DateTime) error {
	target := time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), 0, time.Local)
	c.mu.Lock()
	c.offset = time.Until(target)
	c.mu.Unlock()
	return nil
}

// consoleDisplay mimics the 16x2 module on stdout, reprinting both rows on
// every change.
type consoleDisplay struct {
	mu   sync.Mutex
	rows [2]string
}

func (d *consoleDisplay) Clear() {
	d.mu.Lock()
	d.rows = [2]string{"", ""}
	d.mu.Unlock()
}

func (d *consoleDisplay) WriteAt(row, col uint8, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if row > 1 || col != 0 {
		return
	}
	if d.rows[row] == text {
		return
	}
	d.rows[row] = text
	println("[lcd] |" + pad16(d.rows[0]) + "|")
	println("[lcd] |" + pad16(d.rows[1]) + "|")
}

func pad16(s string) string {
	for len(s) < 16 {
		s += " "
	}
	return s[:16]
}

// stdinKeypad feeds console characters to the UI one per poll.
type stdinKeypad struct {
	ch chan types.Key
}

func newStdinKeypad() *stdinKeypad {
	k := &stdinKeypad{ch: make(chan types.Key, 64)}
	go k.readLoop()
	return k
}

func (k *stdinKeypad) readLoop() {
	r := bufio.NewReader(os.Stdin)
	for {
		c, err := r.ReadByte()
		if err != nil {
			return
		}
		if c == '\n' || c == '\r' {
			continue
		}
		if c >= 'a' && c <= 'd' {
			c -= 'a' - 'A'
		}
		key := types.Key(c)
		if !key.IsDigit() && key != types.KeyStar && key != types.KeyHash &&
			!(key >= types.KeyA && key <= types.KeyD) {
			println("[sim] ignoring key:", string(c))
			continue
		}
		select {
		case k.ch <- key:
		default:
			// Pasting faster than the UI drains; drop the overflow.
		}
	}
}

func (k *stdinKeypad) Poll() (types.Key, bool) {
	select {
	case key := <-k.ch:
		return key, true
	default:
		return types.KeyNone, false
	}
}

// driftSensor walks a triangle wave between dim and bright so the main screen
// visibly updates.
type driftSensor struct {
	lux  float32
	step float32
}

func (s *driftSensor) ReadLux() (float32, error) {
	s.lux += s.step
	if s.lux > 900 {
		s.lux, s.step = 900, -s.step
	}
	if s.lux < 40 {
		s.lux, s.step = 40, -s.step
	}
	return s.lux, nil
}

func main() {
	println("Info: sim-logger boot")

	store, err := logstore.Open(logstore.NewMemRegion(regionSize))
	if err != nil {
		println("Fatal: log store open failed:", err.Error())
		os.Exit(1)
	}
	println("Info: log store ready,", store.Count(), "of", store.MaxLogs(), "slots used")

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, "sim-logger")
	b := bus.NewBus(4)

	config.NewService().Start(ctx, b.NewConnection("config"))

	clock := &sysClock{}
	mbox := mailbox.New[float32]()
	_ = sampler.New(&driftSensor{lux: 120, step: 7.5}, mbox).Start(ctx, b.NewConnection("sampler"))
	_ = heartbeat.New(clock).Start(ctx, b.NewConnection("heartbeat"))

	disp := &consoleDisplay{}
	keys := newStdinKeypad()
	ui.New(ui.Config{}, store, mbox, keys, disp, clock).Run(ctx, b.NewConnection("ui"))
}
