// services/ui/service.go
package ui

import (
	"context"
	"time"

	"luxlogger-go/bus"
	"luxlogger-go/logstore"
	"luxlogger-go/mailbox"
	"luxlogger-go/services/config"
	"luxlogger-go/types"
	"luxlogger-go/x/timex"
)

// Mode is the active UI state. Exactly one mode is active at a time; the
// display and keypad belong to whichever mode is running.
type Mode uint8

const (
	ModeMain Mode = iota
	ModeEditDateTime
	ModeEditLabel
	ModeConfirmClear
	ModeViewLastLog
)

func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "main"
	case ModeEditDateTime:
		return "edit_datetime"
	case ModeEditLabel:
		return "edit_label"
	case ModeConfirmClear:
		return "confirm_clear"
	case ModeViewLastLog:
		return "view_last_log"
	}
	return "unknown"
}

var (
	topicConfig     = bus.Topic{"config", "ui"}
	topicMode       = bus.Topic{"ui", "mode"}
	topicStoreState = bus.Topic{"store", "state"}
)

// Config holds the cadences. The functional behaviour depends only on the
// ratios, so tests compress them freely.
type Config struct {
	CycleEvery time.Duration // main screen render/poll cycle (~100 ms)
	PollEvery  time.Duration // sub-mode key polling (~50 ms)
	KeyPace    time.Duration // pause after an accepted key (~120 ms)
	Dwell      time.Duration // status and view screens hold (~1.5 s)
}

func (c *Config) setDefaults() {
	if c.CycleEvery <= 0 {
		c.CycleEvery = 100 * time.Millisecond
	}
	if c.PollEvery <= 0 {
		c.PollEvery = 50 * time.Millisecond
	}
	if c.KeyPace <= 0 {
		c.KeyPace = 120 * time.Millisecond
	}
	if c.Dwell <= 0 {
		c.Dwell = 1500 * time.Millisecond
	}
}

// Service is the modal UI task. It is the sole owner of the display, the
// keypad and the log store; the sampler reaches it only through the mailbox.
type Service struct {
	cfg   Config
	store *logstore.Store
	mbox  *mailbox.Mailbox[float32]
	keys  types.Keypad
	disp  types.Display
	clock types.Clock
	conn  *bus.Connection

	mode    Mode
	lux     float32
	haveLux bool
}

func New(cfg Config, store *logstore.Store, mbox *mailbox.Mailbox[float32],
	keys types.Keypad, disp types.Display, clock types.Clock) *Service {
	cfg.setDefaults()
	return &Service{
		cfg:   cfg,
		store: store,
		mbox:  mbox,
		keys:  keys,
		disp:  disp,
		clock: clock,
	}
}

// Start launches the UI loop in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.Run(ctx, conn)
	return nil
}

// Run blocks in the main screen loop until ctx is cancelled. Each cycle it
// drains the mailbox, renders the light value and time, and polls the
// keypad; A/B/C/D enter a sub-mode which runs to completion before control
// returns here. Sub-modes are not interruptible by other mode keys.
func (s *Service) Run(ctx context.Context, conn *bus.Connection) {
	s.conn = conn

	var cfgCh <-chan *bus.Message
	if conn != nil {
		cfgSub := conn.Subscribe(topicConfig)
		defer conn.Unsubscribe(cfgSub)
		cfgCh = cfgSub.Channel()
	}

	s.disp.Clear()
	s.setMode(ModeMain)
	s.publishStoreState()

	tick := time.NewTicker(s.cfg.CycleEvery)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: ui service stopping")
			return
		case msg := <-cfgCh:
			if ms, ok := config.IntervalMS(msg.Payload, "dwell_ms"); ok {
				s.cfg.Dwell = time.Duration(ms) * time.Millisecond
			}
		case <-tick.C:
			if v, ok := s.mbox.TryTake(); ok {
				s.lux = v
				s.haveLux = true
			}
			s.renderMain()

			k, ok := s.keys.Poll()
			if !ok {
				continue
			}
			switch k {
			case types.KeyA:
				s.runSubMode(ctx, ModeEditDateTime, s.editDateTime)
			case types.KeyB:
				s.runSubMode(ctx, ModeEditLabel, s.editLabel)
			case types.KeyC:
				s.runSubMode(ctx, ModeConfirmClear, s.confirmClear)
			case types.KeyD:
				s.runSubMode(ctx, ModeViewLastLog, s.viewLastLog)
			default:
				// Any other key is ignored in Main.
			}
		}
	}
}

// runSubMode hands the keypad and display to fn until it returns, then
// restores the main screen. Sub-modes always come back here.
func (s *Service) runSubMode(ctx context.Context, m Mode, fn func(context.Context)) {
	s.setMode(m)
	s.disp.Clear()
	fn(ctx)
	s.setMode(ModeMain)
	s.disp.Clear()
	s.renderMain()
}

func (s *Service) setMode(m Mode) {
	s.mode = m
	if s.conn != nil {
		s.conn.Publish(s.conn.NewMessage(topicMode,
			types.UIState{Mode: m.String(), TSMs: timex.NowMs()}, true))
	}
}

func (s *Service) publishStoreState() {
	if s.conn == nil {
		return
	}
	s.conn.Publish(s.conn.NewMessage(topicStoreState,
		types.StoreState{Count: s.store.Count(), MaxLogs: s.store.MaxLogs(), TSMs: timex.NowMs()}, true))
}

// nextKey polls the keypad at the sub-mode cadence until a key arrives or
// ctx is cancelled. An accepted key is followed by a short pacing pause so
// a slow release is not read as a second intent.
func (s *Service) nextKey(ctx context.Context) (types.Key, bool) {
	tick := time.NewTicker(s.cfg.PollEvery)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return types.KeyNone, false
		case <-tick.C:
			if k, ok := s.keys.Poll(); ok {
				s.pause(ctx, s.cfg.KeyPace)
				return k, true
			}
		}
	}
}

// pause sleeps for d, returning early (false) on cancellation.
func (s *Service) pause(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
