// services/ui/modes.go
package ui

import (
	"context"

	"luxlogger-go/logstore"
	"luxlogger-go/types"
)

// editDateTime walks the six clock fields in fixed order, seeding each from
// the current reading. The composed date/time is written to the clock in one
// adjustment after the last commit. Day-of-month is not checked against the
// month length; day 31 in a 30-day month passes through uncorrected.
func (s *Service) editDateTime(ctx context.Context) {
	seed, err := s.clock.Now()
	if err != nil {
		println("Warn: ui: clock read failed:", err.Error())
		s.showStatus(ctx, "Clock error", "")
		return
	}

	vals := [6]uint16{
		uint16(seed.Second),
		uint16(seed.Minute),
		uint16(seed.Hour),
		uint16(seed.Day),
		uint16(seed.Month),
		seed.Year,
	}

	for i := range dtFields {
		e := fieldEntry{spec: dtFields[i], acc: vals[i]}
		s.renderFieldEdit(e.spec.name, e.acc)
		for {
			k, ok := s.nextKey(ctx)
			if !ok {
				return
			}
			if e.Key(k) {
				vals[i] = e.Value()
				break
			}
			s.renderFieldEdit(e.spec.name, e.acc)
		}
	}

	set := types.DateTime{
		Year:   vals[5],
		Month:  uint8(vals[4]),
		Day:    uint8(vals[3]),
		Hour:   uint8(vals[2]),
		Minute: uint8(vals[1]),
		Second: uint8(vals[0]),
	}
	if err := s.clock.Set(set); err != nil {
		println("Warn: ui: clock set failed:", err.Error())
		s.showStatus(ctx, "Clock error", "")
		return
	}
	s.showStatus(ctx, "Time set", "")
}

// editLabel collects up to LabelLen characters, then records the currently
// displayed light value with the clock reading under that label.
func (s *Service) editLabel(ctx context.Context) {
	var e labelEntry
	s.renderLabelEdit(e.Text())
	for {
		k, ok := s.nextKey(ctx)
		if !ok {
			return
		}
		if e.Key(k) {
			break
		}
		s.renderLabelEdit(e.Text())
	}

	// A failed clock read yields the zero time; the observation is still
	// worth keeping.
	now, _ := s.clock.Now()
	rec := logstore.Record{Time: now, Lux: s.lux, Label: e.Padded()}

	switch err := s.store.Append(rec); err {
	case nil:
		s.publishStoreState()
		s.showStatus(ctx, "Log saved", s.slotLine())
	case logstore.ErrFull:
		s.showStatus(ctx, "Log full!", "C clears the log")
	default:
		println("Error: ui: append failed:", err.Error())
		s.showStatus(ctx, "Write error", "")
	}
}

// confirmClear waits for '#' (confirm) or '*' (cancel); every other key is
// ignored and the wait continues.
func (s *Service) confirmClear(ctx context.Context) {
	s.writeLine(0, "Clear all logs?")
	s.writeLine(1, "#=yes      *=no")
	for {
		k, ok := s.nextKey(ctx)
		if !ok {
			return
		}
		switch k {
		case types.KeyHash:
			if err := s.store.Clear(); err != nil {
				println("Error: ui: clear failed:", err.Error())
				s.showStatus(ctx, "Write error", "")
				return
			}
			s.publishStoreState()
			s.showStatus(ctx, "Log cleared", "")
			return
		case types.KeyStar:
			s.showStatus(ctx, "Cancelled", "")
			return
		}
	}
}

// viewLastLog shows the newest record on two timed screens. No key is needed
// to advance; this is the one sub-mode with no keypad interaction.
func (s *Service) viewLastLog(ctx context.Context) {
	rec, err := s.store.ReadLast()
	if err == logstore.ErrEmpty {
		s.showStatus(ctx, "No logs yet", "")
		return
	}
	if err != nil {
		println("Error: ui: read failed:", err.Error())
		s.showStatus(ctx, "Read error", "")
		return
	}

	s.writeLine(0, "Last log:")
	s.writeLine(1, rec.LabelString())
	if !s.pause(ctx, s.cfg.Dwell) {
		return
	}

	s.disp.Clear()
	s.writeLine(0, luxLine(rec.Lux))
	s.writeLine(1, dateTimeLine(rec.Time))
	s.pause(ctx, s.cfg.Dwell)
}

// showStatus holds a status screen for the dwell time, then returns.
func (s *Service) showStatus(ctx context.Context, line1, line2 string) {
	s.disp.Clear()
	s.writeLine(0, line1)
	s.writeLine(1, line2)
	s.pause(ctx, s.cfg.Dwell)
}
