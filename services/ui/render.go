// services/ui/render.go
package ui

import (
	"luxlogger-go/types"
	"luxlogger-go/x/conv"
)

// Two rows of 16 characters; the only geometry the core assumes.
const displayCols = 16

// writeLine writes text at the start of a row, space-padded to the full row
// so stale characters never survive a shorter redraw.
func (s *Service) writeLine(row uint8, text string) {
	b := make([]byte, 0, displayCols)
	b = append(b, text...)
	if len(b) > displayCols {
		b = b[:displayCols]
	}
	for len(b) < displayCols {
		b = append(b, ' ')
	}
	s.disp.WriteAt(row, 0, string(b))
}

// renderMain draws the idle screen: current light level and clock time.
func (s *Service) renderMain() {
	if s.haveLux {
		s.writeLine(0, luxLine(s.lux))
	} else {
		s.writeLine(0, "Lux: ---")
	}

	now, err := s.clock.Now()
	if err != nil {
		s.writeLine(1, "--:--:--")
		return
	}
	s.writeLine(1, dateTimeLine(now))
}

func (s *Service) renderFieldEdit(name string, acc uint16) {
	b := make([]byte, 0, displayCols)
	b = append(b, "Set "...)
	b = append(b, name...)
	s.writeLine(0, string(b))

	b = b[:0]
	b = conv.AppendUint(b, uint64(acc))
	b = append(b, "  *=0 #=ok"...)
	s.writeLine(1, string(b))
}

func (s *Service) renderLabelEdit(text []byte) {
	s.writeLine(0, "Label: *del #ok")
	s.writeLine(1, string(text))
}

// slotLine renders "n/N" after a successful append.
func (s *Service) slotLine() string {
	b := make([]byte, 0, 12)
	b = conv.AppendUint(b, uint64(s.store.Count()))
	b = append(b, '/')
	b = conv.AppendUint(b, uint64(s.store.MaxLogs()))
	return string(b)
}

// luxLine renders the light level in tenths, e.g. "Lux: 123.4".
func luxLine(lux float32) string {
	b := make([]byte, 0, displayCols)
	b = append(b, "Lux: "...)
	b = conv.AppendDeci(b, deciLux(lux))
	return string(b)
}

// dateTimeLine renders "MM-DD HH:MM:SS" (the year shows in the date editor).
func dateTimeLine(d types.DateTime) string {
	b := make([]byte, 0, displayCols)
	b = conv.AppendPad(b, uint64(d.Month), 2)
	b = append(b, '-')
	b = conv.AppendPad(b, uint64(d.Day), 2)
	b = append(b, ' ')
	b = conv.AppendPad(b, uint64(d.Hour), 2)
	b = append(b, ':')
	b = conv.AppendPad(b, uint64(d.Minute), 2)
	b = append(b, ':')
	b = conv.AppendPad(b, uint64(d.Second), 2)
	return string(b)
}

// deciLux rounds lux to tenths as a fixed-point int32.
func deciLux(lux float32) int32 {
	if lux < 0 {
		return -int32(-lux*10 + 0.5)
	}
	return int32(lux*10 + 0.5)
}
