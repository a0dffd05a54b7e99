// services/ui/entry.go
package ui

import (
	"luxlogger-go/logstore"
	"luxlogger-go/types"
	"luxlogger-go/x/mathx"
)

// -----------------------------------------------------------------------------
// Numeric field entry
//
// A tiny state machine nested inside EditDateTime: one decimal accumulator
// per field, saturating at the field maximum the moment it is exceeded.
// -----------------------------------------------------------------------------

type fieldSpec struct {
	name string
	min  uint16
	max  uint16
}

// Edited in this fixed order; each field commits with '#' before the next
// one starts.
var dtFields = [6]fieldSpec{
	{"Second", 0, 59},
	{"Minute", 0, 59},
	{"Hour", 0, 23},
	{"Day", 1, 31},
	{"Month", 1, 12},
	{"Year", 0, 2099},
}

type fieldEntry struct {
	spec fieldSpec
	acc  uint16
}

// Key feeds one keypad event. Digits shift-and-add with an immediate
// saturating clamp (no rejection), '*' resets the accumulator, '#' commits.
// Everything else is ignored. Returns true once the field is committed.
func (e *fieldEntry) Key(k types.Key) bool {
	switch {
	case k.IsDigit():
		e.acc = mathx.Clamp(e.acc*10+uint16(k.Digit()), 0, e.spec.max)
	case k == types.KeyStar:
		e.acc = 0
	case k == types.KeyHash:
		// Floor-clamp on commit keeps day/month inside their 1-based range.
		e.acc = mathx.Clamp(e.acc, e.spec.min, e.spec.max)
		return true
	}
	return false
}

func (e *fieldEntry) Value() uint16 { return e.acc }

// -----------------------------------------------------------------------------
// Label entry
// -----------------------------------------------------------------------------

type labelEntry struct {
	buf [logstore.LabelLen]byte
	n   int
}

// Key feeds one keypad event. Digits, uppercase letters and space append;
// '*' deletes the last character; '#' ends entry at any length. Other keys
// are dropped. Returns true when entry is finished ('#', or the buffer is
// full).
func (l *labelEntry) Key(k types.Key) bool {
	switch {
	case k == types.KeyHash:
		return true
	case k == types.KeyStar:
		if l.n > 0 {
			l.n--
		}
	case isLabelChar(byte(k)):
		l.buf[l.n] = byte(k)
		l.n++
		if l.n == logstore.LabelLen {
			return true
		}
	}
	return false
}

func (l *labelEntry) Text() []byte { return l.buf[:l.n] }

// Padded returns the buffer space-padded to the full label width.
func (l *labelEntry) Padded() [logstore.LabelLen]byte {
	out := l.buf
	for i := l.n; i < logstore.LabelLen; i++ {
		out[i] = ' '
	}
	return out
}

func isLabelChar(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'A' && b <= 'Z' || b == ' '
}
