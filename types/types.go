package types

// Key is one debounced keypad event: '0'..'9', 'A'..'D', '*' or '#'.
type Key byte

const (
	KeyNone Key = 0
	KeyStar Key = '*'
	KeyHash Key = '#'
	KeyA    Key = 'A'
	KeyB    Key = 'B'
	KeyC    Key = 'C'
	KeyD    Key = 'D'
)

// IsDigit reports whether k is '0'..'9'.
func (k Key) IsDigit() bool { return k >= '0' && k <= '9' }

// Digit returns the numeric value of a digit key; 0 for anything else.
func (k Key) Digit() uint8 {
	if !k.IsDigit() {
		return 0
	}
	return uint8(k - '0')
}

// DateTime is a broken-down wall-clock reading. Field ranges: Year 0..2099,
// Month 1..12, Day 1..31, Hour 0..23, Minute 0..59, Second 0..59. No
// calendar validation beyond the ranges (day 31 in a 30-day month passes).
type DateTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// Plausible reports whether every field is inside its range. An RTC that was
// never set typically reports an out-of-range seconds value; callers use
// this at start-up to decide whether to program a fallback time.
func (d DateTime) Plausible() bool {
	return d.Year <= 2099 &&
		d.Month >= 1 && d.Month <= 12 &&
		d.Day >= 1 && d.Day <= 31 &&
		d.Hour <= 23 && d.Minute <= 59 && d.Second <= 59
}

// -----------------------------------------------------------------------------
// Bus payloads
// -----------------------------------------------------------------------------

// LightReading is the retained payload on "sensor"/"light".
type LightReading struct {
	Lux  float32
	TSMs int64
}

// ServiceState is the retained payload on "<service>"/"state".
type ServiceState struct {
	Level  string // "up", "degraded", "error", "idle"
	Status string // short machine string
	TSMs   int64
	Error  string
}

// UIState is the retained payload on "ui"/"mode".
type UIState struct {
	Mode string
	TSMs int64
}

// StoreState is the retained payload on "store"/"state".
type StoreState struct {
	Count   uint16
	MaxLogs uint16
	TSMs    int64
}
