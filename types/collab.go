package types

// Collaborator interfaces consumed by the core. Each is a narrow synchronous
// wrapper around one device; implementations live in cmd/ wiring or fakes.

// Clock is the time source. Now must tolerate being called before Set and
// return whatever the device reports, plausible or not.
type Clock interface {
	Now() (DateTime, error)
	Set(DateTime) error
}

// Display is a two-row character display addressed by (row, column).
type Display interface {
	Clear()
	WriteAt(row, col uint8, text string)
}

// Keypad yields at most one debounced, completed key press per Poll. The
// implementation absorbs contact chatter; semantic pacing between accepted
// keys is the caller's business.
type Keypad interface {
	Poll() (Key, bool)
}

// LightSensor returns an already-converted light level in lux.
type LightSensor interface {
	ReadLux() (float32, error)
}
