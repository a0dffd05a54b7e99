package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgPicoLogger = `{
  "heartbeat": {
      "interval_ms": 1000
  },
  "sampler": {
      "interval_ms": 500
  },
  "ui": {
      "dwell_ms": 1500
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico-logger": []byte(cfgPicoLogger),
	"sim-logger":  []byte(cfgPicoLogger),
}
