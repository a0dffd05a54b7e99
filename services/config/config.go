package config

import (
	"context"
	"errors"

	"luxlogger-go/bus"

	"github.com/andreyvit/tinyjson"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key used for device ID
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

// Service publishes the device's embedded JSON configuration as one retained
// message per top-level key on "config/<key>". Services subscribe to their
// own key and re-tune cadences at runtime.
type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// publishConfig reads the device config from embedded data and publishes it
// as retained messages.
func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errors.New("missing device ID in context")
	}

	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return errors.New("no embedded config for device: " + device)
	}

	r := tinyjson.Raw(raw)
	val := r.Value() // should be a map[string]any
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return errors.New("embedded config is not a JSON object")
	}

	for k, v := range m {
		conn.Publish(&bus.Message{
			Topic:    bus.T(configPrefix, k),
			Payload:  v,
			Retained: true,
		})
	}

	return nil
}

// Start launches the config publisher in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("Error: config:", err.Error())
		}
	}()
}

// IntervalMS extracts a millisecond duration field from a decoded config
// payload (tinyjson yields float64 numbers). Returns (0, false) when absent
// or not a number.
func IntervalMS(payload any, field string) (int64, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}
	f, ok := m[field].(float64)
	if !ok || f <= 0 {
		return 0, false
	}
	return int64(f), true
}
