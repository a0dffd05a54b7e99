package sampler

import (
	"context"
	"time"

	"luxlogger-go/bus"
	"luxlogger-go/errcode"
	"luxlogger-go/mailbox"
	"luxlogger-go/services/config"
	"luxlogger-go/types"
	"luxlogger-go/x/timex"
)

var (
	topicConfig = bus.Topic{"config", "sampler"}
	topicLight  = bus.Topic{"sensor", "light"}
	topicState  = bus.Topic{"sampler", "state"}
)

// Service periodically reads the light sensor and hands the latest value to
// the UI task through the mailbox. The mailbox is the only state shared with
// the UI; the bus copies are retained telemetry for diagnostics.
type Service struct {
	sensor types.LightSensor
	mbox   *mailbox.Mailbox[float32]
	every  time.Duration
}

func New(sensor types.LightSensor, mbox *mailbox.Mailbox[float32]) *Service {
	return &Service{sensor: sensor, mbox: mbox, every: 500 * time.Millisecond}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(s.every)
	defer tick.Stop()

	s.publishState(conn, "up", "sampling", nil)

	for {
		select {
		case <-ctx.Done():
			s.publishState(conn, "idle", "stopped", nil)
			return
		case <-tick.C:
			s.sample(conn)
		case msg := <-cfgSub.Channel():
			if ms, ok := config.IntervalMS(msg.Payload, "interval_ms"); ok {
				s.every = time.Duration(ms) * time.Millisecond
				tick.Reset(s.every)
				println("Info: sampler interval set to", ms, "ms")
			}
		}
	}
}

func (s *Service) sample(conn *bus.Connection) {
	lux, err := s.sensor.ReadLux()
	if err != nil {
		// One bad conversion degrades telemetry; the next tick retries.
		s.publishState(conn, "degraded", string(errcode.Of(err)), err)
		return
	}
	s.mbox.Publish(lux)
	conn.Publish(conn.NewMessage(topicLight,
		types.LightReading{Lux: lux, TSMs: timex.NowMs()}, true))
}

func (s *Service) publishState(conn *bus.Connection, level, status string, err error) {
	st := types.ServiceState{Level: level, Status: status, TSMs: timex.NowMs()}
	if err != nil {
		st.Error = err.Error()
	}
	conn.Publish(conn.NewMessage(topicState, st, true))
}

// Start launches the sampling loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
