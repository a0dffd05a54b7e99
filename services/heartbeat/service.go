package heartbeat

import (
	"context"
	"io"
	"time"

	"luxlogger-go/bus"
	"luxlogger-go/services/config"
	"luxlogger-go/types"
	"luxlogger-go/x/conv"
	"luxlogger-go/x/timex"
)

var (
	topicConfig = bus.Topic{"config", "heartbeat"}
	topicState  = bus.Topic{"heartbeat", "state"}
)

// Service emits a periodic time heartbeat to the diagnostic sink. Pure side
// effect; nothing in the core depends on it.
type Service struct {
	clock types.Clock
	every time.Duration

	// Sink receives the heartbeat line in addition to the console. Optional;
	// set from platform bootstrap (e.g. a UART writer).
	Sink io.Writer
}

func New(clock types.Clock) *Service {
	return &Service{clock: clock, every: time.Second}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(s.every)
	defer tick.Stop()

	conn.Publish(conn.NewMessage(topicState,
		types.ServiceState{Level: "up", Status: "running", TSMs: timex.NowMs()}, true))

	for {
		select {
		case <-ctx.Done():
			println("Info: heartbeat service stopping")
			conn.Publish(conn.NewMessage(topicState,
				types.ServiceState{Level: "idle", Status: "stopped", TSMs: timex.NowMs()}, true))
			return
		case <-tick.C:
			s.beat()
		case msg := <-cfgSub.Channel():
			if ms, ok := config.IntervalMS(msg.Payload, "interval_ms"); ok {
				s.every = time.Duration(ms) * time.Millisecond
				tick.Reset(s.every)
				println("Info: heartbeat interval set to", ms, "ms")
			}
		}
	}
}

func (s *Service) beat() {
	now, err := s.clock.Now()
	if err != nil {
		println("Warn: heartbeat: clock read failed:", err.Error())
		return
	}
	line := formatBeat(now)
	println("Info:", line)
	if s.Sink != nil {
		_, _ = s.Sink.Write(append([]byte(line), '\r', '\n'))
	}
}

// formatBeat renders "HH:MM:SS heartbeat" without fmt.
func formatBeat(d types.DateTime) string {
	buf := make([]byte, 0, 24)
	buf = conv.AppendPad(buf, uint64(d.Hour), 2)
	buf = append(buf, ':')
	buf = conv.AppendPad(buf, uint64(d.Minute), 2)
	buf = append(buf, ':')
	buf = conv.AppendPad(buf, uint64(d.Second), 2)
	buf = append(buf, " heartbeat"...)
	return string(buf)
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
