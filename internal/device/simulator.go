package device

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/gocube"
	"github.com/SeamusWaldron/cubetrainer/internal/logging"
)

// Simulator is a Source fed from code or the keyboard. Moves are encoded
// into GoCube frames and decoded again, so they take the same path as
// notifications from hardware.
type Simulator struct {
	frames chan []byte
	now    func() time.Time
	logger *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithClock sets the time source used to stamp events.
func WithClock(now func() time.Time) SimulatorOption {
	return func(s *Simulator) { s.now = now }
}

// NewSimulator returns a simulator with room for a burst of queued moves.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		frames: make(chan []byte, 64),
		now:    time.Now,
		logger: logging.New("simulator"),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Name() string { return "simulator" }

// Send queues outer-layer quarter turns. Half turns are sent as two
// quarters, the way the cube reports them.
func (s *Simulator) Send(moves ...cubetrainer.Move) error {
	var quarters []cubetrainer.Move
	for _, m := range moves {
		if m.Turn == cubetrainer.Double {
			q := cubetrainer.Move{Base: m.Base, Turn: cubetrainer.CW}
			quarters = append(quarters, q, q)
			continue
		}
		quarters = append(quarters, m)
	}
	payload, err := gocube.EncodeRotation(quarters...)
	if err != nil {
		return err
	}
	for i := 0; i < len(payload); i += 2 {
		if err := s.push(gocube.BuildFrame(gocube.MsgRotation, payload[i:i+2])); err != nil {
			return err
		}
	}
	return nil
}

// SendAlg parses and queues an alg.
func (s *Simulator) SendAlg(alg string) error {
	a, err := cubetrainer.ParseAlg(alg)
	if err != nil {
		return fmt.Errorf("failed to parse alg: %w", err)
	}
	return s.Send(a...)
}

// SendBattery queues a battery report.
func (s *Simulator) SendBattery(level int) error {
	return s.push(gocube.BuildFrame(gocube.MsgBattery, []byte{byte(level)}))
}

// Close stops Run and rejects further sends.
func (s *Simulator) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Simulator) push(frame []byte) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}
	select {
	case s.frames <- frame:
		return nil
	case <-s.done:
		return ErrClosed
	}
}

// Run implements Source.
func (s *Simulator) Run(ctx context.Context, out chan<- Event) error {
	if !send(ctx, out, Event{Kind: KindConnected, At: s.now()}) {
		return ctx.Err()
	}
	defer func() {
		// The consumer may already have stopped reading.
		ev := Event{Kind: KindDisconnected, At: s.now()}
		select {
		case out <- ev:
		case <-time.After(time.Second):
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case frame := <-s.frames:
			msg, err := gocube.ParseMessage(frame)
			if err != nil {
				s.logger.Warn("dropping frame", "error", err)
				continue
			}
			events, err := decode(msg, s.now())
			if err != nil {
				s.logger.Warn("dropping message", "type", gocube.MessageTypeName(msg.Type), "error", err)
				continue
			}
			for _, ev := range events {
				if !send(ctx, out, ev) {
					return ctx.Err()
				}
			}
		}
	}
}
