// Package device turns a smart cube, real or simulated, into a stream of
// timestamped events for the trainer.
package device

import (
	"context"
	"errors"
	"time"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/gocube"
)

var ErrClosed = errors.New("device: source closed")

// Kind identifies an Event.
type Kind int

const (
	KindMove Kind = iota
	KindConnected
	KindDisconnected
	KindBattery
	KindOrientation
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindConnected:
		return "connected"
	case KindDisconnected:
		return "disconnected"
	case KindBattery:
		return "battery"
	case KindOrientation:
		return "orientation"
	default:
		return "unknown"
	}
}

// Event is one notification from a source. Only the fields that belong to
// Kind are set.
type Event struct {
	Kind        Kind
	At          time.Time
	Move        cubetrainer.Move
	Battery     int
	Orientation gocube.Orientation
}

// Source produces events until ctx is cancelled. Run sends a KindConnected
// event once the device is usable and a KindDisconnected event before it
// returns.
type Source interface {
	Name() string
	Run(ctx context.Context, out chan<- Event) error
}

// decode converts one frame into events stamped with at. Frames the trainer
// has no use for produce nothing.
func decode(msg gocube.Message, at time.Time) ([]Event, error) {
	switch msg.Type {
	case gocube.MsgRotation:
		rots, err := gocube.DecodeRotation(msg.Payload)
		if err != nil {
			return nil, err
		}
		events := make([]Event, len(rots))
		for i, r := range rots {
			events[i] = Event{Kind: KindMove, At: at, Move: r.Move()}
		}
		return events, nil
	case gocube.MsgBattery:
		level, err := gocube.DecodeBattery(msg.Payload)
		if err != nil {
			return nil, err
		}
		return []Event{{Kind: KindBattery, At: at, Battery: level}}, nil
	case gocube.MsgOrientation:
		o, err := gocube.DecodeOrientation(msg.Payload)
		if err != nil {
			return nil, err
		}
		return []Event{{Kind: KindOrientation, At: at, Orientation: o}}, nil
	}
	return nil, nil
}

// send delivers ev unless ctx ends first.
func send(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
