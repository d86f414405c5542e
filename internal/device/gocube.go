package device

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SeamusWaldron/cubetrainer/internal/ble"
	"github.com/SeamusWaldron/cubetrainer/internal/gocube"
	"github.com/SeamusWaldron/cubetrainer/internal/logging"
)

// batteryInterval is how often a connected cube is asked for its charge.
const batteryInterval = time.Minute

// GoCube is a Source backed by a GoCube over Bluetooth.
type GoCube struct {
	id     string
	client *ble.Client
	logger *slog.Logger
	events chan Event
}

// NewGoCube enables the Bluetooth adapter. An empty id connects to the first
// GoCube found.
func NewGoCube(id string) (*GoCube, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}
	return &GoCube{
		id:     id,
		client: client,
		logger: logging.New("device"),
		events: make(chan Event, 64),
	}, nil
}

func (g *GoCube) Name() string {
	if name := g.client.DeviceName(); name != "" {
		return name
	}
	return "gocube"
}

// Run implements Source.
func (g *GoCube) Run(ctx context.Context, out chan<- Event) error {
	g.client.SetMessageCallback(g.handleMessage)

	result, err := g.client.Connect(ctx, g.id)
	if err != nil {
		return fmt.Errorf("failed to connect to cube: %w", err)
	}
	defer g.client.Disconnect()
	g.logger.Info("connected", "name", result.Name, "id", result.ID())

	if !send(ctx, out, Event{Kind: KindConnected, At: time.Now()}) {
		return ctx.Err()
	}
	defer func() {
		select {
		case out <- Event{Kind: KindDisconnected, At: time.Now()}:
		case <-time.After(time.Second):
		}
	}()

	ticker := time.NewTicker(batteryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := g.RequestBattery(); err != nil {
				g.logger.Warn("battery request failed", "error", err)
			}
		case ev := <-g.events:
			if !send(ctx, out, ev) {
				return ctx.Err()
			}
		}
	}
}

// RequestBattery asks the cube for a battery report.
func (g *GoCube) RequestBattery() error {
	return g.client.SendCommand(gocube.CmdRequestBattery)
}

// handleMessage runs on the Bluetooth stack's goroutine. It stamps moves on
// arrival and never blocks; a full buffer drops the event.
func (g *GoCube) handleMessage(msg gocube.Message) {
	events, err := decode(msg, time.Now())
	if err != nil {
		g.logger.Warn("dropping message", "type", gocube.MessageTypeName(msg.Type), "error", err)
		return
	}
	for _, ev := range events {
		select {
		case g.events <- ev:
		default:
			g.logger.Error("event buffer full", "kind", ev.Kind)
		}
	}
}
