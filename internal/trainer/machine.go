package trainer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/config"
)

// storeTimeout bounds one statistics write.
const storeTimeout = 5 * time.Second

// StatsStore persists completed solves.
type StatsStore interface {
	AppendStat(ctx context.Context, set string, stat cubetrainer.SolveStat) error
}

// Machine serializes events into a session and acts on the effects.
//
//	m, err := trainer.New(set, settings, trainer.WithStatsStore(repo))
//	if err != nil {
//	    return err
//	}
//	m.OnSolve(func(s cubetrainer.SolveStat) { fmt.Println(s.Execution) })
//	m.Dispatch(trainer.PuzzleReady{Puzzle: cube.New()})
//	m.Dispatch(trainer.SelectEntry{Index: -1, At: time.Now()})
type Machine struct {
	opts *options

	mu       sync.Mutex
	state    State
	onChange func(State)
	onSolve  func(cubetrainer.SolveStat)

	writes sync.WaitGroup
}

// New returns a machine over set. The set must contain at least one entry.
func New(set cubetrainer.AlgSet, settings config.Settings, opts ...Option) (*Machine, error) {
	if set.Len() == 0 {
		return nil, fmt.Errorf("%w: %q", cubetrainer.ErrEmptyAlgSet, set.Name)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Machine{opts: o, state: NewState(set, settings)}, nil
}

// OnChange sets a callback that fires after every event with the new state.
func (m *Machine) OnChange(cb func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = cb
}

// OnSolve sets a callback that fires for each recorded solve.
func (m *Machine) OnSolve(cb func(cubetrainer.SolveStat)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSolve = cb
}

// State returns the current session.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Dispatch applies one event and returns its effects.
func (m *Machine) Dispatch(ev Event) []Effect {
	m.mu.Lock()
	prev := m.state.Phase
	s, effects := Transition(m.state, ev, m.opts.rnd)

	var solves []cubetrainer.SolveStat
	for i, e := range effects {
		rec, ok := e.(SolveRecorded)
		if !ok {
			continue
		}
		rec.Stat.ID = uuid.NewString()
		if n := len(s.Stats); n > 0 {
			s.Stats[n-1].ID = rec.Stat.ID
		}
		effects[i] = rec
		solves = append(solves, rec.Stat)
	}
	m.state = s
	onChange, onSolve := m.onChange, m.onSolve
	m.mu.Unlock()

	m.observe(ev)
	for _, stat := range solves {
		m.opts.logger.Info("solve recorded",
			"set", stat.Set,
			"name", stat.Name,
			"execution", stat.Execution,
			"recognition", stat.Recognition,
			"moves", len(stat.Moves))
		if m.opts.metrics != nil {
			m.opts.metrics.SolveRecorded(stat.Set, stat.Execution, stat.Recognition)
		}
		m.persist(stat)
		if onSolve != nil {
			onSolve(stat)
		}
	}
	if s.Phase != prev {
		m.opts.logger.Debug("phase changed", "from", prev, "to", s.Phase)
	}
	if onChange != nil {
		onChange(s)
	}
	return effects
}

func (m *Machine) observe(ev Event) {
	r := m.opts.metrics
	switch ev := ev.(type) {
	case MoveReceived:
		m.opts.logger.Debug("move", "move", ev.Move.Notation())
		if r != nil {
			r.MoveReceived()
		}
	case DeviceConnected:
		m.opts.logger.Info("device connected")
		if r != nil {
			r.SetConnected(true)
		}
	case DeviceDisconnected:
		m.opts.logger.Warn("device disconnected")
		if r != nil {
			r.SetConnected(false)
		}
	}
}

// persist writes stat in the background. Failures are logged and counted.
func (m *Machine) persist(stat cubetrainer.SolveStat) {
	store := m.opts.store
	if store == nil {
		return
	}
	m.writes.Add(1)
	go func() {
		defer m.writes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.AppendStat(ctx, stat.Set, stat); err != nil {
			m.opts.logger.Error("failed to store solve", "set", stat.Set, "name", stat.Name, "error", err)
			if m.opts.metrics != nil {
				m.opts.metrics.StoreFailed()
			}
		}
	}()
}

// Run dispatches events until the channel closes or ctx is done.
func (m *Machine) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			m.Dispatch(ev)
		}
	}
}

// Wait blocks until every pending statistics write has finished.
func (m *Machine) Wait() {
	m.writes.Wait()
}
