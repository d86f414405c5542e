// Package trainer drives a training session: which case is shown, how it
// is set up on the cube, and when it counts as solved.
//
// The session is a value type advanced by Transition, a pure function of the
// current state, one event and a source of randomness. Machine wraps it with
// serialization, persistence and metrics.
package trainer

import (
	"time"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/config"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
	"github.com/SeamusWaldron/cubetrainer/internal/stickering"
)

// Phase is the coarse position of a session.
type Phase int

const (
	Uninitialized Phase = iota // no case selected yet
	Ready                      // case shown, no moves yet
	AwaitingMoves              // moves arriving, not yet solved
	Finished                   // playlist exhausted without looping
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case AwaitingMoves:
		return "awaiting moves"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Rand is the randomness a transition may consume.
type Rand interface {
	IntN(n int) int
}

// Setup holds the random choices made when a case is selected.
type Setup struct {
	AUFs           int // U turns after the case, 0-3
	Ys             int // y rotations after the case, 0-3
	PreRotations   int // repetitions of the random pre-rotation, 0-3
	MirrorM        bool
	MirrorS        bool
	Preorientation cubetrainer.Alg
}

// State is one snapshot of a session.
type State struct {
	Phase    Phase
	Set      cubetrainer.AlgSet
	Settings config.Settings
	Index    int

	Puzzle    *cube.Puzzle // nil until PuzzleReady
	Connected bool

	Start time.Time
	Moves []cubetrainer.TimedMove
	Setup Setup

	SetupAlg  cubetrainer.Alg
	Effective cubetrainer.SolvedState
	Mask      stickering.Mask
	// Satisfied holds every flag that currently holds, for progress display.
	Satisfied cubetrainer.SolvedState

	Stats []cubetrainer.SolveStat

	deck    []int
	deckPos int
}

// NewState returns an uninitialized session over set.
func NewState(set cubetrainer.AlgSet, settings config.Settings) State {
	return State{Set: set, Settings: settings}
}

// Entry returns the selected case.
func (s State) Entry() (cubetrainer.Entry, bool) {
	if s.Phase == Uninitialized || s.Phase == Finished || s.Index < 0 || s.Index >= s.Set.Len() {
		return cubetrainer.Entry{}, false
	}
	return s.Set.Entries[s.Index], true
}

// PuzzleReady reports whether pattern-dependent work can run.
func (s State) PuzzleReady() bool {
	return s.Puzzle != nil
}

// Pattern returns the current puzzle state: the setup followed by every
// move received so far.
func (s State) Pattern() (cube.Pattern, bool) {
	if s.Puzzle == nil {
		return cube.Pattern{}, false
	}
	pat, err := s.Puzzle.DefaultPattern().ApplyAlg(s.SetupAlg.Concat(movesAlg(s.Moves)))
	if err != nil {
		return cube.Pattern{}, false
	}
	return pat, true
}

func movesAlg(moves []cubetrainer.TimedMove) cubetrainer.Alg {
	a := make(cubetrainer.Alg, len(moves))
	for i, m := range moves {
		a[i] = m.Move
	}
	return a
}

// Event is an input to Transition.
type Event interface {
	event()
}

// PuzzleReady delivers the puzzle model once it has been built.
type PuzzleReady struct {
	Puzzle *cube.Puzzle
}

// SelectEntry shows a case. A negative Index picks the first case of the
// playlist.
type SelectEntry struct {
	Index int
	At    time.Time
}

// MoveReceived is one move from the device.
type MoveReceived struct {
	Move cubetrainer.Move
	At   time.Time
}

// SettingsChanged replaces the settings. Fields names what changed.
type SettingsChanged struct {
	Settings config.Settings
	Fields   []config.Field
}

// Skip moves to the next case without recording a solve.
type Skip struct {
	At time.Time
}

// DeviceConnected and DeviceDisconnected track the move source.
type (
	DeviceConnected    struct{}
	DeviceDisconnected struct{}
)

func (PuzzleReady) event()        {}
func (SelectEntry) event()        {}
func (MoveReceived) event()       {}
func (SettingsChanged) event()    {}
func (Skip) event()               {}
func (DeviceConnected) event()    {}
func (DeviceDisconnected) event() {}

// Effect is an outcome of a transition the caller must act on.
type Effect interface {
	effect()
}

// SolveRecorded carries a completed case to persist.
type SolveRecorded struct {
	Stat cubetrainer.SolveStat
}

// SetupChanged is emitted whenever the setup or mask is recomputed.
type SetupChanged struct {
	SetupAlg cubetrainer.Alg
	Mask     stickering.Mask
}

func (SolveRecorded) effect() {}
func (SetupChanged) effect()  {}
