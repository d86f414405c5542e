package trainer

import (
	"slices"
	"time"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/config"
	"github.com/SeamusWaldron/cubetrainer/internal/solvecheck"
	"github.com/SeamusWaldron/cubetrainer/internal/stickering"
)

// Transition applies one event to s. It never mutates s: slices held by the
// returned state are fresh where they differ. Effects are returned in the
// order they happened.
func Transition(s State, ev Event, rnd Rand) (State, []Effect) {
	switch ev := ev.(type) {
	case PuzzleReady:
		s.Puzzle = ev.Puzzle
		if _, ok := s.Entry(); !ok {
			return s, nil
		}
		var at time.Time
		if n := len(s.Moves); n > 0 {
			at = s.Moves[n-1].Time
		}
		s = recompute(s)
		return evaluate(s, at, rnd, []Effect{setupChanged(s)})

	case SelectEntry:
		if s.Set.Len() == 0 {
			return s, nil
		}
		idx := ev.Index
		if idx < 0 {
			s, idx = first(s, rnd)
		} else if idx >= s.Set.Len() {
			return s, nil
		}
		s = selectIndex(s, idx, ev.At, rnd)
		return s, []Effect{setupChanged(s)}

	case MoveReceived:
		if _, ok := s.Entry(); !ok {
			return s, nil
		}
		s.Moves = append(slices.Clip(s.Moves), cubetrainer.TimedMove{Move: ev.Move, Time: ev.At})
		s.Phase = AwaitingMoves
		if !s.PuzzleReady() {
			return s, nil
		}
		return evaluate(s, ev.At, rnd, nil)

	case SettingsChanged:
		s.Settings = ev.Settings
		if slices.Contains(ev.Fields, config.FieldPlaylistMode) {
			s.deck, s.deckPos = nil, 0
		}
		if _, ok := s.Entry(); !ok || !affectsSetup(ev.Fields) {
			return s, nil
		}
		s.Setup = redraw(s.Setup, s.Settings, ev.Fields, rnd)
		s = recompute(s)
		effects := []Effect{setupChanged(s)}
		if len(s.Moves) == 0 {
			return s, effects
		}
		return evaluate(s, s.Moves[len(s.Moves)-1].Time, rnd, effects)

	case Skip:
		if _, ok := s.Entry(); !ok {
			return s, nil
		}
		s = advance(s, ev.At, rnd)
		return s, []Effect{setupChanged(s)}

	case DeviceConnected:
		s.Connected = true
		return s, nil

	case DeviceDisconnected:
		s.Connected = false
		return s, nil
	}
	return s, nil
}

func setupChanged(s State) Effect {
	return SetupChanged{SetupAlg: s.SetupAlg, Mask: s.Mask}
}

// selectIndex shows case idx with a fresh set of random choices.
func selectIndex(s State, idx int, at time.Time, rnd Rand) State {
	s.Index = idx
	s.Phase = Ready
	s.Start = at
	s.Moves = nil
	s.Setup = drawSetup(s.Settings, rnd)
	return recompute(s)
}

// recompute derives the setup alg, the effective target and, once the
// puzzle is known, the mask and the satisfied flags.
func recompute(s State) State {
	entry, ok := s.Entry()
	if !ok {
		return s
	}
	s.SetupAlg = SetupAlg(entry.Alg, s.Setup, s.Settings)
	s.Effective = EffectiveTarget(entry.Target(), s.Setup)
	s.Mask = stickering.Mask{}
	s.Satisfied = 0
	if !s.PuzzleReady() {
		return s
	}
	setup, err := s.Puzzle.DefaultPattern().ApplyAlg(s.SetupAlg)
	if err != nil {
		return s
	}
	s.Mask = stickering.Generate(setup, s.Effective)
	if pat, ok := s.Pattern(); ok {
		s.Satisfied, _ = solvecheck.Satisfied(pat)
	}
	return s
}

// evaluate checks the current pattern against the effective target and
// records a solve when it holds. A case with no moves is never solved.
func evaluate(s State, at time.Time, rnd Rand, effects []Effect) (State, []Effect) {
	pat, ok := s.Pattern()
	if !ok || len(s.Moves) == 0 {
		return s, effects
	}
	s.Satisfied, _ = solvecheck.Satisfied(pat)
	solved, err := solvecheck.IsSolved(pat, s.Effective)
	if err != nil || !solved {
		return s, effects
	}

	entry, _ := s.Entry()
	firstMove := s.Moves[0].Time
	lastMove := s.Moves[len(s.Moves)-1].Time
	stat := cubetrainer.SolveStat{
		Set:           s.Set.Name,
		Name:          entry.Name,
		TimeOfSolve:   at,
		Moves:         s.Moves,
		Execution:     lastMove.Sub(firstMove),
		Recognition:   firstMove.Sub(s.Start),
		AUFs:          s.Setup.AUFs,
		Ys:            s.Setup.Ys,
		MirroredOverM: s.Setup.MirrorM,
		MirroredOverS: s.Setup.MirrorS,
	}
	s.Stats = append(slices.Clip(s.Stats), stat)
	s = advance(s, at, rnd)
	return s, append(effects, SolveRecorded{Stat: stat}, setupChanged(s))
}

// advance moves to the next case of the playlist, or to Finished.
func advance(s State, at time.Time, rnd Rand) State {
	s, idx, ok := next(s, rnd)
	if !ok {
		s.Phase = Finished
		s.Moves = nil
		s.SetupAlg = nil
		s.Mask = stickering.Mask{}
		s.Satisfied = 0
		return s
	}
	return selectIndex(s, idx, at, rnd)
}
