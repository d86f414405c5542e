package cubetrainer

import "time"

// Entry is one named algorithm of an AlgSet together with the region that
// must be solved for it to count.
type Entry struct {
	Name   string
	Alg    Alg
	Solved SolvedState
}

// Target returns the entry's solved state, defaulting to FULL.
func (e Entry) Target() SolvedState {
	if e.Solved == 0 {
		return Full
	}
	return e.Solved
}

// AlgSet is a named collection of entries.
type AlgSet struct {
	Name    string
	Entries []Entry
}

// Len returns the number of entries.
func (s AlgSet) Len() int {
	return len(s.Entries)
}

// Index returns the position of the entry with the given name or -1.
func (s AlgSet) Index(name string) int {
	for i, e := range s.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// TimedMove is a move received from a device with its arrival time.
type TimedMove struct {
	Move Move
	Time time.Time
}

// SolveStat records one successful execution of an entry.
type SolveStat struct {
	ID            string
	Set           string
	Name          string
	TimeOfSolve   time.Time
	Moves         []TimedMove
	Execution     time.Duration
	Recognition   time.Duration
	AUFs          int
	Ys            int
	MirroredOverM bool
	MirroredOverS bool
}

// MoveAlg returns the moves of the stat without timestamps.
func (s SolveStat) MoveAlg() Alg {
	alg := make(Alg, len(s.Moves))
	for i, m := range s.Moves {
		alg[i] = m.Move
	}
	return alg
}
