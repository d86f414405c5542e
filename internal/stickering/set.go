package stickering

import (
	"strings"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
)

// PieceSet is an immutable selection of slots, one flag per slot per orbit.
type PieceSet struct {
	orbits [][]bool
}

// Has reports whether the slot is selected.
func (s PieceSet) Has(orbit, slot int) bool {
	return orbit < len(s.orbits) && slot < len(s.orbits[orbit]) && s.orbits[orbit][slot]
}

// Len returns the number of selected slots.
func (s PieceSet) Len() int {
	n := 0
	for _, o := range s.orbits {
		for _, v := range o {
			if v {
				n++
			}
		}
	}
	return n
}

// Manager builds piece sets for one puzzle.
type Manager struct {
	puzzle *cube.Puzzle
}

// NewManager returns a Manager for p.
func NewManager(p *cube.Puzzle) *Manager {
	return &Manager{puzzle: p}
}

func (m *Manager) build(f func(orbit, slot int) bool) PieceSet {
	s := PieceSet{orbits: make([][]bool, len(m.puzzle.Orbits))}
	for o, def := range m.puzzle.Orbits {
		s.orbits[o] = make([]bool, def.NumPieces)
		for i := range s.orbits[o] {
			s.orbits[o][i] = f(o, i)
		}
	}
	return s
}

// And selects slots present in every set. With no sets it selects
// everything.
func (m *Manager) And(sets ...PieceSet) PieceSet {
	return m.build(func(o, i int) bool {
		for _, s := range sets {
			if !s.Has(o, i) {
				return false
			}
		}
		return true
	})
}

// Or selects slots present in any set.
func (m *Manager) Or(sets ...PieceSet) PieceSet {
	return m.build(func(o, i int) bool {
		for _, s := range sets {
			if s.Has(o, i) {
				return true
			}
		}
		return false
	})
}

// Not selects every slot missing from s.
func (m *Manager) Not(s PieceSet) PieceSet {
	return m.build(func(o, i int) bool { return !s.Has(o, i) })
}

// All selects every slot.
func (m *Manager) All() PieceSet {
	return m.And()
}

// Move selects the slots a move changes, by occupant or orientation. A move
// the puzzle cannot perform selects nothing.
func (m *Manager) Move(mv cubetrainer.Move) PieceSet {
	t, err := m.puzzle.MoveTransformation(mv)
	if err != nil {
		return m.build(func(int, int) bool { return false })
	}
	return m.build(func(o, i int) bool {
		ot := t.Orbits[o]
		return ot.Permutation[i] != i || ot.OrientationDelta[i] != 0
	})
}

// Moves returns one set per move, ready to pass to And or Or.
func (m *Manager) Moves(moves ...cubetrainer.Move) []PieceSet {
	sets := make([]PieceSet, len(moves))
	for i, mv := range moves {
		sets[i] = m.Move(mv)
	}
	return sets
}

// Orbits selects every slot of the named orbits.
func (m *Manager) Orbits(names ...string) PieceSet {
	return m.build(func(o, _ int) bool {
		for _, n := range names {
			if m.puzzle.Orbits[o].Name == n {
				return true
			}
		}
		return false
	})
}

// OrbitPrefix selects every slot of orbits whose name starts with prefix.
func (m *Manager) OrbitPrefix(prefix string) PieceSet {
	return m.build(func(o, _ int) bool {
		return strings.HasPrefix(m.puzzle.Orbits[o].Name, prefix)
	})
}
