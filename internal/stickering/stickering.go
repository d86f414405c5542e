package stickering

import (
	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
)

// Stickering assigns a PieceStickering to every slot. New stickerings show
// every piece as Regular.
type Stickering struct {
	puzzle *cube.Puzzle
	pieces [][]PieceStickering
}

// New returns an all-regular stickering for p.
func New(p *cube.Puzzle) *Stickering {
	s := &Stickering{puzzle: p, pieces: make([][]PieceStickering, len(p.Orbits))}
	for o, def := range p.Orbits {
		s.pieces[o] = make([]PieceStickering, def.NumPieces)
	}
	return s
}

// Set applies ps to every slot in set and returns s for chaining.
func (s *Stickering) Set(set PieceSet, ps PieceStickering) *Stickering {
	for o := range s.pieces {
		for i := range s.pieces[o] {
			if set.Has(o, i) {
				s.pieces[o][i] = ps
			}
		}
	}
	return s
}

// Get returns the stickering of one slot.
func (s *Stickering) Get(orbit, slot int) PieceStickering {
	return s.pieces[orbit][slot]
}

// Mask expands the stickering into per-facelet treatments.
func (s *Stickering) Mask() Mask {
	m := Mask{Orbits: make(map[string]OrbitMask, len(s.pieces))}
	for o, def := range s.puzzle.Orbits {
		pieces := make([]PieceMask, len(s.pieces[o]))
		for i, ps := range s.pieces[o] {
			pieces[i] = PieceMask{Facelets: ps.Facelets()}
		}
		m.Orbits[def.Name] = OrbitMask{Pieces: pieces}
	}
	return m
}

// Rotate returns m carried through alg on puzzle p, so that each facelet
// treatment follows its slot as the moves relocate it.
func (m Mask) Rotate(p *cube.Puzzle, alg cubetrainer.Alg) Mask {
	out := m.Clone()
	for _, mv := range alg {
		t, err := p.MoveTransformation(mv)
		if err != nil {
			continue
		}
		for o, def := range p.Orbits {
			om := out.Orbits[def.Name]
			ot := t.Orbits[o]
			turned := make([][]Facelet, len(om.Pieces))
			for j, pm := range om.Pieces {
				turned[j] = rotateFacelets(pm.Facelets, ot.OrientationDelta[j], def.NumOrientations)
			}
			for i := range om.Pieces {
				om.Pieces[i] = PieceMask{Facelets: append([]Facelet(nil), turned[ot.Permutation[i]]...)}
			}
		}
	}
	return out
}

// rotateFacelets shifts the first n facelets back by delta positions.
func rotateFacelets(f []Facelet, delta, n int) []Facelet {
	if delta == 0 {
		return f
	}
	out := append([]Facelet(nil), f...)
	for q := 0; q < n && q < len(f); q++ {
		out[(q-delta+n)%n] = f[q]
	}
	return out
}
