package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubetrainer"
)

// Orbit is the state of one orbit: which piece sits in each slot and how it
// is twisted.
type Orbit struct {
	Pieces      []int
	Orientation []int
}

// Pattern is a full puzzle state. Patterns are values; every apply returns
// a fresh Pattern and leaves the receiver untouched.
type Pattern struct {
	Puzzle *Puzzle
	Orbits []Orbit
}

// DefaultPattern returns the solved state in the standard orientation.
func (p *Puzzle) DefaultPattern() Pattern {
	t := p.Identity()
	pat := Pattern{Puzzle: p, Orbits: make([]Orbit, len(t.Orbits))}
	for o, ot := range t.Orbits {
		pat.Orbits[o] = Orbit{Pieces: ot.Permutation, Orientation: ot.OrientationDelta}
	}
	return pat
}

// NewPattern builds a pattern from explicit orbit data after checking that
// every orbit has the right size and holds in-range values.
func NewPattern(p *Puzzle, orbits []Orbit) (Pattern, error) {
	if len(orbits) != len(p.Orbits) {
		return Pattern{}, fmt.Errorf("%w: %d orbits, %s has %d", ErrInvalidPattern, len(orbits), p.Name, len(p.Orbits))
	}
	pat := Pattern{Puzzle: p, Orbits: make([]Orbit, len(orbits))}
	for o, def := range p.Orbits {
		in := orbits[o]
		if len(in.Pieces) != def.NumPieces || len(in.Orientation) != def.NumPieces {
			return Pattern{}, fmt.Errorf("%w: orbit %s needs %d pieces", ErrInvalidPattern, def.Name, def.NumPieces)
		}
		seen := make([]bool, def.NumPieces)
		for i, piece := range in.Pieces {
			if piece < 0 || piece >= def.NumPieces || seen[piece] {
				return Pattern{}, fmt.Errorf("%w: orbit %s slot %d has piece %d", ErrInvalidPattern, def.Name, i, piece)
			}
			seen[piece] = true
			if ori := in.Orientation[i]; ori < 0 || ori >= def.NumOrientations {
				return Pattern{}, fmt.Errorf("%w: orbit %s slot %d has orientation %d", ErrInvalidPattern, def.Name, i, ori)
			}
		}
		pat.Orbits[o] = Orbit{
			Pieces:      append([]int(nil), in.Pieces...),
			Orientation: append([]int(nil), in.Orientation...),
		}
	}
	return pat, nil
}

// Apply returns the pattern after t.
func (pat Pattern) Apply(t Transformation) Pattern {
	out := Pattern{Puzzle: pat.Puzzle, Orbits: make([]Orbit, len(pat.Orbits))}
	for o, def := range pat.Puzzle.Orbits {
		old, ot := pat.Orbits[o], t.Orbits[o]
		orb := Orbit{
			Pieces:      make([]int, def.NumPieces),
			Orientation: make([]int, def.NumPieces),
		}
		for i := 0; i < def.NumPieces; i++ {
			src := ot.Permutation[i]
			orb.Pieces[i] = old.Pieces[src]
			orb.Orientation[i] = (old.Orientation[src] + ot.OrientationDelta[i]) % def.NumOrientations
		}
		out.Orbits[o] = orb
	}
	return out
}

// ApplyMove returns the pattern after m.
func (pat Pattern) ApplyMove(m cubetrainer.Move) (Pattern, error) {
	t, err := pat.Puzzle.MoveTransformation(m)
	if err != nil {
		return Pattern{}, err
	}
	return pat.Apply(t), nil
}

// ApplyAlg returns the pattern after every move of a.
func (pat Pattern) ApplyAlg(a cubetrainer.Alg) (Pattern, error) {
	t, err := pat.Puzzle.AlgTransformation(a)
	if err != nil {
		return Pattern{}, err
	}
	return pat.Apply(t), nil
}

// ApplyString parses s as an alg and applies it.
func (pat Pattern) ApplyString(s string) (Pattern, error) {
	a, err := cubetrainer.ParseAlg(s)
	if err != nil {
		return Pattern{}, err
	}
	return pat.ApplyAlg(a)
}

// Equal reports whether both patterns place every piece identically.
func (pat Pattern) Equal(other Pattern) bool {
	if len(pat.Orbits) != len(other.Orbits) {
		return false
	}
	for o := range pat.Orbits {
		a, b := pat.Orbits[o], other.Orbits[o]
		if len(a.Pieces) != len(b.Pieces) {
			return false
		}
		for i := range a.Pieces {
			if a.Pieces[i] != b.Pieces[i] || a.Orientation[i] != b.Orientation[i] {
				return false
			}
		}
	}
	return true
}

// Label returns the facelet letters of the piece in a slot, starting from
// the slot's reference facelet. A solved piece reads as its own name.
func (pat Pattern) Label(orbit, slot int) string {
	def := pat.Puzzle.Orbits[orbit]
	name := def.PieceNames[pat.Orbits[orbit].Pieces[slot]]
	ori := pat.Orbits[orbit].Orientation[slot] % len(name)
	return name[ori:] + name[:ori]
}
