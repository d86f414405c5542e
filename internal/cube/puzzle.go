// Package cube provides the 3x3x3 puzzle model: orbits of pieces, patterns
// describing where every piece sits, and the transformations moves apply.
package cube

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubetrainer"
)

// PuzzleName is the name of the only puzzle this package builds.
const PuzzleName = "3x3x3"

// Orbit indices in fixed order.
const (
	Edges   = 0
	Corners = 1
	Centers = 2
)

var (
	ErrInvalidPattern = errors.New("cube: invalid pattern")
	ErrUnknownMove    = errors.New("cube: move has no transformation")
)

// OrbitDef describes one family of interchangeable pieces.
type OrbitDef struct {
	Name            string
	NumPieces       int
	NumOrientations int
	// PieceNames are the home slot names. The first letter of a name is the
	// facelet used as the orientation reference.
	PieceNames []string
}

// Puzzle holds orbit definitions and the derived move table.
type Puzzle struct {
	Name   string
	Orbits []OrbitDef

	positions [][]vec
	quarters  map[cubetrainer.Base]Transformation
}

var orbitDefs = []OrbitDef{
	{Name: "EDGES", NumPieces: 12, NumOrientations: 2, PieceNames: []string{
		"UF", "UR", "UB", "UL", "DF", "DR", "DB", "DL", "FR", "FL", "BR", "BL",
	}},
	{Name: "CORNERS", NumPieces: 8, NumOrientations: 3, PieceNames: []string{
		"UFR", "URB", "UBL", "ULF", "DRF", "DFL", "DLB", "DBR",
	}},
	{Name: "CENTERS", NumPieces: 6, NumOrientations: 1, PieceNames: []string{
		"U", "L", "F", "R", "B", "D",
	}},
}

// New builds the 3x3x3 puzzle. Move transformations are derived from cubie
// geometry rather than typed in.
func New() *Puzzle {
	p := &Puzzle{
		Name:     PuzzleName,
		Orbits:   orbitDefs,
		quarters: make(map[cubetrainer.Base]Transformation, len(cubetrainer.Bases)),
	}
	p.positions = make([][]vec, len(p.Orbits))
	for o, def := range p.Orbits {
		p.positions[o] = make([]vec, def.NumPieces)
		for i, name := range def.PieceNames {
			p.positions[o][i] = position(name)
		}
	}
	for _, b := range cubetrainer.Bases {
		p.quarters[b] = p.quarterTurn(moveLayers[b])
	}
	return p
}

// OrbitIndex returns the index of the named orbit, or -1.
func (p *Puzzle) OrbitIndex(name string) int {
	for i, def := range p.Orbits {
		if def.Name == name {
			return i
		}
	}
	return -1
}

// slotAt returns the orbit and slot of the cubie at position v.
func (p *Puzzle) slotAt(v vec) (orbit, slot int, ok bool) {
	for o, ps := range p.positions {
		for i, pv := range ps {
			if pv == v {
				return o, i, true
			}
		}
	}
	return 0, 0, false
}

// quarterTurn derives the clockwise quarter-turn transformation of a layer
// selection. For every affected slot the piece's position and its reference
// facelet normal are rotated; the destination slot is found by position and
// the orientation delta by which of its facelets the reference lands on.
func (p *Puzzle) quarterTurn(l layers) Transformation {
	axis := normals[l.face]
	t := p.Identity()
	for o, def := range p.Orbits {
		ot := t.Orbits[o]
		for from, pos := range p.positions[o] {
			if !l.selects(pos.dot(axis)) {
				continue
			}
			to := indexOf(p.positions[o], pos.rotate(axis))
			ot.Permutation[to] = from
			if def.NumOrientations == 1 {
				continue
			}
			ref := normals[def.PieceNames[from][0]].rotate(axis)
			k := 0
			for j := 0; j < len(def.PieceNames[to]); j++ {
				if normals[def.PieceNames[to][j]] == ref {
					k = j
					break
				}
			}
			ot.OrientationDelta[to] = (def.NumOrientations - k) % def.NumOrientations
		}
	}
	return t
}

// Identity returns the transformation that leaves every piece in place.
func (p *Puzzle) Identity() Transformation {
	t := Transformation{Orbits: make([]OrbitTransformation, len(p.Orbits))}
	for o, def := range p.Orbits {
		ot := OrbitTransformation{
			Permutation:      make([]int, def.NumPieces),
			OrientationDelta: make([]int, def.NumPieces),
		}
		for i := range ot.Permutation {
			ot.Permutation[i] = i
		}
		t.Orbits[o] = ot
	}
	return t
}

// MoveTransformation returns the transformation of a single move.
func (p *Puzzle) MoveTransformation(m cubetrainer.Move) (Transformation, error) {
	q, ok := p.quarters[m.Base]
	if !ok {
		return Transformation{}, fmt.Errorf("%w: %s", ErrUnknownMove, m)
	}
	t := p.Identity()
	for i := 0; i < m.Turn.Quarters(); i++ {
		t = p.compose(t, q)
	}
	return t, nil
}

// AlgTransformation returns the combined transformation of every move in a.
func (p *Puzzle) AlgTransformation(a cubetrainer.Alg) (Transformation, error) {
	t := p.Identity()
	for _, m := range a {
		mt, err := p.MoveTransformation(m)
		if err != nil {
			return Transformation{}, err
		}
		t = p.compose(t, mt)
	}
	return t, nil
}

// compose returns the transformation of applying a and then b.
func (p *Puzzle) compose(a, b Transformation) Transformation {
	out := Transformation{Orbits: make([]OrbitTransformation, len(p.Orbits))}
	for o, def := range p.Orbits {
		ao, bo := a.Orbits[o], b.Orbits[o]
		n := len(bo.Permutation)
		ot := OrbitTransformation{
			Permutation:      make([]int, n),
			OrientationDelta: make([]int, n),
		}
		for i := 0; i < n; i++ {
			ot.Permutation[i] = ao.Permutation[bo.Permutation[i]]
			ot.OrientationDelta[i] = (ao.OrientationDelta[bo.Permutation[i]] + bo.OrientationDelta[i]) % def.NumOrientations
		}
		out.Orbits[o] = ot
	}
	return out
}

// Transformation maps every slot to the slot its new piece comes from.
type Transformation struct {
	Orbits []OrbitTransformation
}

// OrbitTransformation is the per-orbit part of a Transformation. After
// applying it, slot i holds the piece previously in slot Permutation[i] with
// its orientation advanced by OrientationDelta[i].
type OrbitTransformation struct {
	Permutation      []int
	OrientationDelta []int
}

func indexOf(vs []vec, v vec) int {
	for i, x := range vs {
		if x == v {
			return i
		}
	}
	panic(fmt.Sprintf("cube: no slot at %v", v))
}
