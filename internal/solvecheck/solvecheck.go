// Package solvecheck decides which regions of a 3x3x3 pattern are solved.
//
// Every check compares slot labels against the labels of the current
// centers rather than fixed face letters, so a pattern that has been turned
// as a whole still counts as solved.
package solvecheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
)

var ErrUnsupportedPuzzle = errors.New("solvecheck: unsupported puzzle")

// Slot names checked by each rule.
var (
	crossEdges = []string{"DF", "DR", "DB", "DL"}
	topEdges   = []string{"UF", "UR", "UB", "UL"}
	topCorners = []string{"UFR", "URB", "UBL", "ULF"}

	// Edge and corner slot of each first-two-layers pair.
	pairs = map[cubetrainer.SolvedState][2]string{
		cubetrainer.F2LFR: {"FR", "DRF"},
		cubetrainer.F2LFL: {"FL", "DFL"},
		cubetrainer.F2LBL: {"BL", "DLB"},
		cubetrainer.F2LBR: {"BR", "DBR"},
	}
)

// state is the label view of one pattern.
type state struct {
	def    []cube.OrbitDef
	labels [][]string
}

func newState(p cube.Pattern) (*state, error) {
	if p.Puzzle == nil || p.Puzzle.Name != cube.PuzzleName {
		name := "<nil>"
		if p.Puzzle != nil {
			name = p.Puzzle.Name
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPuzzle, name)
	}
	s := &state{def: p.Puzzle.Orbits, labels: make([][]string, len(p.Orbits))}
	for o := range p.Orbits {
		s.labels[o] = make([]string, len(p.Orbits[o].Pieces))
		for i := range s.labels[o] {
			s.labels[o][i] = p.Label(o, i)
		}
	}
	return s, nil
}

func (s *state) label(orbit int, slot string) string {
	for i, name := range s.def[orbit].PieceNames {
		if name == slot {
			return s.labels[orbit][i]
		}
	}
	return ""
}

// center returns the label of the center currently in the face slot.
func (s *state) center(face byte) string {
	return s.label(cube.Centers, string(face))
}

// expected substitutes each face letter of a home name with the current
// center on that face.
func (s *state) expected(name string) string {
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		sb.WriteString(s.center(name[i]))
	}
	return sb.String()
}

func (s *state) home(orbit int, slot string) bool {
	return s.label(orbit, slot) == s.expected(slot)
}

func (s *state) check(flag cubetrainer.SolvedState) bool {
	switch flag {
	case cubetrainer.Full:
		for _, orbit := range []int{cube.Edges, cube.Corners} {
			for _, name := range s.def[orbit].PieceNames {
				if !s.home(orbit, name) {
					return false
				}
			}
		}
		return true
	case cubetrainer.Cross:
		for _, name := range crossEdges {
			if !s.home(cube.Edges, name) {
				return false
			}
		}
		return true
	case cubetrainer.F2LFR, cubetrainer.F2LFL, cubetrainer.F2LBL, cubetrainer.F2LBR:
		pair := pairs[flag]
		return s.home(cube.Edges, pair[0]) && s.home(cube.Corners, pair[1])
	case cubetrainer.UEdgeFaces:
		return s.primaryFacesUp(cube.Edges, topEdges)
	case cubetrainer.UCornerFaces:
		return s.primaryFacesUp(cube.Corners, topCorners)
	}
	return true
}

// primaryFacesUp reports whether the reference facelet of every named slot
// shows the top center. Permutation among the slots is ignored.
func (s *state) primaryFacesUp(orbit int, slots []string) bool {
	up := s.center('U')
	for _, name := range slots {
		if s.label(orbit, name)[:1] != up {
			return false
		}
	}
	return true
}

// IsSolved reports whether every flag in flags holds for p. An empty mask
// is trivially solved.
func IsSolved(p cube.Pattern, flags cubetrainer.SolvedState) (bool, error) {
	s, err := newState(p)
	if err != nil {
		return false, err
	}
	for _, f := range cubetrainer.Flags {
		if flags&f != 0 && !s.check(f) {
			return false, nil
		}
	}
	return true, nil
}

// Satisfied returns the mask of individually satisfied flags.
func Satisfied(p cube.Pattern) (cubetrainer.SolvedState, error) {
	s, err := newState(p)
	if err != nil {
		return 0, err
	}
	var out cubetrainer.SolvedState
	for _, f := range cubetrainer.Flags {
		if s.check(f) {
			out |= f
		}
	}
	return out, nil
}

// Labels returns the label of every slot, edges then corners then centers.
func Labels(p cube.Pattern) ([]string, error) {
	s, err := newState(p)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, orbit := range s.labels {
		out = append(out, orbit...)
	}
	return out, nil
}

// ReidString joins the slot labels with spaces.
// Example: "UF UR UB UL DF DR DB DL FR FL BR BL UFR URB ... U L F R B D"
func ReidString(p cube.Pattern) (string, error) {
	labels, err := Labels(p)
	if err != nil {
		return "", err
	}
	return strings.Join(labels, " "), nil
}
