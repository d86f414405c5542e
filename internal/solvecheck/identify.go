package solvecheck

import (
	"fmt"

	"github.com/SeamusWaldron/cubetrainer/internal/cube"
)

// Piece identifies a piece and twist by its label.
type Piece struct {
	Orbit       int
	Piece       int
	Orientation int
}

var pieceByLabel = buildPieceMap(cube.New())

// buildPieceMap indexes every rotation of every piece name. Corner labels
// are also indexed with their last two letters swapped so that either
// reading direction resolves.
func buildPieceMap(p *cube.Puzzle) map[string]Piece {
	m := make(map[string]Piece)
	for o, def := range p.Orbits {
		for idx, name := range def.PieceNames {
			for i := 0; i < def.NumOrientations; i++ {
				label := name[i:] + name[:i]
				m[label] = Piece{Orbit: o, Piece: idx, Orientation: i}
				if def.NumOrientations == 3 {
					alt := label[:1] + label[2:3] + label[1:2]
					m[alt] = Piece{Orbit: o, Piece: idx, Orientation: i}
				}
			}
		}
	}
	return m
}

// Identify resolves a slot label such as "RUF" to its piece and twist.
func Identify(label string) (Piece, bool) {
	p, ok := pieceByLabel[label]
	return p, ok
}

// Placement is a piece that is away from its home slot or twisted in it.
type Placement struct {
	Piece string // home name of the piece
	Slot  string
	Twist int
}

func (p Placement) String() string {
	if p.Twist == 0 {
		return p.Piece + " in " + p.Slot
	}
	return fmt.Sprintf("%s in %s+%d", p.Piece, p.Slot, p.Twist)
}

// Misplaced lists every piece not sitting untwisted in its home slot, in
// slot order: edges, corners, then centers.
func Misplaced(p cube.Pattern) ([]Placement, error) {
	s, err := newState(p)
	if err != nil {
		return nil, err
	}
	var out []Placement
	for o, labels := range s.labels {
		names := s.def[o].PieceNames
		for slot, label := range labels {
			pc, ok := Identify(label)
			if !ok {
				return nil, fmt.Errorf("failed to identify %q in slot %s", label, names[slot])
			}
			if pc.Piece == slot && pc.Orientation == 0 {
				continue
			}
			out = append(out, Placement{Piece: names[pc.Piece], Slot: names[slot], Twist: pc.Orientation})
		}
	}
	return out, nil
}
