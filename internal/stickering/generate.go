package stickering

import (
	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
)

var pairFaces = []struct {
	flag          cubetrainer.SolvedState
	first, second cubetrainer.Base
}{
	{cubetrainer.F2LFR, cubetrainer.BaseF, cubetrainer.BaseR},
	{cubetrainer.F2LFL, cubetrainer.BaseF, cubetrainer.BaseL},
	{cubetrainer.F2LBR, cubetrainer.BaseB, cubetrainer.BaseR},
	{cubetrainer.F2LBL, cubetrainer.BaseB, cubetrainer.BaseL},
}

func turn(b cubetrainer.Base) cubetrainer.Move {
	return cubetrainer.Move{Base: b, Turn: cubetrainer.CW}
}

// Generate builds the mask for the regions in flags. Pieces outside those
// regions are ignored; centers are always regular. When the pattern is held
// in a rotated orientation the mask is carried through the rotations that
// separate it from the default orientation, so it lines up with the pieces
// as seen.
func Generate(p cube.Pattern, flags cubetrainer.SolvedState) Mask {
	puzzle := p.Puzzle
	m := NewManager(puzzle)

	if flags&cubetrainer.Full != 0 {
		return New(puzzle).Set(m.All(), Regular).Mask()
	}

	edges := m.OrbitPrefix("EDGE")
	corners := m.OrbitPrefix("CORNER")
	lastLayer := m.Move(turn(cubetrainer.BaseU))

	// Each region gets its own mask over a base where only centers show.
	base := func() *Stickering {
		return New(puzzle).Set(m.All(), Ignored).Set(m.OrbitPrefix("CENTER"), Regular)
	}
	region := func(set PieceSet, st PieceStickering) Mask {
		return base().Set(set, st).Mask()
	}

	masks := []Mask{base().Mask()}
	if flags&cubetrainer.Cross != 0 {
		masks = append(masks, region(m.And(m.Move(turn(cubetrainer.BaseD)), edges), Regular))
	}
	for _, pf := range pairFaces {
		if flags&pf.flag == 0 {
			continue
		}
		both := m.And(m.Moves(turn(pf.first), turn(pf.second))...)
		masks = append(masks, region(m.Or(
			m.And(both, edges),
			m.And(both, corners, m.Not(lastLayer)),
		), Regular))
	}
	if flags&cubetrainer.UEdgeFaces != 0 {
		masks = append(masks, region(m.And(lastLayer, edges), IgnoreNonPrimary))
	}
	if flags&cubetrainer.UCornerFaces != 0 {
		masks = append(masks, region(m.And(lastLayer, corners), IgnoreNonPrimary))
	}

	rotations, ok := rotationsFromDefault(p)
	if !ok {
		return New(puzzle).Set(m.All(), Ignored).Mask()
	}
	return Combine(masks...).Rotate(puzzle, rotations)
}

// rotationsFromDefault finds the whole-cube rotations that bring the U and
// L centers of p back to their home slots: up to four z' then up to three
// y', or when z' cannot fix U, up to three x' then y'. The result is
// ordered x', z', y'.
func rotationsFromDefault(p cube.Pattern) (cubetrainer.Alg, bool) {
	home := p.Puzzle.DefaultPattern().Orbits[cube.Centers].Pieces
	at := func(q cube.Pattern, slot int) bool {
		return q.Orbits[cube.Centers].Pieces[slot] == home[slot]
	}

	var z int
	q := p
	found := at(q, 0)
	for z = 0; !found && z < 4; {
		z++
		q, _ = q.ApplyMove(cubetrainer.ZPrime)
		found = at(q, 0)
	}

	var x int
	if !found || z == 4 {
		z = 0
		q = p
		for !at(q, 0) && x < 3 {
			x++
			q, _ = q.ApplyMove(cubetrainer.XPrime)
		}
		if !at(q, 0) {
			return nil, false
		}
	}

	var y int
	for !at(q, 1) && y < 3 {
		y++
		q, _ = q.ApplyMove(cubetrainer.YPrime)
	}
	if !at(q, 1) {
		return nil, false
	}

	var alg cubetrainer.Alg
	for i := 0; i < x; i++ {
		alg = append(alg, cubetrainer.XPrime)
	}
	for i := 0; i < z; i++ {
		alg = append(alg, cubetrainer.ZPrime)
	}
	for i := 0; i < y; i++ {
		alg = append(alg, cubetrainer.YPrime)
	}
	return alg, true
}
