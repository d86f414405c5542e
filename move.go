package cubetrainer

import (
	"fmt"
	"strings"
)

// Base is the letter of a move: an outer face, a wide turn, a slice or a
// whole-cube rotation.
type Base string

const (
	BaseR Base = "R" // Right
	BaseL Base = "L" // Left
	BaseU Base = "U" // Up
	BaseD Base = "D" // Down
	BaseF Base = "F" // Front
	BaseB Base = "B" // Back

	BaseM Base = "M" // Middle slice, turns like L
	BaseS Base = "S" // Standing slice, turns like F
	BaseE Base = "E" // Equator slice, turns like D

	BaseRw Base = "r" // Right two layers
	BaseLw Base = "l" // Left two layers
	BaseUw Base = "u" // Up two layers
	BaseDw Base = "d" // Down two layers
	BaseFw Base = "f" // Front two layers
	BaseBw Base = "b" // Back two layers

	BaseX Base = "x" // Whole cube, turns like R
	BaseY Base = "y" // Whole cube, turns like U
	BaseZ Base = "z" // Whole cube, turns like F
)

// Bases lists every legal move letter.
var Bases = []Base{
	BaseR, BaseL, BaseU, BaseD, BaseF, BaseB,
	BaseM, BaseS, BaseE,
	BaseRw, BaseLw, BaseUw, BaseDw, BaseFw, BaseBw,
	BaseX, BaseY, BaseZ,
}

var validBases = func() map[Base]bool {
	m := make(map[Base]bool, len(Bases))
	for _, b := range Bases {
		m[b] = true
	}
	return m
}()

// Valid reports whether b is in the move alphabet.
func (b Base) Valid() bool {
	return validBases[b]
}

// Turn represents the direction and magnitude of a move.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Quarters returns the number of clockwise quarter turns (1, 2 or 3).
func (t Turn) Quarters() int {
	switch t {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// Move is a single notation token.
type Move struct {
	Base Base
	Turn Turn
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, M', x2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Base) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// IsRotation reports whether the move turns the whole cube.
func (m Move) IsRotation() bool {
	return m.Base == BaseX || m.Base == BaseY || m.Base == BaseZ
}

// Merge combines two moves with the same base into one.
// Returns nil if the bases differ or if the moves cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Base != other.Base {
		return nil
	}
	var turn Turn
	switch (m.Turn.Quarters() + other.Turn.Quarters()) % 4 {
	case 0:
		return nil
	case 1:
		turn = CW
	case 2:
		turn = Double
	default:
		turn = CCW
	}
	return &Move{Base: m.Base, Turn: turn}
}

// ParseMove parses a single notation token into a Move.
// Accepted modifiers are none, ', 2, 2' and 3. A trailing 3 is the same as
// a prime and 2' is the same as 2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidMove)
	}

	base := Base(s[:1])
	if !base.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	turn := CW
	switch s[1:] {
	case "":
	case "'", "3":
		turn = CCW
	case "2", "2'":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	return Move{Base: base, Turn: turn}, nil
}

// MustParseMove is like ParseMove but panics on error.
// Intended for package-level tables.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}
