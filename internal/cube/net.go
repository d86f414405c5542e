package cube

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Faces in net order.
var Faces = []Face{U, D, F, B, R, L}

const faceLetters = "UDFBRL"

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceLetters) {
		return "?"
	}
	return faceLetters[f : f+1]
}

// Letter returns the face letter used in piece names.
func (f Face) Letter() byte {
	return faceLetters[f]
}

// colorOf returns the solved color of the face named by letter.
func colorOf(letter byte) Color {
	return Color(strings.IndexByte(faceLetters, letter))
}

// Sticker locates one facelet of the net: the slot it belongs to and the
// facelet index within the slot's name.
type Sticker struct {
	Orbit   int
	Slot    int
	Facelet int
}

// Stickers maps every net position to its slot facelet. Each face has 9
// facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen from above with B at the top, D from below with F at the top,
// and the side faces from outside with U at the top.
func (p *Puzzle) Stickers() [6][9]Sticker {
	var out [6][9]Sticker
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			v := netPosition(face, i/3, i%3)
			o, slot, ok := p.slotAt(v)
			if !ok {
				panic("cube: net position outside the puzzle")
			}
			name := p.Orbits[o].PieceNames[slot]
			out[face][i] = Sticker{Orbit: o, Slot: slot, Facelet: strings.IndexByte(name, face.Letter())}
		}
	}
	return out
}

func netPosition(f Face, r, c int) vec {
	switch f {
	case U:
		return vec{c - 1, 1, r - 1}
	case D:
		return vec{c - 1, -1, 1 - r}
	case F:
		return vec{c - 1, 1 - r, 1}
	case B:
		return vec{1 - c, 1 - r, -1}
	case R:
		return vec{1, 1 - r, 1 - c}
	default:
		return vec{-1, 1 - r, c - 1}
	}
}

// PieceFacelet returns the piece sitting at s in pat and the index of the
// visible sticker within that piece's own name.
func (pat Pattern) PieceFacelet(s Sticker) (piece, facelet int) {
	orb := pat.Orbits[s.Orbit]
	n := len(pat.Puzzle.Orbits[s.Orbit].PieceNames[s.Slot])
	return orb.Pieces[s.Slot], (s.Facelet + orb.Orientation[s.Slot]) % n
}

// Net is the 54-sticker view of a pattern.
// Facelets[face][position] = color
type Net struct {
	Facelets [6][9]Color
}

// Net returns the sticker colors of the pattern.
func (pat Pattern) Net() Net {
	var n Net
	stickers := pat.Puzzle.Stickers()
	for _, face := range Faces {
		for i, s := range stickers[face] {
			piece, facelet := pat.PieceFacelet(s)
			n.Facelets[face][i] = colorOf(pat.Puzzle.Orbits[s.Orbit].PieceNames[piece][facelet])
		}
	}
	return n
}

// String returns a text representation of the net.
func (n Net) String() string {
	var sb strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(n.Facelets[U][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				sb.WriteString(n.Facelets[face][row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(n.Facelets[D][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
