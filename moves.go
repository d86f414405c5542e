package cubetrainer

// Whole-cube rotations used for pre-orientation.
var (
	X      = Move{Base: BaseX, Turn: CW}
	XPrime = Move{Base: BaseX, Turn: CCW}
	X2     = Move{Base: BaseX, Turn: Double}

	Y      = Move{Base: BaseY, Turn: CW}
	YPrime = Move{Base: BaseY, Turn: CCW}
	Y2     = Move{Base: BaseY, Turn: Double}

	Z      = Move{Base: BaseZ, Turn: CW}
	ZPrime = Move{Base: BaseZ, Turn: CCW}
	Z2     = Move{Base: BaseZ, Turn: Double}
)

// Rotations is the pool random colour-neutral pre-orientations are drawn from.
var Rotations = []Move{X, X2, XPrime, Y, Y2, YPrime, Z, Z2, ZPrime}

// U is the top-face turn used for AUF.
var U = Move{Base: BaseU, Turn: CW}

// Sune: R U R' U R U2 R'
var Sune = MustParseAlg("R U R' U R U2 R'")

// TPerm is the T permutation.
var TPerm = MustParseAlg("R U R' U' R' F R2 U' R' U' R U R' F'")

// ParseRotation parses a single whole-cube rotation token such as "y'".
// An empty string yields ok == false with no error.
func ParseRotation(s string) (m Move, ok bool, err error) {
	if s == "" {
		return Move{}, false, nil
	}
	m, err = ParseMove(s)
	if err != nil {
		return Move{}, false, err
	}
	if !m.IsRotation() {
		return Move{}, false, ErrNotRotation
	}
	return m, true, nil
}
