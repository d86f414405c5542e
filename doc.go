// Package cubetrainer provides the notation model for a 3x3x3 algorithm
// trainer: moves, algorithms, mirror and inverse transforms, and the solved
// state bitmask used to decide when a practised case is finished.
//
// # Moves and algorithms
//
// Moves use standard notation over 18 letters: outer faces (R L U D F B),
// slices (M S E), wide turns (r l u d f b) and rotations (x y z), each with an
// optional ', 2 or 3 modifier:
//
//	alg, err := cubetrainer.ParseAlg("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(alg.MirrorM()) // L' U' L U
//	fmt.Println(alg.Invert())  // U R U' R'
//
// # Solved states
//
// A SolvedState names the region of the cube that must be solved:
//
//	s, _ := cubetrainer.ParseSolvedState("CROSS | F2LFR")
//	fmt.Println(s.Has(cubetrainer.Cross)) // true
//	fmt.Println(s.MirrorM())              // CROSS|F2LFL
//
// Composite names are F2L (cross plus four pairs), EOLL (F2L plus oriented
// top edges) and OLL (EOLL plus oriented top corners).
//
// # Training
//
// The internal packages build on this model: internal/cube applies moves to a
// cubie-level puzzle state, internal/solvecheck evaluates solved states,
// internal/stickering derives render masks and internal/trainer runs the
// practice loop against a GoCube or a simulated device.
package cubetrainer
