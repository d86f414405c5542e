package cubetrainer

import "errors"

// Sentinel errors for the cubetrainer package.
var (
	// Parsing errors
	ErrInvalidMove        = errors.New("cubetrainer: invalid move")
	ErrNotRotation        = errors.New("cubetrainer: move is not a whole-cube rotation")
	ErrInvalidSolvedState = errors.New("cubetrainer: invalid solved state")

	// Alg set errors
	ErrEmptyAlgSet = errors.New("cubetrainer: alg set has no entries")
)
