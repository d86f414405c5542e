package trainer

import (
	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/config"
)

// preorientationLength is the number of random rotations drawn under full
// colour neutrality.
const preorientationLength = 6

// quarters returns m turned k more times in its own direction, or false
// when the result is the identity.
func quarters(m cubetrainer.Move, k int) (cubetrainer.Move, bool) {
	var turn cubetrainer.Turn
	switch (m.Turn.Quarters() * k) % 4 {
	case 0:
		return cubetrainer.Move{}, false
	case 1:
		turn = cubetrainer.CW
	case 2:
		turn = cubetrainer.Double
	default:
		turn = cubetrainer.CCW
	}
	return cubetrainer.Move{Base: m.Base, Turn: turn}, true
}

func drawAUF(s config.Settings, rnd Rand) int {
	if !s.RandomAUF {
		return 0
	}
	return rnd.IntN(4)
}

func drawYs(s config.Settings, rnd Rand) int {
	if !s.RandomYs {
		return 0
	}
	return rnd.IntN(4)
}

func drawPreRotations(s config.Settings, rnd Rand) int {
	if s.RandomRotations1 == "" {
		return 0
	}
	return rnd.IntN(4)
}

func drawMirror(enabled, randomized bool, rnd Rand) bool {
	switch {
	case !enabled:
		return false
	case randomized:
		return rnd.IntN(2) == 1
	default:
		return true
	}
}

func drawPreorientation(s config.Settings, rnd Rand) cubetrainer.Alg {
	if !s.FullColourNeutrality {
		return nil
	}
	alg := make(cubetrainer.Alg, preorientationLength)
	for i := range alg {
		alg[i] = cubetrainer.Rotations[rnd.IntN(len(cubetrainer.Rotations))]
	}
	return alg
}

// drawSetup makes every random choice for a newly selected case. The draw
// order is fixed so a seeded Rand reproduces a session.
func drawSetup(s config.Settings, rnd Rand) Setup {
	return Setup{
		AUFs:           drawAUF(s, rnd),
		Ys:             drawYs(s, rnd),
		PreRotations:   drawPreRotations(s, rnd),
		MirrorM:        drawMirror(s.MirrorAcrossM, s.RandomizeMirrorAcrossM, rnd),
		MirrorS:        drawMirror(s.MirrorAcrossS, s.RandomizeMirrorAcrossS, rnd),
		Preorientation: drawPreorientation(s, rnd),
	}
}

// redraw replaces only the choices that depend on the changed fields.
func redraw(setup Setup, s config.Settings, fields []config.Field, rnd Rand) Setup {
	for _, f := range fields {
		switch f {
		case config.FieldRandomAUF:
			setup.AUFs = drawAUF(s, rnd)
		case config.FieldRandomYs:
			setup.Ys = drawYs(s, rnd)
		case config.FieldFullColourNeutrality, config.FieldFirstRotation, config.FieldRandomRotations1:
			setup.PreRotations = drawPreRotations(s, rnd)
			setup.Preorientation = drawPreorientation(s, rnd)
		case config.FieldMirrorAcrossM, config.FieldRandomizeMirrorAcrossM:
			setup.MirrorM = drawMirror(s.MirrorAcrossM, s.RandomizeMirrorAcrossM, rnd)
		case config.FieldMirrorAcrossS, config.FieldRandomizeMirrorAcrossS:
			setup.MirrorS = drawMirror(s.MirrorAcrossS, s.RandomizeMirrorAcrossS, rnd)
		}
	}
	return setup
}

// affectsSetup reports whether any field changes the setup alg or target.
func affectsSetup(fields []config.Field) bool {
	for _, f := range fields {
		switch f {
		case config.FieldRandomAUF, config.FieldRandomYs,
			config.FieldFullColourNeutrality, config.FieldFirstRotation, config.FieldRandomRotations1,
			config.FieldMirrorAcrossM, config.FieldRandomizeMirrorAcrossM,
			config.FieldMirrorAcrossS, config.FieldRandomizeMirrorAcrossS:
			return true
		}
	}
	return false
}

// preorientation returns the rotations applied before the case.
func preorientation(setup Setup, s config.Settings) cubetrainer.Alg {
	if s.FullColourNeutrality {
		return setup.Preorientation
	}
	var alg cubetrainer.Alg
	if m, ok, err := cubetrainer.ParseRotation(s.FirstRotation); ok && err == nil {
		alg = append(alg, m)
	}
	if m, ok, err := cubetrainer.ParseRotation(s.RandomRotations1); ok && err == nil {
		if r, ok := quarters(m, setup.PreRotations); ok {
			alg = append(alg, r)
		}
	}
	return alg
}

// SetupAlg builds the moves that take a solved cube to the case:
// preorientation, then the inverse of the (possibly mirrored) alg, then the
// AUF and y rotations.
func SetupAlg(alg cubetrainer.Alg, setup Setup, s config.Settings) cubetrainer.Alg {
	if setup.MirrorM {
		alg = alg.MirrorM()
	}
	if setup.MirrorS {
		alg = alg.MirrorS()
	}
	out := preorientation(setup, s).Concat(alg.Invert())
	if m, ok := quarters(cubetrainer.U, setup.AUFs); ok {
		out = append(out, m)
	}
	if m, ok := quarters(cubetrainer.Y, setup.Ys); ok {
		out = append(out, m)
	}
	return out
}

// EffectiveTarget remaps the target through the mirrors and y rotations of
// the setup so the pair flags name the slots the pairs actually end up in.
func EffectiveTarget(target cubetrainer.SolvedState, setup Setup) cubetrainer.SolvedState {
	if setup.MirrorM {
		target = target.MirrorM()
	}
	if setup.MirrorS {
		target = target.MirrorS()
	}
	return target.RotateY(setup.Ys)
}
