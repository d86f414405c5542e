package trainer

import (
	"testing"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/config"
)

// seqRand returns vals in order, reduced modulo n, then zeros.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i] % n
	r.i++
	return v
}

func TestQuarters(t *testing.T) {
	tests := []struct {
		move string
		k    int
		want string
		ok   bool
	}{
		{"U", 0, "", false},
		{"U", 1, "U", true},
		{"U", 2, "U2", true},
		{"U", 3, "U'", true},
		{"y'", 1, "y'", true},
		{"y'", 3, "y", true},
		{"x2", 2, "", false},
	}
	for _, tt := range tests {
		got, ok := quarters(cubetrainer.MustParseMove(tt.move), tt.k)
		if ok != tt.ok {
			t.Errorf("quarters(%s, %d) ok = %v, want %v", tt.move, tt.k, ok, tt.ok)
			continue
		}
		if ok && got.Notation() != tt.want {
			t.Errorf("quarters(%s, %d) = %s, want %s", tt.move, tt.k, got, tt.want)
		}
	}
}

func TestSetupAlg(t *testing.T) {
	alg := cubetrainer.MustParseAlg("R U R'")
	tests := []struct {
		name     string
		setup    Setup
		settings config.Settings
		want     string
	}{
		{"plain", Setup{}, config.Default(), "R U' R'"},
		{"auf and y", Setup{AUFs: 2, Ys: 3}, config.Default(), "R U' R' U2 y'"},
		{"mirror M", Setup{MirrorM: true, AUFs: 2, Ys: 3}, config.Default(), "L' U L U2 y'"},
		{"mirror S", Setup{MirrorS: true}, config.Default(), "R' U R"},
		{
			"first and repeated rotation",
			Setup{PreRotations: 2},
			config.Settings{FirstRotation: "x", RandomRotations1: "y"},
			"x y2 R U' R'",
		},
		{
			"repeated rotation cancels",
			Setup{PreRotations: 0},
			config.Settings{RandomRotations1: "y"},
			"R U' R'",
		},
		{
			"colour neutral",
			Setup{Preorientation: cubetrainer.MustParseAlg("x y2 z' x x2 y")},
			config.Settings{FullColourNeutrality: true, FirstRotation: "z"},
			"x y2 z' x x2 y R U' R'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetupAlg(alg, tt.setup, tt.settings).String()
			if got != tt.want {
				t.Errorf("SetupAlg = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawSetup_Order(t *testing.T) {
	s := config.Settings{
		RandomAUF:              true,
		RandomYs:               true,
		RandomRotations1:       "y",
		MirrorAcrossM:          true,
		RandomizeMirrorAcrossM: true,
		MirrorAcrossS:          true,
		RandomizeMirrorAcrossS: true,
	}
	got := drawSetup(s, &seqRand{vals: []int{2, 3, 1, 1, 0}})
	want := Setup{AUFs: 2, Ys: 3, PreRotations: 1, MirrorM: true, MirrorS: false}
	if got.AUFs != want.AUFs || got.Ys != want.Ys || got.PreRotations != want.PreRotations ||
		got.MirrorM != want.MirrorM || got.MirrorS != want.MirrorS || got.Preorientation != nil {
		t.Errorf("drawSetup = %+v, want %+v", got, want)
	}
}

func TestDrawSetup_Disabled(t *testing.T) {
	rnd := &seqRand{vals: []int{3, 3, 3, 1, 1}}
	got := drawSetup(config.Default(), rnd)
	if got.AUFs != 0 || got.Ys != 0 || got.PreRotations != 0 || got.MirrorM || got.MirrorS {
		t.Errorf("drawSetup = %+v, want zero", got)
	}
	if rnd.i != 0 {
		t.Errorf("consumed %d random values, want 0", rnd.i)
	}
}

func TestDrawSetup_ForcedMirror(t *testing.T) {
	rnd := &seqRand{}
	got := drawSetup(config.Settings{MirrorAcrossM: true, MirrorAcrossS: true}, rnd)
	if !got.MirrorM || !got.MirrorS {
		t.Errorf("drawSetup = %+v, want both mirrors", got)
	}
	if rnd.i != 0 {
		t.Errorf("consumed %d random values, want 0", rnd.i)
	}
}

func TestDrawSetup_ColourNeutral(t *testing.T) {
	got := drawSetup(config.Settings{FullColourNeutrality: true}, &seqRand{vals: []int{0, 1, 2, 3, 4, 8}})
	if s := got.Preorientation.String(); s != "x x2 x' y y2 z'" {
		t.Errorf("preorientation = %q", s)
	}
}

func TestRedraw_OnlyChangedFields(t *testing.T) {
	s := config.Settings{RandomAUF: true, RandomYs: true}
	setup := Setup{AUFs: 1, Ys: 2}
	got := redraw(setup, s, []config.Field{config.FieldRandomAUF}, &seqRand{vals: []int{3}})
	if got.AUFs != 3 || got.Ys != 2 {
		t.Errorf("redraw = %+v, want AUFs 3 and Ys 2", got)
	}
}

func TestEffectiveTarget(t *testing.T) {
	tests := []struct {
		target cubetrainer.SolvedState
		setup  Setup
		want   cubetrainer.SolvedState
	}{
		{cubetrainer.Full, Setup{MirrorM: true, Ys: 1}, cubetrainer.Full},
		{cubetrainer.F2LFR, Setup{}, cubetrainer.F2LFR},
		{cubetrainer.F2LFR, Setup{MirrorM: true}, cubetrainer.F2LFL},
		{cubetrainer.F2LFR, Setup{MirrorS: true}, cubetrainer.F2LBR},
		{cubetrainer.F2LFR, Setup{MirrorM: true, MirrorS: true}, cubetrainer.F2LBL},
		{cubetrainer.F2LFR, Setup{Ys: 1}, cubetrainer.F2LFL},
		{cubetrainer.Cross | cubetrainer.F2LFR, Setup{MirrorM: true, Ys: 1}, cubetrainer.Cross | cubetrainer.F2LBL},
		{cubetrainer.OLL, Setup{MirrorS: true, Ys: 3}, cubetrainer.OLL},
	}
	for _, tt := range tests {
		if got := EffectiveTarget(tt.target, tt.setup); got != tt.want {
			t.Errorf("EffectiveTarget(%s, %+v) = %s, want %s", tt.target, tt.setup, got, tt.want)
		}
	}
}
