package cube

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SeamusWaldron/cubetrainer"
)

func mustPattern(t *testing.T, s string) Pattern {
	t.Helper()
	pat, err := New().DefaultPattern().ApplyString(s)
	if err != nil {
		t.Fatalf("ApplyString(%q): %v", s, err)
	}
	return pat
}

func TestDefaultPatternIsIdentity(t *testing.T) {
	pat := New().DefaultPattern()
	for o, orb := range pat.Orbits {
		for i := range orb.Pieces {
			if orb.Pieces[i] != i || orb.Orientation[i] != 0 {
				t.Errorf("orbit %d slot %d = (%d, %d)", o, i, orb.Pieces[i], orb.Orientation[i])
			}
		}
	}
}

func TestSingleMoveChangesPattern(t *testing.T) {
	def := New().DefaultPattern()
	for _, b := range cubetrainer.Bases {
		pat, err := def.ApplyMove(cubetrainer.Move{Base: b, Turn: cubetrainer.CW})
		if err != nil {
			t.Fatalf("%s: %v", b, err)
		}
		if pat.Equal(def) {
			t.Errorf("%s should change the pattern", b)
		}
	}
}

func TestFourQuarters_ReturnToStart(t *testing.T) {
	def := New().DefaultPattern()
	for _, b := range cubetrainer.Bases {
		m := cubetrainer.Move{Base: b, Turn: cubetrainer.CW}
		pat := def
		for i := 0; i < 4; i++ {
			var err error
			if pat, err = pat.ApplyMove(m); err != nil {
				t.Fatal(err)
			}
		}
		if !pat.Equal(def) {
			t.Errorf("%s x 4 should return to solved", b)
		}
	}
}

func TestMoveThenInverse_IsIdentity(t *testing.T) {
	def := New().DefaultPattern()
	for _, b := range cubetrainer.Bases {
		for _, turn := range []cubetrainer.Turn{cubetrainer.CW, cubetrainer.CCW, cubetrainer.Double} {
			m := cubetrainer.Move{Base: b, Turn: turn}
			pat, _ := def.ApplyAlg(cubetrainer.Alg{m, m.Inverse()})
			if !pat.Equal(def) {
				t.Errorf("%s %s should be identity", m, m.Inverse())
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	pat := mustPattern(t, "R U R' U' R U R' U' R U R' U' R U R' U' R U R' U' R U R' U'")
	if !pat.Equal(New().DefaultPattern()) {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(pat.Net().String())
	}
}

func TestSliceEqualsOuterLayers(t *testing.T) {
	// M = L' R x', E = D' U y', S = F' B z
	tests := []struct{ slice, equiv string }{
		{"M", "L' R x'"},
		{"E", "D' U y'"},
		{"S", "F' B z"},
		{"r", "L x"},
		{"u", "D y"},
		{"f", "B z"},
	}
	for _, tt := range tests {
		a, b := mustPattern(t, tt.slice), mustPattern(t, tt.equiv)
		if !a.Equal(b) {
			t.Errorf("%s != %s", tt.slice, tt.equiv)
		}
	}
}

func TestKnownPatterns(t *testing.T) {
	tests := []struct {
		alg  string
		want []Orbit
	}{
		{
			alg: "y R U R'",
			want: []Orbit{
				{Pieces: []int{10, 2, 0, 1, 5, 6, 7, 4, 3, 8, 11, 9}, Orientation: []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1}},
				{Pieces: []int{3, 2, 0, 7, 1, 4, 5, 6}, Orientation: []int{2, 0, 0, 2, 2, 0, 0, 0}},
				{Pieces: []int{0, 2, 3, 4, 1, 5}, Orientation: []int{0, 0, 0, 0, 0, 0}},
			},
		},
		{
			alg: "R U R' U R U2 R'",
			want: []Orbit{
				{Pieces: []int{0, 3, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11}, Orientation: make([]int, 12)},
				{Pieces: []int{2, 3, 0, 1, 4, 5, 6, 7}, Orientation: []int{1, 0, 1, 1, 0, 0, 0, 0}},
				{Pieces: []int{0, 1, 2, 3, 4, 5}, Orientation: make([]int, 6)},
			},
		},
	}
	for _, tt := range tests {
		got := mustPattern(t, tt.alg)
		if diff := cmp.Diff(tt.want, got.Orbits); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.alg, diff)
		}
	}
}

func TestApplyDoesNotModifyReceiver(t *testing.T) {
	def := New().DefaultPattern()
	if _, err := def.ApplyString("R U F"); err != nil {
		t.Fatal(err)
	}
	if !def.Equal(New().DefaultPattern()) {
		t.Error("ApplyString modified the receiver")
	}
}

func TestApplyString_InvalidMove(t *testing.T) {
	if _, err := New().DefaultPattern().ApplyString("R Q"); err == nil {
		t.Error("expected error for invalid move")
	}
}

func TestNewPattern_Validates(t *testing.T) {
	p := New()
	good := p.DefaultPattern().Orbits
	if _, err := NewPattern(p, good); err != nil {
		t.Fatalf("NewPattern(default): %v", err)
	}

	short := []Orbit{good[0], good[1]}
	if _, err := NewPattern(p, short); err == nil {
		t.Error("expected error for missing orbit")
	}

	dup := []Orbit{
		{Pieces: []int{0, 0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, Orientation: make([]int, 12)},
		good[1], good[2],
	}
	if _, err := NewPattern(p, dup); err == nil {
		t.Error("expected error for repeated piece")
	}

	twisted := []Orbit{
		good[0],
		{Pieces: []int{0, 1, 2, 3, 4, 5, 6, 7}, Orientation: []int{3, 0, 0, 0, 0, 0, 0, 0}},
		good[2],
	}
	if _, err := NewPattern(p, twisted); err == nil {
		t.Error("expected error for out-of-range orientation")
	}
}

func TestLabel(t *testing.T) {
	pat := mustPattern(t, "R")
	tests := []struct {
		orbit, slot int
		want        string
	}{
		{Corners, 0, "FDR"},
		{Corners, 1, "FRU"},
		{Edges, 1, "FR"},
		{Edges, 0, "UF"},
		{Centers, 3, "R"},
	}
	for _, tt := range tests {
		if got := pat.Label(tt.orbit, tt.slot); got != tt.want {
			t.Errorf("Label(%d, %d) = %q, want %q", tt.orbit, tt.slot, got, tt.want)
		}
	}
}

func TestNet_Solved(t *testing.T) {
	n := New().DefaultPattern().Net()
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			if n.Facelets[face][i] != Color(face) {
				t.Errorf("face %s facelet %d = %s", face, i, n.Facelets[face][i])
			}
		}
	}
}

func TestNet_AfterR(t *testing.T) {
	n := mustPattern(t, "R").Net()
	for _, i := range []int{2, 5, 8} {
		if n.Facelets[U][i] != Green {
			t.Errorf("U%d = %s, want G", i, n.Facelets[U][i])
		}
		if n.Facelets[F][i] != Yellow {
			t.Errorf("F%d = %s, want Y", i, n.Facelets[F][i])
		}
	}
	for _, i := range []int{0, 3, 6} {
		if n.Facelets[U][i] != White {
			t.Errorf("U%d = %s, want W", i, n.Facelets[U][i])
		}
	}
	for i := 0; i < 9; i++ {
		if n.Facelets[R][i] != Red {
			t.Errorf("R%d = %s, want R", i, n.Facelets[R][i])
		}
	}
}

func TestStickers_CentersAndCorners(t *testing.T) {
	st := New().Stickers()
	if s := st[U][4]; s.Orbit != Centers || s.Slot != 0 {
		t.Errorf("U center = %+v", s)
	}
	if s := st[U][8]; s.Orbit != Corners || s.Slot != 0 || s.Facelet != 0 {
		t.Errorf("U8 = %+v, want UFR facelet 0", s)
	}
	if s := st[F][2]; s.Orbit != Corners || s.Slot != 0 || s.Facelet != 1 {
		t.Errorf("F2 = %+v, want UFR facelet 1", s)
	}
	if s := st[R][0]; s.Orbit != Corners || s.Slot != 0 || s.Facelet != 2 {
		t.Errorf("R0 = %+v, want UFR facelet 2", s)
	}
}

func TestPieceFacelet_FollowsPiece(t *testing.T) {
	pat := mustPattern(t, "R")
	st := pat.Puzzle.Stickers()
	tests := []struct {
		name           string
		sticker        Sticker
		piece, facelet int
	}{
		{"U8 shows the D-R-F corner's F sticker", st[U][8], 4, 2},
		{"F2 shows the D-R-F corner's D sticker", st[F][2], 4, 0},
		{"U0 is untouched", st[U][0], 2, 0},
		{"F5 shows the D-R edge's D sticker", st[F][5], 5, 0},
	}
	for _, tt := range tests {
		piece, facelet := pat.PieceFacelet(tt.sticker)
		if piece != tt.piece || facelet != tt.facelet {
			t.Errorf("%s: got piece %d facelet %d, want %d %d", tt.name, piece, facelet, tt.piece, tt.facelet)
		}
	}
}
