package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/SeamusWaldron/cubetrainer"
	"github.com/SeamusWaldron/cubetrainer/internal/cube"
	"github.com/SeamusWaldron/cubetrainer/internal/stickering"
)

func TestNet_EmptyMaskMatchesPlainNet(t *testing.T) {
	p := cube.New()
	pat, err := p.DefaultPattern().ApplyString("R U R' F2")
	if err != nil {
		t.Fatal(err)
	}
	got := New(p, WithPlain()).Net(pat, stickering.Mask{})
	if diff := cmp.Diff(pat.Net().String(), got); diff != "" {
		t.Errorf("net mismatch (-want +got):\n%s", diff)
	}
}

func TestNet_CrossMask(t *testing.T) {
	p := cube.New()
	pat := p.DefaultPattern()
	mask := stickering.Generate(pat, cubetrainer.Cross)

	lines := strings.Split(New(p, WithPlain()).Net(pat, mask), "\n")
	want := []string{
		"      - - - ",
		"      - W - ",
		"      - - - ",
		"- - - - - - - - - - - - ",
		"- O - - G - - R - - B - ",
		"- O - - G - - R - - B - ",
		"      - Y - ",
		"      Y Y Y ",
		"      - Y - ",
		"",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("cross net mismatch (-want +got):\n%s", diff)
	}
}

func TestNet_Hints(t *testing.T) {
	p := cube.New()
	pat := p.DefaultPattern()
	mask := stickering.Generate(pat, cubetrainer.Cross)

	first := strings.SplitN(New(p, WithPlain(), WithHints(true)).Net(pat, mask), "\n", 2)[0]
	if first != "      w w w " {
		t.Errorf("first row = %q", first)
	}
}

func TestNet_StyledHasSameGlyphs(t *testing.T) {
	p := cube.New()
	pat := p.DefaultPattern()
	mask := stickering.Generate(pat, cubetrainer.F2L)

	plain := New(p, WithPlain()).Net(pat, mask)
	styled := New(p).Net(pat, mask)
	if got := ansi.Strip(styled); got != plain {
		t.Errorf("styled glyphs differ:\n%s\nwant:\n%s", got, plain)
	}
}

// faces splits a plain net into its nine glyphs per face.
func faces(t *testing.T, net string) map[cube.Face][]string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(net, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9", len(lines))
	}
	out := make(map[cube.Face][]string)
	for r := 0; r < 3; r++ {
		out[cube.U] = append(out[cube.U], strings.Fields(lines[r])...)
		side := strings.Fields(lines[3+r])
		for i, f := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			out[f] = append(out[f], side[i*3:i*3+3]...)
		}
		out[cube.D] = append(out[cube.D], strings.Fields(lines[6+r])...)
	}
	return out
}

func TestNet_MaskFollowsPieces(t *testing.T) {
	centers := map[cube.Face][]int{cube.U: {4}, cube.D: {4}, cube.F: {4}, cube.B: {4}, cube.R: {4}, cube.L: {4}}
	withCross := func(extra map[cube.Face][]int) map[cube.Face][]int {
		out := map[cube.Face][]int{}
		for f, idx := range centers {
			out[f] = append(out[f], idx...)
		}
		out[cube.D] = append(out[cube.D], 1, 3, 5, 7)
		for _, f := range []cube.Face{cube.F, cube.R, cube.B, cube.L} {
			out[f] = append(out[f], 7)
		}
		for f, idx := range extra {
			out[f] = append(out[f], idx...)
		}
		return out
	}

	tests := []struct {
		name    string
		setup   string
		flags   cubetrainer.SolvedState
		regular map[cube.Face][]int
	}{
		{
			name:    "solved cross",
			flags:   cubetrainer.Cross,
			regular: withCross(nil),
		},
		{
			// The FR edge sits in UB and the DRF corner in UFR.
			name:  "pair pulled into the top layer",
			setup: "R U' R'",
			flags: cubetrainer.Cross | cubetrainer.F2LFR,
			regular: withCross(map[cube.Face][]int{
				cube.U: {1, 8},
				cube.B: {1},
				cube.F: {2},
				cube.R: {0},
			}),
		},
		{
			// Blue is on the bottom, so its cross is the one shown.
			name:    "held x y",
			setup:   "x y",
			flags:   cubetrainer.Cross,
			regular: withCross(nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cube.New()
			pat, err := p.DefaultPattern().ApplyString(tt.setup)
			if err != nil {
				t.Fatal(err)
			}
			colors := pat.Net()
			got := faces(t, New(p, WithPlain()).Net(pat, stickering.Generate(pat, tt.flags)))

			for _, face := range cube.Faces {
				want := []string{"-", "-", "-", "-", "-", "-", "-", "-", "-"}
				for _, i := range tt.regular[face] {
					want[i] = colors.Facelets[face][i].String()
				}
				if diff := cmp.Diff(want, got[face]); diff != "" {
					t.Errorf("face %s mismatch (-want +got):\n%s", face, diff)
				}
			}
		})
	}
}

func TestNet_HeldXY_ShowsBlueCross(t *testing.T) {
	p := cube.New()
	pat, err := p.DefaultPattern().ApplyString("x y")
	if err != nil {
		t.Fatal(err)
	}
	got := faces(t, New(p, WithPlain()).Net(pat, stickering.Generate(pat, cubetrainer.Cross)))
	for _, i := range []int{1, 3, 4, 5, 7} {
		if got[cube.D][i] != "B" {
			t.Errorf("D%d = %q, want B", i, got[cube.D][i])
		}
	}
}

func TestNet_OrientedEdgesShowTopColour(t *testing.T) {
	p := cube.New()
	pat, err := p.DefaultPattern().ApplyString("F R U R' U' F'")
	if err != nil {
		t.Fatal(err)
	}
	got := faces(t, New(p, WithPlain()).Net(pat, stickering.Generate(pat, cubetrainer.EOLL)))

	top := []string{got[cube.U][1], got[cube.U][3], got[cube.U][5], got[cube.U][7],
		got[cube.F][1], got[cube.R][1], got[cube.B][1], got[cube.L][1]}
	whites := 0
	for _, g := range top {
		switch g {
		case "W":
			whites++
		case "-":
		default:
			t.Errorf("top edge sticker %q, want W or -", g)
		}
	}
	if whites != 4 {
		t.Errorf("%d white top edge stickers, want 4", whites)
	}
	if got[cube.U][1] == "W" && got[cube.U][7] == "W" && got[cube.U][3] == "W" && got[cube.U][5] == "W" {
		t.Error("edges should be flipped out of the top face")
	}
}
