// Package render draws the trainer's view of the puzzle as a terminal net.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubetrainer/internal/cube"
	"github.com/SeamusWaldron/cubetrainer/internal/stickering"
)

var faceColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("255"),
	cube.Yellow: lipgloss.Color("226"),
	cube.Green:  lipgloss.Color("34"),
	cube.Blue:   lipgloss.Color("27"),
	cube.Red:    lipgloss.Color("196"),
	cube.Orange: lipgloss.Color("208"),
}

var (
	ignoredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236"))
	orientedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("245"))
)

// Renderer draws patterns of one puzzle.
type Renderer struct {
	puzzle   *cube.Puzzle
	stickers [6][9]cube.Sticker
	plain    bool
	hints    bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain renders glyphs only, with no colour.
func WithPlain() Option {
	return func(r *Renderer) { r.plain = true }
}

// WithHints shows facelets masked as ignored in dim colour instead of
// hiding their colour.
func WithHints(on bool) Option {
	return func(r *Renderer) { r.hints = on }
}

func New(p *cube.Puzzle, opts ...Option) *Renderer {
	r := &Renderer{puzzle: p, stickers: p.Stickers()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// cell renders one facelet. Glyphs: the colour letter for regular
// facelets, lower case for dim ones, "o" for oriented, "-" for ignored and
// a blank for invisible.
func (r *Renderer) cell(color cube.Color, treatment stickering.Facelet) string {
	letter := color.String()
	var glyph string
	var style lipgloss.Style
	switch treatment {
	case stickering.FaceletDim:
		glyph = strings.ToLower(letter)
		style = lipgloss.NewStyle().Foreground(faceColors[color]).Faint(true)
	case stickering.FaceletOriented, stickering.FaceletExperimentalOriented2:
		glyph = "o"
		style = orientedStyle
	case stickering.FaceletIgnored:
		if r.hints {
			glyph = strings.ToLower(letter)
			style = lipgloss.NewStyle().Foreground(faceColors[color]).Faint(true)
		} else {
			glyph = "-"
			style = ignoredStyle
		}
	case stickering.FaceletInvisible:
		return " "
	default:
		glyph = letter
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(faceColors[color]).Bold(true)
	}
	if r.plain {
		return glyph
	}
	return style.Render(glyph)
}

// Net draws pat as an unfolded cube with mask applied:
//
//	      U
//	L F R B
//	      D
//
// The mask is indexed by piece, so a sticker keeps its treatment wherever
// its piece has moved. An empty mask shows every facelet as regular.
func (r *Renderer) Net(pat cube.Pattern, mask stickering.Mask) string {
	net := pat.Net()
	var faces [6][9]string
	for _, face := range cube.Faces {
		for i, s := range r.stickers[face] {
			piece, facelet := pat.PieceFacelet(s)
			orbit := r.puzzle.Orbits[s.Orbit].Name
			faces[face][i] = r.cell(net.Facelets[face][i], mask.Facelet(orbit, piece, facelet))
		}
	}

	var sb strings.Builder
	row := func(r int, indent bool, fs ...cube.Face) {
		if indent {
			sb.WriteString("      ")
		}
		for _, f := range fs {
			for col := 0; col < 3; col++ {
				sb.WriteString(faces[f][r*3+col])
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	for i := 0; i < 3; i++ {
		row(i, true, cube.U)
	}
	for i := 0; i < 3; i++ {
		row(i, false, cube.L, cube.F, cube.R, cube.B)
	}
	for i := 0; i < 3; i++ {
		row(i, true, cube.D)
	}
	return sb.String()
}
