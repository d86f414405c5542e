package algset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubetrainer"
)

func TestParse(t *testing.T) {
	text := `
H,  M2 U M2 U2 M2 U M2
Aa, x (R' U R') D2 (R U' R') D2 R2 x'

Insert, R U R', F2LBR | f2lbl|F2LFL
`
	set, err := Parse("  My PLL  ", text)
	require.NoError(t, err)
	assert.Equal(t, "My PLL", set.Name)
	require.Len(t, set.Entries, 3)

	assert.Equal(t, "H", set.Entries[0].Name)
	assert.Equal(t, "M2 U M2 U2 M2 U M2", set.Entries[0].Alg.String())
	assert.Equal(t, cubetrainer.Full, set.Entries[0].Solved)

	assert.Equal(t, "x R' U R' D2 R U' R' D2 R2 x'", set.Entries[1].Alg.String())

	assert.Equal(t, "Insert", set.Entries[2].Name)
	assert.Equal(t, cubetrainer.F2LBR|cubetrainer.F2LBL|cubetrainer.F2LFL, set.Entries[2].Solved)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		set     string
		text    string
		wantErr error
		wantMsg string
	}{
		{"missing name", "   ", "T, R U R'", ErrInvalidName, "required"},
		{"long name", strings.Repeat("x", 31), "T, R U R'", ErrInvalidName, "at most 30"},
		{"empty list", "PLL", "  \n ", ErrEmptyList, ""},
		{"single field", "PLL", "T, R\nJb", ErrInvalidLine, "line 2"},
		{"bad move", "PLL", "T, R U Rw", cubetrainer.ErrInvalidMove, "line 1: move 3"},
		{"bad solved state", "PLL", "T, R U R', F2LXX", cubetrainer.ErrInvalidSolvedState, "line 1"},
		{"no moves", "PLL", "T, ()", ErrInvalidLine, "no moves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.set, tt.text)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateName_Boundary(t *testing.T) {
	name, err := ValidateName(strings.Repeat("a", MaxNameLength))
	require.NoError(t, err)
	assert.Len(t, name, MaxNameLength)
}

func TestFormat_RoundTrip(t *testing.T) {
	set, err := Parse("f2l", "1, U R U' R', F2L\n2, R' D' F' D R, CROSS | F2LFR\n3, R U R'")
	require.NoError(t, err)

	again, err := Parse("f2l", Format(set))
	require.NoError(t, err)
	assert.Equal(t, set, again)
	assert.Contains(t, Format(set), "2, R' D' F' D R, CROSS|F2LFR\n")
}

func TestPresets(t *testing.T) {
	presets, err := Presets()
	require.NoError(t, err)

	var names []string
	for _, p := range presets {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"PLL", "F2L", "OLL", "Advanced F2L"}, names)
}

func TestLoadPreset(t *testing.T) {
	tests := []struct {
		name    string
		entries int
		first   string
		solved  cubetrainer.SolvedState
	}{
		{"PLL", 21, "Aa", cubetrainer.Full},
		{"f2l", 41, "1", cubetrainer.F2L},
		{"OLL", 57, "1", cubetrainer.OLL},
		{"Advanced F2L", 2, "1", cubetrainer.Cross | cubetrainer.F2LFR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := LoadPreset(tt.name)
			require.NoError(t, err)
			assert.Len(t, set.Entries, tt.entries)
			assert.Equal(t, tt.first, set.Entries[0].Name)
			assert.Equal(t, tt.solved, set.Entries[0].Solved)
		})
	}
}

func TestLoadPreset_Unknown(t *testing.T) {
	_, err := LoadPreset("ZBLL")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
