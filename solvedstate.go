package cubetrainer

import (
	"fmt"
	"strings"
)

// SolvedState is a bitmask of independently checked solved regions.
type SolvedState uint32

const (
	Full         SolvedState = 1 << 0 // Every piece home
	Cross        SolvedState = 1 << 1 // Bottom cross
	F2LFR        SolvedState = 1 << 2 // Front-right pair
	F2LFL        SolvedState = 1 << 3 // Front-left pair
	F2LBL        SolvedState = 1 << 4 // Back-left pair
	F2LBR        SolvedState = 1 << 5 // Back-right pair
	UEdgeFaces   SolvedState = 1 << 8 // Top edges oriented
	UCornerFaces SolvedState = 1 << 9 // Top corners oriented

	F2L  = Cross | F2LFR | F2LFL | F2LBL | F2LBR
	EOLL = F2L | UEdgeFaces
	OLL  = F2L | UEdgeFaces | UCornerFaces
)

// Flags lists the single-bit solved states in bit order.
var Flags = []SolvedState{Full, Cross, F2LFR, F2LFL, F2LBL, F2LBR, UEdgeFaces, UCornerFaces}

var solvedStateNames = map[SolvedState]string{
	Full:         "FULL",
	Cross:        "CROSS",
	F2LFR:        "F2LFR",
	F2LFL:        "F2LFL",
	F2LBL:        "F2LBL",
	F2LBR:        "F2LBR",
	UEdgeFaces:   "UEDGEFACES",
	UCornerFaces: "UCORNERFACES",
	F2L:          "F2L",
	EOLL:         "EOLL",
	OLL:          "OLL",
}

// composites are tried in order when formatting.
var composites = []SolvedState{OLL, EOLL, F2L}

// SolvedStateNames returns every flag and composite name accepted by ParseSolvedState.
func SolvedStateNames() []string {
	names := make([]string, 0, len(solvedStateNames))
	for _, f := range Flags {
		names = append(names, solvedStateNames[f])
	}
	for i := len(composites) - 1; i >= 0; i-- {
		names = append(names, solvedStateNames[composites[i]])
	}
	return names
}

// Has reports whether every bit of flag is set in s.
func (s SolvedState) Has(flag SolvedState) bool {
	return s&flag == flag
}

// String renders the mask as a |-joined list, using composite names where
// possible. Example: "F2L|UEDGEFACES" is rendered as "EOLL".
func (s SolvedState) String() string {
	if s == 0 {
		return "NONE"
	}
	var parts []string
	rest := s
	for _, c := range composites {
		if rest.Has(c) {
			parts = append(parts, solvedStateNames[c])
			rest &^= c
			break
		}
	}
	for _, f := range Flags {
		if rest&f != 0 {
			parts = append(parts, solvedStateNames[f])
			rest &^= f
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseSolvedState parses a |-joined list of flag names, evaluated as a
// bitwise OR. Names are case-insensitive and may be padded with spaces.
// An empty expression means FULL.
func ParseSolvedState(expr string) (SolvedState, error) {
	if strings.TrimSpace(expr) == "" {
		return Full, nil
	}
	var s SolvedState
	for _, part := range strings.Split(expr, "|") {
		name := strings.ToUpper(strings.TrimSpace(part))
		flag, ok := solvedStateByName[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSolvedState, strings.TrimSpace(part))
		}
		s |= flag
	}
	return s, nil
}

var solvedStateByName = func() map[string]SolvedState {
	m := make(map[string]SolvedState, len(solvedStateNames))
	for flag, name := range solvedStateNames {
		m[name] = flag
	}
	return m
}()

// Remapping tables. A mirrored or rotated puzzle presents a pair slot in a
// different physical position, so the bit to check moves with it.
var (
	mirrorMSlots = map[SolvedState]SolvedState{F2LFR: F2LFL, F2LFL: F2LFR, F2LBR: F2LBL, F2LBL: F2LBR}
	mirrorSSlots = map[SolvedState]SolvedState{F2LFR: F2LBR, F2LBR: F2LFR, F2LFL: F2LBL, F2LBL: F2LFL}
	rotateYSlots = map[SolvedState]SolvedState{F2LFR: F2LFL, F2LFL: F2LBL, F2LBL: F2LBR, F2LBR: F2LFR}
)

// remap clears every source bit of table and then sets the targets of the
// source bits that were present. Bits outside the table pass through.
func (s SolvedState) remap(table map[SolvedState]SolvedState) SolvedState {
	out := s
	for from := range table {
		out &^= from
	}
	for from, to := range table {
		if s&from != 0 {
			out |= to
		}
	}
	return out
}

// MirrorM swaps the front-right/front-left and back-right/back-left pairs.
func (s SolvedState) MirrorM() SolvedState {
	return s.remap(mirrorMSlots)
}

// MirrorS swaps the front-right/back-right and front-left/back-left pairs.
func (s SolvedState) MirrorS() SolvedState {
	return s.remap(mirrorSSlots)
}

// RotateY moves every pair flag one slot per y rotation: FR to FL to BL to
// BR to FR. n is taken modulo 4; negative values rotate the other way.
func (s SolvedState) RotateY(n int) SolvedState {
	n = ((n % 4) + 4) % 4
	for i := 0; i < n; i++ {
		s = s.remap(rotateYSlots)
	}
	return s
}
