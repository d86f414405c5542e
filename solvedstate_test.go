package cubetrainer

import (
	"errors"
	"testing"
)

func TestSolvedState_Values(t *testing.T) {
	if F2L != 0x3e {
		t.Errorf("F2L = %#x", uint32(F2L))
	}
	if OLL != 0x33e {
		t.Errorf("OLL = %#x", uint32(OLL))
	}
	if EOLL != F2L|UEdgeFaces {
		t.Errorf("EOLL = %#x", uint32(EOLL))
	}
}

func TestParseSolvedState(t *testing.T) {
	tests := []struct {
		in   string
		want SolvedState
	}{
		{"", Full},
		{"FULL", Full},
		{"oll", OLL},
		{"CROSS | F2LFR", Cross | F2LFR},
		{" F2LBR | F2LBL | F2LFL ", F2LBR | F2LBL | F2LFL},
		{"F2L|UEDGEFACES", EOLL},
	}
	for _, tt := range tests {
		got, err := ParseSolvedState(tt.in)
		if err != nil {
			t.Errorf("ParseSolvedState(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSolvedState(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseSolvedState("CROSS|PLL"); !errors.Is(err, ErrInvalidSolvedState) {
		t.Errorf("PLL error = %v, want ErrInvalidSolvedState", err)
	}
}

func TestSolvedState_String(t *testing.T) {
	tests := map[SolvedState]string{
		OLL:            "OLL",
		EOLL:           "EOLL",
		F2L:            "F2L",
		Cross | F2LFR:  "CROSS|F2LFR",
		F2L | Full:     "F2L|FULL",
		UCornerFaces:   "UCORNERFACES",
		SolvedState(0): "NONE",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%#x String() = %q, want %q", uint32(s), got, want)
		}
	}
}

func TestSolvedState_MirrorTables(t *testing.T) {
	if got := (Cross | F2LFR).MirrorM(); got != Cross|F2LFL {
		t.Errorf("MirrorM = %s", got)
	}
	if got := (F2LFR | F2LBL).MirrorS(); got != F2LBR|F2LFL {
		t.Errorf("MirrorS = %s", got)
	}
	for _, s := range []SolvedState{F2LFR, F2LFL | F2LBR, OLL, Full} {
		if s.MirrorM().MirrorM() != s {
			t.Errorf("MirrorM not an involution for %s", s)
		}
		if s.MirrorS().MirrorS() != s {
			t.Errorf("MirrorS not an involution for %s", s)
		}
	}
	if got := OLL.MirrorM(); got != OLL {
		t.Errorf("OLL mirrored = %s, want OLL", got)
	}
}

func TestSolvedState_RotateY(t *testing.T) {
	if got := F2LFR.RotateY(1); got != F2LFL {
		t.Errorf("FR y = %s, want F2LFL", got)
	}
	if got := F2LFR.RotateY(3); got != F2LBR {
		t.Errorf("FR y3 = %s, want F2LBR", got)
	}
	if got := F2LFR.RotateY(-1); got != F2LBR {
		t.Errorf("FR y' = %s, want F2LBR", got)
	}
	for s := SolvedState(0); s < 1<<10; s++ {
		if s.RotateY(4) != s {
			t.Fatalf("RotateY(4) changed %#x", uint32(s))
		}
	}
}
