package cubetrainer

import (
	"fmt"
	"strings"
)

// Alg is an ordered sequence of moves. Transforms never modify the
// receiver; they always return a new Alg.
type Alg []Move

// ParseAlg parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts the parse and is named in the error.
func ParseAlg(s string) (Alg, error) {
	return AlgFromTokens(strings.Fields(s))
}

// MustParseAlg is like ParseAlg but panics on error.
func MustParseAlg(s string) Alg {
	a, err := ParseAlg(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AlgFromTokens builds an Alg from individual notation tokens.
func AlgFromTokens(tokens []string) (Alg, error) {
	alg := make(Alg, 0, len(tokens))
	for i, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		alg = append(alg, m)
	}
	return alg, nil
}

// Tokens returns the notation token of every move.
func (a Alg) Tokens() []string {
	tokens := make([]string, len(a))
	for i, m := range a {
		tokens[i] = m.Notation()
	}
	return tokens
}

// String formats the alg as a space-separated notation string.
func (a Alg) String() string {
	return strings.Join(a.Tokens(), " ")
}

// Equal reports whether both algs contain the same moves in the same order.
func (a Alg) Equal(b Alg) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Invert reverses the move order and inverts every move.
func (a Alg) Invert() Alg {
	inv := make(Alg, len(a))
	for i, m := range a {
		inv[len(a)-1-i] = m.Inverse()
	}
	return inv
}

// Concat returns a new alg with b appended to a.
func (a Alg) Concat(b Alg) Alg {
	out := make(Alg, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Condense merges runs of moves with the same base, dropping cancellations.
// Used for display; the trainer always replays the raw move log.
func (a Alg) Condense() Alg {
	out := make(Alg, 0, len(a))
	for _, m := range a {
		if len(out) == 0 || out[len(out)-1].Base != m.Base {
			out = append(out, m)
			continue
		}
		merged := out[len(out)-1].Merge(m)
		if merged == nil {
			out = out[:len(out)-1]
		} else {
			out[len(out)-1] = *merged
		}
	}
	return out
}

// mirror describes a reflection: which bases swap with each other and which
// keep their turn direction because they lie in the mirror plane's axis.
type mirror struct {
	swap map[Base]Base
	keep map[Base]bool
}

var (
	// Reflection through the M slice plane.
	mirrorM = mirror{
		swap: map[Base]Base{BaseR: BaseL, BaseL: BaseR, BaseRw: BaseLw, BaseLw: BaseRw},
		keep: map[Base]bool{BaseM: true, BaseX: true},
	}

	// Reflection through the S slice plane.
	mirrorS = mirror{
		swap: map[Base]Base{BaseF: BaseB, BaseB: BaseF, BaseFw: BaseBw, BaseBw: BaseFw},
		keep: map[Base]bool{BaseS: true, BaseZ: true},
	}
)

func (r mirror) apply(m Move) Move {
	if r.keep[m.Base] {
		return m
	}
	if to, ok := r.swap[m.Base]; ok {
		m.Base = to
	}
	return m.Inverse()
}

func (r mirror) alg(a Alg) Alg {
	out := make(Alg, len(a))
	for i, m := range a {
		out[i] = r.apply(m)
	}
	return out
}

// MirrorM reflects the alg left to right. R and L swap, as do r and l.
// M and x keep their direction, every other move reverses it.
func (a Alg) MirrorM() Alg {
	return mirrorM.alg(a)
}

// MirrorS reflects the alg front to back. F and B swap, as do f and b.
// S and z keep their direction, every other move reverses it.
func (a Alg) MirrorS() Alg {
	return mirrorS.alg(a)
}
