// Package stickering builds per-facelet display masks that hide the parts
// of the puzzle a training case does not care about.
package stickering

// Facelet is the display treatment of one sticker.
type Facelet string

const (
	FaceletRegular               Facelet = "regular"
	FaceletDim                   Facelet = "dim"
	FaceletOriented              Facelet = "oriented"
	FaceletExperimentalOriented2 Facelet = "experimentalOriented2"
	FaceletIgnored               Facelet = "ignored"
	FaceletInvisible             Facelet = "invisible"
)

// faceletsPerPiece is fixed at five, enough for any piece shape.
const faceletsPerPiece = 5

// PieceMask holds the facelet treatments of one slot.
type PieceMask struct {
	Facelets []Facelet `json:"facelets"`
}

// OrbitMask holds one PieceMask per slot.
type OrbitMask struct {
	Pieces []PieceMask `json:"pieces"`
}

// Mask is a whole-puzzle stickering, keyed by orbit name.
type Mask struct {
	Orbits map[string]OrbitMask `json:"orbits"`
}

// Facelet returns the treatment of a slot facelet. A mask with no data for
// the slot shows it as regular.
func (m Mask) Facelet(orbit string, slot, facelet int) Facelet {
	om, ok := m.Orbits[orbit]
	if !ok || slot >= len(om.Pieces) || facelet >= len(om.Pieces[slot].Facelets) {
		return FaceletRegular
	}
	return om.Pieces[slot].Facelets[facelet]
}

// Clone returns a deep copy of m.
func (m Mask) Clone() Mask {
	out := Mask{Orbits: make(map[string]OrbitMask, len(m.Orbits))}
	for name, om := range m.Orbits {
		pieces := make([]PieceMask, len(om.Pieces))
		for i, pm := range om.Pieces {
			pieces[i] = PieceMask{Facelets: append([]Facelet(nil), pm.Facelets...)}
		}
		out.Orbits[name] = OrbitMask{Pieces: pieces}
	}
	return out
}

// Combine overlays masks facelet by facelet. A facelet regular in any mask
// is regular in the result; otherwise the first mask's treatment is kept.
// The first mask determines the shape.
func Combine(masks ...Mask) Mask {
	if len(masks) == 0 {
		return Mask{Orbits: map[string]OrbitMask{}}
	}
	out := masks[0].Clone()
	for _, m := range masks[1:] {
		for name, om := range out.Orbits {
			for i, pm := range om.Pieces {
				for j := range pm.Facelets {
					if m.has(name, i, j) && m.Orbits[name].Pieces[i].Facelets[j] == FaceletRegular {
						pm.Facelets[j] = FaceletRegular
					}
				}
			}
		}
	}
	return out
}

func (m Mask) has(orbit string, slot, facelet int) bool {
	om, ok := m.Orbits[orbit]
	return ok && slot < len(om.Pieces) && facelet < len(om.Pieces[slot].Facelets)
}
