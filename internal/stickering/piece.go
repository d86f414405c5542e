package stickering

// PieceStickering is a named treatment for a whole piece.
type PieceStickering int

const (
	Regular PieceStickering = iota
	Dim
	Ignored
	OrientationStickers
	Invisible
	Ignoriented
	IgnoreNonPrimary
	PermuteNonPrimary
	OrientationWithoutPermutation
	ExperimentalOrientationWithoutPermutation2
)

var pieceStickeringNames = [...]string{
	Regular:                       "Regular",
	Dim:                           "Dim",
	Ignored:                       "Ignored",
	OrientationStickers:           "OrientationStickers",
	Invisible:                     "Invisible",
	Ignoriented:                   "Ignoriented",
	IgnoreNonPrimary:              "IgnoreNonPrimary",
	PermuteNonPrimary:             "PermuteNonPrimary",
	OrientationWithoutPermutation: "OrientationWithoutPermutation",
	ExperimentalOrientationWithoutPermutation2: "ExperimentalOrientationWithoutPermutation2",
}

func (s PieceStickering) String() string {
	if s < 0 || int(s) >= len(pieceStickeringNames) {
		return "Unknown"
	}
	return pieceStickeringNames[s]
}

func uniform(f Facelet) [faceletsPerPiece]Facelet {
	return [faceletsPerPiece]Facelet{f, f, f, f, f}
}

func primary(first, rest Facelet) [faceletsPerPiece]Facelet {
	return [faceletsPerPiece]Facelet{first, rest, rest, rest, rest}
}

var pieceFacelets = map[PieceStickering][faceletsPerPiece]Facelet{
	Regular:             uniform(FaceletRegular),
	Ignored:             uniform(FaceletIgnored),
	OrientationStickers: uniform(FaceletOriented),
	Invisible:           uniform(FaceletInvisible),
	Dim:                 uniform(FaceletDim),

	IgnoreNonPrimary:  primary(FaceletRegular, FaceletIgnored), // OLL
	PermuteNonPrimary: primary(FaceletDim, FaceletRegular),     // PLL
	Ignoriented:       primary(FaceletDim, FaceletIgnored),

	OrientationWithoutPermutation:              primary(FaceletOriented, FaceletIgnored),
	ExperimentalOrientationWithoutPermutation2: primary(FaceletExperimentalOriented2, FaceletIgnored),
}

// Facelets returns the facelet treatments of a piece stickering.
func (s PieceStickering) Facelets() []Facelet {
	f := pieceFacelets[s]
	return f[:]
}
