package sfen

import (
	"github.com/ehrlich-b/skewb/internal/skewb"
)

// ToSkewb converts the parsed state to a Skewb.
func (state *State) ToSkewb() (*skewb.Skewb, error) {
	return skewb.NewSkewbFromPieces(state.CenterPos, state.CornerPos, state.CornerRot)
}

// FromSkewb captures a Skewb as an SFEN state.
func FromSkewb(s *skewb.Skewb) *State {
	return &State{
		CenterPos: s.CenterPos,
		CornerPos: s.CornerPos,
		CornerRot: s.CornerRot,
	}
}

// Generate returns the SFEN string for a Skewb.
func Generate(s *skewb.Skewb) string {
	return FromSkewb(s).String()
}
