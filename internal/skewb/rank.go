package skewb

// The state number is a mixed-radix numeral over the independent degrees
// of freedom: five center positions (position 5 holds whatever facelet is
// left), seven corner positions (position 7 holds whatever cubie is left),
// and all eight corner rotations. Permutation fields are Lehmer-coded, so
// the solved state is exactly 0.

// StateNum encodes the state into its number.
func (s *Skewb) StateNum() uint64 {
	var n uint64

	var centerPos [5]uint8
	copy(centerPos[:], s.CenterPos[:5])
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 5; j++ {
			if centerPos[j] > centerPos[i] {
				centerPos[j]--
			}
		}
	}
	for i := 0; i < 5; i++ {
		n = n*uint64(6-i) + uint64(centerPos[i])
	}

	var cornerPos [7]uint8
	copy(cornerPos[:], s.CornerPos[:7])
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 7; j++ {
			if cornerPos[j] > cornerPos[i] {
				cornerPos[j]--
			}
		}
	}
	for i := 0; i < 7; i++ {
		n = n*uint64(8-i) + uint64(cornerPos[i])
	}

	for i := 0; i < 8; i++ {
		n = n*3 + uint64(s.CornerRot[i])
	}

	return n
}

// NewSkewbFromState decodes a state number produced by StateNum.
func NewSkewbFromState(stateNum uint64) *Skewb {
	s := &Skewb{}
	s.SetStateNum(stateNum)
	return s
}

// SetStateNum overwrites the state with the decoding of stateNum. Digits
// are stripped in reverse encoding order, then the Lehmer codes are
// re-inflated by the greater-or-equal sweep.
func (s *Skewb) SetStateNum(stateNum uint64) {
	for i := 0; i < 8; i++ {
		s.CornerRot[7-i] = uint8(stateNum % 3)
		stateNum /= 3
	}

	s.CornerPos[7] = 0
	for i := 2; i <= 8; i++ {
		s.CornerPos[8-i] = uint8(stateNum % uint64(i))
		stateNum /= uint64(i)
	}
	for i := 6; i >= 0; i-- {
		for j := i + 1; j < 8; j++ {
			if s.CornerPos[j] >= s.CornerPos[i] {
				s.CornerPos[j]++
			}
		}
	}

	s.CenterPos[5] = 0
	for i := 2; i <= 6; i++ {
		s.CenterPos[6-i] = uint8(stateNum % uint64(i))
		stateNum /= uint64(i)
	}
	for i := 4; i >= 0; i-- {
		for j := i + 1; j < 6; j++ {
			if s.CenterPos[j] >= s.CenterPos[i] {
				s.CenterPos[j]++
			}
		}
	}
}
