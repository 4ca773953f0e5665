package quantum

import "math"

// NewQubit builds the single-qubit state alpha|0> + beta|1>. The
// amplitudes are taken as given; callers wanting a physical state
// should pass amplitudes whose squared magnitudes sum to 1.
func NewQubit(alpha, beta complex128) (*State, error) {
	return NewState([]complex128{alpha, beta})
}

// Hadamard returns a new state with the Hadamard rotation applied to
// one qubit:
//
//	H = 1/√2 * [1  1]
//	           [1 -1]
//
// It pairs every basis state having the qubit clear with its partner
// having the qubit set, and mixes the two amplitudes. This is the one
// gate shipped with the core; richer gate sets belong to an external
// gate layer built on the amplitude read/write boundary.
func Hadamard(s *State, qubit int) (*State, error) {
	if qubit < 0 || qubit >= s.QubitCount() {
		return nil, &InvalidBasisStateError{BasisState: qubit, BasisSize: s.QubitCount()}
	}

	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << qubit
	out := s.Clone()
	for m := 0; m < s.BasisSize(); m++ {
		if m&bit != 0 {
			continue
		}
		lo := s.amplitudes[m]
		hi := s.amplitudes[m|bit]
		out.amplitudes[m] = out.round(factor * (lo + hi))
		out.amplitudes[m|bit] = out.round(factor * (lo - hi))
	}
	return out, nil
}
