package quantum

import "math/bits"

// Precision selects the numeric representation used for amplitudes.
// It is fixed for the lifetime of a state.
type Precision int

const (
	// PrecisionComplex128 keeps amplitudes in double precision. Default.
	PrecisionComplex128 Precision = iota
	// PrecisionComplex64 rounds every stored amplitude through single
	// precision, halving the memory cost of large states.
	PrecisionComplex64
)

/*
State represents the full quantum mechanical state of a fixed set of
qubits via the amplitudes of each computational basis state.

A system of n qubits has 2^n basis states, one per classical bit
pattern of the qubits. Basis states are labeled by the integer whose
bit k encodes qubit k, so qubit 0 is the least significant bit:
in a 3 qubit system, |011> = |3> and |100> = |4>, exactly as binary
numbers. A general state is a superposition of these basis states,
stored here as one complex amplitude per label.

State is a value type: every algebraic operation returns a new
instance. The single exception is SetAmplitude, which mutates in
place so that gate-application code can populate a vector
incrementally. SetAmplitude is not safe for concurrent use from
multiple goroutines without external synchronization; no internal
locking is provided.
*/
type State struct {
	amplitudes []complex128
	precision  Precision
}

// NewState builds a state from a sequence of basis-state amplitudes,
// one per basis-state label in ascending order. The input is copied.
// The sequence length must be a power of two, or construction fails
// with *InvalidStateSizeError.
func NewState(amplitudes []complex128, opts ...StateOption) (*State, error) {
	size := len(amplitudes)
	if size == 0 || bits.OnesCount(uint(size)) != 1 {
		return nil, &InvalidStateSizeError{Size: size}
	}

	s := &State{
		amplitudes: make([]complex128, size),
		precision:  PrecisionComplex128,
	}
	for _, opt := range opts {
		opt(s)
	}
	for i, amp := range amplitudes {
		s.amplitudes[i] = s.round(amp)
	}
	return s, nil
}

// FromBasisState builds the basis state |basisState> of a qubitCount
// qubit system: amplitude 1 at that label, 0 everywhere else. The
// label must lie in [0, 2^qubitCount) or construction fails with
// *InvalidBasisStateError.
func FromBasisState(qubitCount, basisState int, opts ...StateOption) (*State, error) {
	if qubitCount < 0 {
		return nil, &InvalidStateSizeError{Size: 0}
	}
	size := 1 << qubitCount
	if basisState < 0 || basisState >= size {
		return nil, &InvalidBasisStateError{BasisState: basisState, BasisSize: size}
	}

	amplitudes := make([]complex128, size)
	amplitudes[basisState] = 1
	return NewState(amplitudes, opts...)
}

// BasisSize returns the number of basis states, 2^QubitCount.
//
// State deliberately exposes no generic length affordance; size
// queries go through BasisSize and QubitCount only, so that the
// state-times-scalar and state-times-state operations can never be
// confused by a sequence-shaped operand.
func (s *State) BasisSize() int {
	return len(s.amplitudes)
}

// QubitCount returns the number of qubits the state describes.
func (s *State) QubitCount() int {
	return bits.Len(uint(len(s.amplitudes))) - 1
}

// Precision returns the numeric representation tag.
func (s *State) Precision() Precision {
	return s.precision
}

// Amplitude returns the amplitude of one basis state.
func (s *State) Amplitude(basisState int) (complex128, error) {
	if basisState < 0 || basisState >= len(s.amplitudes) {
		return 0, &InvalidBasisStateError{BasisState: basisState, BasisSize: len(s.amplitudes)}
	}
	return s.amplitudes[basisState], nil
}

// SetAmplitude sets the amplitude of one basis state in place. This is
// the only mutating operation on State; see the type documentation for
// the concurrency caveat.
func (s *State) SetAmplitude(basisState int, amp complex128) error {
	if basisState < 0 || basisState >= len(s.amplitudes) {
		return &InvalidBasisStateError{BasisState: basisState, BasisSize: len(s.amplitudes)}
	}
	s.amplitudes[basisState] = s.round(amp)
	return nil
}

// Amplitudes returns a copy of the amplitude sequence in ascending
// label order. Mutating the copy does not affect the state.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amplitudes))
	copy(out, s.amplitudes)
	return out
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	out := &State{
		amplitudes: make([]complex128, len(s.amplitudes)),
		precision:  s.precision,
	}
	copy(out.amplitudes, s.amplitudes)
	return out
}

// Equal reports whether two states have the same qubit count and
// element-wise equal amplitudes. Precision tags are not compared.
func (s *State) Equal(other *State) bool {
	if other == nil || len(s.amplitudes) != len(other.amplitudes) {
		return false
	}
	for i, amp := range s.amplitudes {
		if amp != other.amplitudes[i] {
			return false
		}
	}
	return true
}

// EqualAmplitudes reports whether the state's amplitudes equal a bare
// amplitude sequence of the same length, element-wise.
func (s *State) EqualAmplitudes(amplitudes []complex128) bool {
	if len(amplitudes) != len(s.amplitudes) {
		return false
	}
	for i, amp := range s.amplitudes {
		if amp != amplitudes[i] {
			return false
		}
	}
	return true
}

// round narrows an amplitude through the state's precision tag.
func (s *State) round(amp complex128) complex128 {
	if s.precision == PrecisionComplex64 {
		return complex128(complex64(amp))
	}
	return amp
}
