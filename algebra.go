package quantum

import "math/cmplx"

// Add returns the element-wise sum of two states as a new state. Both
// operands must share a basis size; there is no implicit broadcasting.
func (s *State) Add(other *State) (*State, error) {
	if err := s.checkDimensions(other); err != nil {
		return nil, err
	}
	out := s.Clone()
	for i := range out.amplitudes {
		out.amplitudes[i] = out.round(out.amplitudes[i] + other.amplitudes[i])
	}
	return out, nil
}

// Sub returns the element-wise difference of two states as a new state.
func (s *State) Sub(other *State) (*State, error) {
	if err := s.checkDimensions(other); err != nil {
		return nil, err
	}
	out := s.Clone()
	for i := range out.amplitudes {
		out.amplitudes[i] = out.round(out.amplitudes[i] - other.amplitudes[i])
	}
	return out, nil
}

// Neg returns the additive inverse of the state.
func (s *State) Neg() *State {
	out := s.Clone()
	for i := range out.amplitudes {
		out.amplitudes[i] = -out.amplitudes[i]
	}
	return out
}

// Scale returns the state with every amplitude multiplied by c.
// Scaling commutes, so this single method serves both scalar-left and
// scalar-right multiplication; it is the only state-times-scalar
// product and always yields a state, never a bare number.
func (s *State) Scale(c complex128) *State {
	out := s.Clone()
	for i := range out.amplitudes {
		out.amplitudes[i] = out.round(c * out.amplitudes[i])
	}
	return out
}

// Div returns the state with every amplitude divided by c. Division by
// a zero scalar fails with *DivisionByZeroError.
func (s *State) Div(c complex128) (*State, error) {
	if c == 0 {
		return nil, &DivisionByZeroError{}
	}
	out := s.Clone()
	for i := range out.amplitudes {
		out.amplitudes[i] = out.round(out.amplitudes[i] / c)
	}
	return out, nil
}

// InnerProduct returns the Hermitian inner product <s|other>,
// conjugate-linear in the receiver. This is the only state-times-state
// product and always yields a bare complex number, never a state.
func (s *State) InnerProduct(other *State) (complex128, error) {
	if err := s.checkDimensions(other); err != nil {
		return 0, err
	}
	var ip complex128
	for i, amp := range s.amplitudes {
		ip += cmplx.Conj(amp) * other.amplitudes[i]
	}
	return ip, nil
}

// Sum folds its operands left to right into a single state. Exact
// numeric zeros are neutral, so reduction code can start an
// accumulator at 0 the way a plain summation does:
//
//	total, err := Sum(0, s, t, u)
//
// Any other bare number fails with *UnsupportedOperandError, as does a
// call whose operands contain no state at all.
func Sum(operands ...any) (*State, error) {
	var acc *State
	for _, operand := range operands {
		switch v := operand.(type) {
		case *State:
			if acc == nil {
				acc = v.Clone()
				continue
			}
			next, err := acc.Add(v)
			if err != nil {
				return nil, err
			}
			acc = next
		default:
			if isNumericZero(operand) {
				continue
			}
			return nil, &UnsupportedOperandError{Operand: operand}
		}
	}
	if acc == nil {
		return nil, &UnsupportedOperandError{Operand: nil}
	}
	return acc, nil
}

func (s *State) checkDimensions(other *State) error {
	if other == nil {
		return &DimensionMismatchError{Expected: len(s.amplitudes)}
	}
	if len(other.amplitudes) != len(s.amplitudes) {
		return &DimensionMismatchError{Expected: len(s.amplitudes), Actual: len(other.amplitudes)}
	}
	return nil
}

func isNumericZero(v any) bool {
	switch n := v.(type) {
	case int:
		return n == 0
	case int32:
		return n == 0
	case int64:
		return n == 0
	case float32:
		return n == 0
	case float64:
		return n == 0
	case complex64:
		return n == 0
	case complex128:
		return n == 0
	}
	return false
}
