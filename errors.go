package quantum

import "fmt"

// InvalidStateSizeError indicates an amplitude sequence whose length is
// not a power of two, so it cannot represent a whole number of qubits.
type InvalidStateSizeError struct {
	Size int
}

func (e *InvalidStateSizeError) Error() string {
	return fmt.Sprintf("invalid state size: %d is not a power of two", e.Size)
}

// InvalidBasisStateError indicates a basis-state label (or qubit index)
// outside the range addressable by the state.
type InvalidBasisStateError struct {
	BasisState int
	BasisSize  int
}

func (e *InvalidBasisStateError) Error() string {
	return fmt.Sprintf("invalid basis state: %d is not in [0, %d)", e.BasisState, e.BasisSize)
}

// DivisionByZeroError indicates scalar division by a zero complex value.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division of state by zero scalar"
}

// UnsupportedOperandError indicates an algebraic operation invoked with
// an operand kind it does not define, such as summing a state with a
// nonzero bare number.
type UnsupportedOperandError struct {
	Operand any
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("unsupported operand %v (%T)", e.Operand, e.Operand)
}

// DimensionMismatchError indicates a binary operation on two states with
// different basis sizes.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected basis size %d, got %d", e.Expected, e.Actual)
}
