package quantum

import (
	"math"
	"math/cmplx"

	"github.com/theapemachine/errnie"
)

// Norm returns the norm of the state vector, the square root of the
// sum of squared amplitude magnitudes. A physical state has norm 1.
//
// The norm is the real part of <s|s>. The imaginary part is pure
// floating-point residue and is truncated; when it exceeds
// imagTolerance a warning is logged rather than failing, since a norm
// query has no useful failure mode.
func (s *State) Norm() float64 {
	ip := s.selfInnerProduct()
	return math.Sqrt(real(ip))
}

// IsNormalized reports whether the norm is within tolerance of 1.
// Defaults are DefaultRTol and DefaultATol; override with WithRTol and
// WithATol. The check is never exact because irrational normalization
// factors such as 1/sqrt(2) cannot be represented without rounding.
func (s *State) IsNormalized(opts ...ToleranceOption) bool {
	tol := Tolerance{RTol: DefaultRTol, ATol: DefaultATol}
	for _, opt := range opts {
		opt(&tol)
	}
	return isClose(s.Norm(), 1, tol.RTol, tol.ATol)
}

// ProbOfBasisState returns the probability of measuring the system in
// the given basis state: |amplitude|^2, divided by the squared norm
// when normalize is true. With normalize false the raw squared
// magnitude is returned, which is only a probability if the state is
// already normalized.
func (s *State) ProbOfBasisState(basisState int, normalize bool) (float64, error) {
	amp, err := s.Amplitude(basisState)
	if err != nil {
		return 0, err
	}
	mag := cmplx.Abs(amp)
	prob := mag * mag
	if normalize {
		prob /= real(s.selfInnerProduct())
	}
	return prob, nil
}

// ProbOfState returns the probability of finding the system in another
// state, which need not be a basis state: |<s|other>|^2, divided by
// the product of the two squared norms when normalize is true. The
// product form keeps the division accurate; squaring a combined norm
// would compound rounding.
func (s *State) ProbOfState(other *State, normalize bool) (float64, error) {
	ip, err := s.InnerProduct(other)
	if err != nil {
		return 0, err
	}
	mag := cmplx.Abs(ip)
	prob := mag * mag
	if normalize {
		prob /= real(s.selfInnerProduct()) * real(other.selfInnerProduct())
	}
	return prob, nil
}

// selfInnerProduct computes <s|s>, logging any imaginary residue above
// tolerance. Dimensions always match, so the error path is dead.
func (s *State) selfInnerProduct() complex128 {
	ip, _ := s.InnerProduct(s)
	if residue := math.Abs(imag(ip)); residue > imagTolerance {
		errnie.Warn("inner product <s|s> carries imaginary residue %v, truncating", residue)
	}
	return ip
}

// isClose mirrors the usual relative+absolute closeness check:
// |a-b| <= atol + rtol*|b|.
func isClose(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
