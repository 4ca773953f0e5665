package quantum

import "math/rand"

// StateOption configures state construction.
type StateOption func(*State)

// WithPrecision sets the numeric representation used for amplitudes.
func WithPrecision(p Precision) StateOption {
	return func(s *State) {
		s.precision = p
	}
}

// SamplerOption configures a measurement sampler.
type SamplerOption func(*Sampler)

// WithSeed gives the sampler a deterministic random source.
func WithSeed(seed int64) SamplerOption {
	return func(sp *Sampler) {
		sp.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSource gives the sampler a caller-supplied random source. The
// source must produce uniform values; no other distribution is
// supported.
func WithSource(src rand.Source) SamplerOption {
	return func(sp *Sampler) {
		sp.rng = rand.New(src)
	}
}

// Tolerance is the relative/absolute closeness pair used by
// normalization checks.
type Tolerance struct {
	RTol float64
	ATol float64
}

// ToleranceOption overrides one of the default tolerances.
type ToleranceOption func(*Tolerance)

// WithRTol overrides the relative tolerance.
func WithRTol(rtol float64) ToleranceOption {
	return func(t *Tolerance) {
		t.RTol = rtol
	}
}

// WithATol overrides the absolute tolerance.
func WithATol(atol float64) ToleranceOption {
	return func(t *Tolerance) {
		t.ATol = atol
	}
}
