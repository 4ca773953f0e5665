package quantum

import (
	"math/rand"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Sampler draws measurement outcomes from a state according to the
probabilities its amplitudes define. Each call is an independent,
single-shot draw: the sampler never collapses or renormalizes the
measured state, so callers that want post-measurement collapse must
rebuild the state themselves from the returned label.

The random source is held explicitly rather than taken from the
process-wide generator; tests construct a sampler with WithSeed or
WithSource to make draws reproducible.
*/
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler seeded from the wall clock unless an
// option overrides the source.
func NewSampler(opts ...SamplerOption) *Sampler {
	sp := &Sampler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(sp)
	}
	return sp
}

// MeasureBasisState selects one basis-state label, weighted by the
// normalized squared amplitudes.
//
// Conceptually the unit interval is split into chunks, one per basis
// state, sized by that state's probability. For the 2 qubit state
// with probabilities [0.25, 0.25, 0, 0.5]:
//
//	0.0   0.25   0.5   0.75  1.0
//	|     |      |     |     |
//	00000 11111  33333 33333
//
// One uniform draw lands in exactly one chunk, and the walk below
// finds it by accumulating probabilities in ascending label order.
// The ascending order fixes the tie-breaking at chunk boundaries.
func (sp *Sampler) MeasureBasisState(s *State) (int, error) {
	sample := sp.rng.Float64()

	basisState := 0
	acc, err := s.ProbOfBasisState(basisState, true)
	if err != nil {
		return 0, err
	}
	for acc < sample {
		basisState++
		prob, err := s.ProbOfBasisState(basisState, true)
		if err != nil {
			return 0, err
		}
		acc += prob
	}

	errnie.Info("measured basis state %d (draw %f)", basisState, sample)
	return basisState, nil
}

// MeasureQubit reads out a single qubit: it returns 1 with probability
// equal to the total probability mass of all basis states whose
// qubit-th bit is set, and 0 otherwise. The stored amplitudes are left
// untouched.
func (sp *Sampler) MeasureQubit(s *State, qubit int) (int, error) {
	if qubit < 0 || qubit >= s.QubitCount() {
		return 0, &InvalidBasisStateError{BasisState: qubit, BasisSize: s.QubitCount()}
	}

	probSet := 0.0
	for bs := 0; bs < s.BasisSize(); bs++ {
		if bs&(1<<qubit) == 0 {
			continue
		}
		prob, err := s.ProbOfBasisState(bs, true)
		if err != nil {
			return 0, err
		}
		probSet += prob
	}

	outcome := 0
	if sp.rng.Float64() < probSet {
		outcome = 1
	}
	errnie.Info("measured qubit %d as %d (P(1)=%f)", qubit, outcome, probSet)
	return outcome, nil
}
