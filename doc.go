// Package quantum models the state of a fixed set of qubits as a
// vector of complex amplitudes over the computational basis, and
// provides the algebra to manipulate, query, and probabilistically
// measure that vector.
//
// The State type owns the amplitudes and the value-semantics algebra
// (addition, scaling, Hermitian inner product), the probability
// methods turn amplitudes into measurement probabilities, and Sampler
// draws randomized measurement outcomes from them. Gate and circuit
// layers build on top of these primitives through the amplitude
// read/write boundary; they are not part of this package.
package quantum
