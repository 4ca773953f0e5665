package quantum

// Default tolerances for normalization checks. These match the
// relative/absolute closeness pair the original simulation used:
// amplitudes accumulate rounding error, notably for irrational
// normalization factors such as 1/sqrt(2), so norm comparisons are
// never exact.
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

// imagTolerance bounds the imaginary residue accepted on <s|s>. The
// physical norm is real; a residue beyond floating-point noise means
// the amplitude vector was corrupted upstream.
const imagTolerance = 1e-9
