package quantum

import (
	"fmt"
	"math"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// String renders the superposition in Dirac notation, one term per
// nonzero amplitude in ascending label order:
//
//	1.000 |0> + 1.000 |2>
//
// Purely real and purely imaginary amplitudes are printed as a single
// magnitude rounded to three decimals (with a j suffix for the
// imaginary case); mixed amplitudes use a combined real/imaginary
// form. The leading term omits a redundant +. A zero-norm state
// renders as the zero-amplitude basis-zero term.
//
// The output is presentational only; it rounds and must not be parsed
// back into amplitudes.
func (s *State) String() string {
	if s.Norm() == 0 {
		return "0 |0>"
	}

	var parts []string
	for label, amp := range s.amplitudes {
		if amp == 0 {
			continue
		}
		re, im := real(amp), imag(amp)

		var sign, num string
		switch {
		case im == 0:
			sign, num = signOf(re), fmt.Sprintf("%.3f", math.Abs(re))
		case re == 0:
			sign, num = signOf(im), fmt.Sprintf("%.3fj", math.Abs(im))
		case re < 0 && im < 0:
			sign, num = "-", fmt.Sprintf("%.3f %s j %.3f", -re, signOf(-im), -im)
		default:
			sign, num = "+", fmt.Sprintf("(%.3f + j %.3f)", re, im)
		}
		ket := fmt.Sprintf("|%d>", label)

		if len(parts) == 0 {
			if sign == "-" {
				parts = append(parts, "-"+num, ket)
			} else {
				parts = append(parts, num, ket)
			}
			continue
		}
		parts = append(parts, sign, num, ket)
	}
	return strings.Join(parts, " ")
}

// Dump returns a diagnostic dump of the amplitude sequence. Unlike
// String it loses no precision, but its exact layout is owned by spew
// and is not a stable format.
func (s *State) Dump() string {
	return "State with amplitudes " + strings.TrimSpace(spew.Sdump(s.amplitudes))
}

func signOf(f float64) string {
	if f < 0 {
		return "-"
	}
	return "+"
}
