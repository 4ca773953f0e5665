package quantum

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewQubit(t *testing.T) {
	Convey("Given single-qubit construction", t, func() {
		Convey("alpha and beta land on |0> and |1>", func() {
			q, err := NewQubit(0, 1i)
			So(err, ShouldBeNil)
			So(q.QubitCount(), ShouldEqual, 1)
			So(q.EqualAmplitudes([]complex128{0, 1i}), ShouldBeTrue)
		})

		Convey("NewQubit(1, 0) is the |0> basis state", func() {
			q, err := NewQubit(1, 0)
			So(err, ShouldBeNil)

			bs, err := FromBasisState(1, 0)
			So(err, ShouldBeNil)
			So(q.Equal(bs), ShouldBeTrue)
		})

		Convey("Amplitudes are taken as given, not normalized", func() {
			q, err := NewQubit(2, 2)
			So(err, ShouldBeNil)
			So(q.IsNormalized(), ShouldBeFalse)
		})
	})
}

func TestHadamard(t *testing.T) {
	Convey("Given the Hadamard rotation", t, func() {
		invSqrt2 := 1 / math.Sqrt2

		Convey("H|0> is the equal superposition", func() {
			s, err := FromBasisState(1, 0)
			So(err, ShouldBeNil)

			h, err := Hadamard(s, 0)
			So(err, ShouldBeNil)
			So(h.IsNormalized(), ShouldBeTrue)

			for m := 0; m < 2; m++ {
				amp, err := h.Amplitude(m)
				So(err, ShouldBeNil)
				So(real(amp), ShouldAlmostEqual, invSqrt2)
				So(imag(amp), ShouldAlmostEqual, 0)
			}
		})

		Convey("H|1> picks up the relative phase", func() {
			s, err := FromBasisState(1, 1)
			So(err, ShouldBeNil)

			h, err := Hadamard(s, 0)
			So(err, ShouldBeNil)

			lo, err := h.Amplitude(0)
			So(err, ShouldBeNil)
			hi, err := h.Amplitude(1)
			So(err, ShouldBeNil)
			So(real(lo), ShouldAlmostEqual, invSqrt2)
			So(real(hi), ShouldAlmostEqual, -invSqrt2)
		})

		Convey("Applying H twice is the identity", func() {
			s, err := NewState([]complex128{0.5, 0.5i, -0.5, 0.5})
			So(err, ShouldBeNil)

			once, err := Hadamard(s, 1)
			So(err, ShouldBeNil)
			twice, err := Hadamard(once, 1)
			So(err, ShouldBeNil)

			for m := 0; m < s.BasisSize(); m++ {
				want, err := s.Amplitude(m)
				So(err, ShouldBeNil)
				got, err := twice.Amplitude(m)
				So(err, ShouldBeNil)
				So(real(got), ShouldAlmostEqual, real(want))
				So(imag(got), ShouldAlmostEqual, imag(want))
			}
		})

		Convey("The gate leaves its input untouched", func() {
			s, err := FromBasisState(2, 0)
			So(err, ShouldBeNil)

			_, err = Hadamard(s, 1)
			So(err, ShouldBeNil)
			bs, err := FromBasisState(2, 0)
			So(err, ShouldBeNil)
			So(s.Equal(bs), ShouldBeTrue)
		})

		Convey("Half the probability mass moves to the rotated qubit", func() {
			s, err := FromBasisState(2, 0)
			So(err, ShouldBeNil)

			h, err := Hadamard(s, 1)
			So(err, ShouldBeNil)

			p0, err := h.ProbOfBasisState(0, true)
			So(err, ShouldBeNil)
			p2, err := h.ProbOfBasisState(2, true)
			So(err, ShouldBeNil)
			So(p0, ShouldAlmostEqual, 0.5)
			So(p2, ShouldAlmostEqual, 0.5)
		})

		Convey("A qubit index outside the system fails", func() {
			s, err := FromBasisState(1, 0)
			So(err, ShouldBeNil)

			_, err = Hadamard(s, 1)
			var bsErr *InvalidBasisStateError
			So(errors.As(err, &bsErr), ShouldBeTrue)
		})
	})
}
