package qsim

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRegister(t *testing.T) {
	Convey("Given a width for a new zero register", t, func() {
		reg, err := NewZeroRegister(3, &Config{Tolerance: 1e-6, Seed: 1, LogLevel: "warn"})

		Convey("Then it should start in |000⟩ with an empty ledger", func() {
			So(err, ShouldBeNil)
			So(reg.State().Len(), ShouldEqual, 8)
			So(reg.State().Amplitude(0), ShouldEqual, 1.0)
			So(reg.History(0), ShouldBeEmpty)
		})

		Convey("Then a nil config should fall back to the defaults", func() {
			reg, err := NewRegister(mustState(1, 0), nil)
			So(err, ShouldBeNil)
			So(reg.cfg.Tolerance, ShouldEqual, DefaultEpsilon)
		})

		Convey("Then an unknown log level should be rejected", func() {
			_, err := NewRegister(mustState(1, 0), &Config{Tolerance: 1e-3, LogLevel: "loud"})
			So(err, ShouldNotBeNil)
		})

		Convey("Then a negative width should be rejected", func() {
			_, err := NewZeroRegister(-1, nil)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("Then a nil state should be rejected", func() {
			reg, err := NewRegister(nil, nil)
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)
			So(reg, ShouldBeNil)
		})
	})
}

func TestRegisterOperations(t *testing.T) {
	Convey("Given a two-qubit register with a fixed seed", t, func() {
		reg, err := NewZeroRegister(2, &Config{Tolerance: 1e-6, Seed: 5, LogLevel: "warn"})
		So(err, ShouldBeNil)

		Convey("When preparing a Bell state", func() {
			So(reg.H(1), ShouldBeNil)
			So(reg.CNOT(1, 0), ShouldBeNil)

			Convey("Then the state should be (|00⟩ + |11⟩)/√2", func() {
				x := 1 / math.Sqrt(2)
				So(reg.Equal(mustState(x, 0, 0, x)), ShouldBeTrue)
			})

			Convey("Then the ledger should hold both gates in order", func() {
				history := reg.History(0)
				So(len(history), ShouldEqual, 2)
				So(history[0].Kind, ShouldEqual, OpHadamard)
				So(history[0].Qubits, ShouldResemble, []int{1})
				So(history[0].Outcome, ShouldEqual, -1)
				So(history[1].Kind, ShouldEqual, OpCNOT)
				So(history[1].Qubits, ShouldResemble, []int{1, 0})
				So(history[1].Sequence, ShouldEqual, uint64(1))
			})

			Convey("When measuring both qubits", func() {
				first, err := reg.Measure(1)
				So(err, ShouldBeNil)
				second, err := reg.Measure(0)
				So(err, ShouldBeNil)

				Convey("Then the outcomes should agree and be recorded", func() {
					So(second, ShouldEqual, first)

					history := reg.History(2)
					So(len(history), ShouldEqual, 2)
					So(history[0].Kind, ShouldEqual, OpMeasure)
					So(history[0].Outcome, ShouldEqual, int(first))
					So(history[1].Outcome, ShouldEqual, int(second))
				})

				Convey("Then the register should be in a basis state", func() {
					index := int(first)<<1 | int(second)
					So(reg.State().Probability(index), ShouldAlmostEqual, 1.0, 1e-9)
				})
			})

			Convey("When measuring the whole register", func() {
				index, err := reg.MeasureAll()
				So(err, ShouldBeNil)

				Convey("Then only |00⟩ or |11⟩ should be observed", func() {
					So(index == 0 || index == 3, ShouldBeTrue)

					last := reg.History(2)
					So(len(last), ShouldEqual, 1)
					So(last[0].Kind, ShouldEqual, OpMeasureAll)
					So(last[0].Qubits, ShouldResemble, []int{0, 1})
					So(last[0].Outcome, ShouldEqual, index)
				})
			})
		})

		Convey("When an operation fails", func() {
			before := reg.State()
			err := reg.CNOT(0, 0)

			Convey("Then the state and ledger should be untouched", func() {
				So(errors.Is(err, ErrQubitConflict), ShouldBeTrue)
				So(reg.State(), ShouldPointTo, before)
				So(reg.History(0), ShouldBeEmpty)
			})
		})

		Convey("When a caller modifies the history it was given", func() {
			So(reg.H(1), ShouldBeNil)
			So(reg.CNOT(1, 0), ShouldBeNil)

			history := reg.History(0)
			history[0].Qubits[0] = 7
			history[1].Qubits[1] = 7

			Convey("Then the recorded ledger should be unaffected", func() {
				again := reg.History(0)
				So(again[0].Qubits, ShouldResemble, []int{1})
				So(again[1].Qubits, ShouldResemble, []int{1, 0})
			})
		})

		Convey("When the history is read past its end", func() {
			So(reg.H(0), ShouldBeNil)
			So(reg.History(5), ShouldBeEmpty)
		})
	})
}

func TestRegisterReproducibility(t *testing.T) {
	Convey("Given two registers with the same seed", t, func() {
		cfg := &Config{Tolerance: 1e-6, Seed: 99, LogLevel: "warn"}

		run := func() []int {
			reg, err := NewZeroRegister(3, cfg)
			So(err, ShouldBeNil)

			outcomes := make([]int, 0, 12)
			for i := 0; i < 4; i++ {
				So(reg.H(0), ShouldBeNil)
				So(reg.H(2), ShouldBeNil)
				So(reg.CNOT(2, 1), ShouldBeNil)

				index, err := reg.MeasureAll()
				So(err, ShouldBeNil)
				outcomes = append(outcomes, index)
			}
			return outcomes
		}

		Convey("Then they should observe the same outcomes", func() {
			a, b := run(), run()
			if len(a) != len(b) {
				t.Log(spew.Sdump(a, b))
			}
			So(a, ShouldResemble, b)
		})
	})
}
