package qsim

import (
	"fmt"
	"math"
	"strings"
)

/*
DefaultEpsilon is the tolerance used when checking that a StateVector's
squared amplitudes sum to 1.
*/
const DefaultEpsilon = 1e-3

/*
StateVector holds the real amplitudes of a register of log2(N) qubits, one per
basis state, indexed 0..N-1. Every StateVector is normalized within
DefaultEpsilon and has a power-of-two length; both are checked whenever one is
constructed.

Gates and measurement never modify the StateVector they are given. They hand
back a new value instead, so a StateVector can be shared freely.
*/
type StateVector struct {
	amplitudes []float64
}

/*
NewStateVector validates amplitudes and returns a StateVector holding a copy
of them. It fails with ErrInvalidState when the squared amplitudes do not sum
to 1 within DefaultEpsilon, or when the length is not a power of two.
*/
func NewStateVector(amplitudes []float64) (*StateVector, error) {
	psi, err := fromComputed(append([]float64(nil), amplitudes...))
	if err != nil {
		return nil, opErrorf("NewStateVector", err, "")
	}
	return psi, nil
}

/*
fromComputed takes ownership of buf, which must not be referenced by anyone
else afterwards, and validates it the same way NewStateVector does.
*/
func fromComputed(buf []float64) (*StateVector, error) {
	psi := &StateVector{amplitudes: buf}
	if err := psi.validate(); err != nil {
		return nil, err
	}
	return psi, nil
}

func (psi *StateVector) validate() error {
	if !isPowerOfTwo(len(psi.amplitudes)) {
		return fmt.Errorf("%w: length %d is not a power of two", ErrInvalidState, len(psi.amplitudes))
	}

	if norm := psi.norm(); math.Abs(norm-1) >= DefaultEpsilon {
		return fmt.Errorf("%w: not normalized, sum of squares is %g", ErrInvalidState, norm)
	}

	return nil
}

// norm is the sum of squared amplitudes.
func (psi *StateVector) norm() float64 {
	var sum float64
	for _, a := range psi.amplitudes {
		sum += a * a
	}
	return sum
}

// Len returns the number of basis states N.
func (psi *StateVector) Len() int { return len(psi.amplitudes) }

// Qubits returns the number of qubits in the register, log2(N).
func (psi *StateVector) Qubits() int { return qubitCount(len(psi.amplitudes)) }

// Amplitude returns the amplitude of basis state i.
func (psi *StateVector) Amplitude(i int) float64 { return psi.amplitudes[i] }

// Probability returns the Born-rule probability of basis state i.
func (psi *StateVector) Probability(i int) float64 {
	return psi.amplitudes[i] * psi.amplitudes[i]
}

// Amplitudes returns a copy of all amplitudes in basis order.
func (psi *StateVector) Amplitudes() []float64 {
	return append([]float64(nil), psi.amplitudes...)
}

// clone returns a copy whose buffer the caller owns.
func (psi *StateVector) clone() *StateVector {
	return &StateVector{amplitudes: psi.Amplitudes()}
}

// swapBasis exchanges the amplitudes of basis states i and j in place. Only
// call it on a StateVector the caller owns exclusively.
func (psi *StateVector) swapBasis(i, j int) {
	psi.amplitudes[i], psi.amplitudes[j] = psi.amplitudes[j], psi.amplitudes[i]
}

// ToRowMatrix returns the amplitudes as a 1 x N matrix.
func (psi *StateVector) ToRowMatrix() *Matrix {
	return newMatrix([][]float64{psi.Amplitudes()})
}

/*
StateVectorFromRow builds a StateVector from a 1 x N matrix. A matrix with
more than one row fails with ErrInvalidShape.
*/
func StateVectorFromRow(mat *Matrix) (*StateVector, error) {
	if mat.Rows() != 1 {
		return nil, opErrorf("StateVectorFromRow", ErrInvalidShape, "want 1 row, got %d", mat.Rows())
	}

	psi, err := fromComputed(mat.Row(0))
	if err != nil {
		return nil, opErrorf("StateVectorFromRow", err, "")
	}
	return psi, nil
}

/*
Equal compares amplitudes pairwise and reports whether every pair differs by
less than tol. This is not a distance between the states. Vectors of
different length are never equal.
*/
func (psi *StateVector) Equal(other *StateVector, tol float64) bool {
	if other == nil || len(psi.amplitudes) != len(other.amplitudes) {
		return false
	}

	for i, a := range psi.amplitudes {
		if math.Abs(a-other.amplitudes[i]) >= tol {
			return false
		}
	}

	return true
}

/*
String renders each amplitude next to its basis label, the index written in
binary and zero-padded to ceil(log2(N)) digits:

	ψ = (0.70711)|00>   (0.00000)|01>   (0.00000)|10>   (0.70711)|11>
*/
func (psi *StateVector) String() string {
	width := labelWidth(len(psi.amplitudes))

	var sb strings.Builder
	sb.WriteString("ψ = ")
	for i, a := range psi.amplitudes {
		fmt.Fprintf(&sb, "(%.5f)|%0*b>   ", a, width, i)
	}
	return sb.String()
}
