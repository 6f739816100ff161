package qsim

import "math"

// collapseFloor is the smallest surviving probability mass a collapse will
// renormalize.
const collapseFloor = 1e-12

/*
Measure measures one qubit using the process-wide random generator.
See MeasureWith.
*/
func Measure(psi *StateVector, target int) (uint8, *StateVector, error) {
	return MeasureWith(DefaultSampler(), psi, target)
}

/*
MeasureWith measures qubit target of psi, drawing from sampler.

The probability p0 of reading 0 is the summed probability of every basis state
whose target bit is 0, divided by the total probability of psi so that a state
normalized only within DefaultEpsilon still yields a proper distribution. One
uniform sample r decides the outcome: 0 when r < p0, otherwise 1. The returned StateVector keeps the full length of psi. Basis
states that disagree with the outcome are zeroed and the rest are rescaled
so the vector is normalized again. psi itself is left untouched.

Targets are rejected with ErrIndexOutOfRange when target*target >= psi.Len().
That bound lets through some targets at or beyond Qubits() on larger
registers; such a qubit always reads 0 and leaves the state as it was.
*/
func MeasureWith(sampler Sampler, psi *StateVector, target int) (uint8, *StateVector, error) {
	n := psi.Len()
	if target < 0 || target*target >= n {
		return 0, nil, opErrorf("Measure", ErrIndexOutOfRange, "target %d on %d basis states", target, n)
	}

	q := Qubit(target)

	var zeroProb float64
	for i, a := range psi.amplitudes {
		if q.Of(i) == 0 {
			zeroProb += a * a
		}
	}
	zeroProb /= psi.norm()

	var outcome uint8
	if r := sampler.Float64(); r >= zeroProb {
		outcome = 1
	}

	collapsed := make([]float64, n)
	var total float64
	for i, a := range psi.amplitudes {
		if uint8(q.Of(i)) == outcome {
			collapsed[i] = a
			total += a * a
		}
	}

	if total <= collapseFloor {
		return 0, nil, opErrorf("Measure", ErrCollapse, "outcome %d on qubit %d has probability %g", outcome, target, total)
	}

	scale := math.Sqrt(total)
	for i := range collapsed {
		collapsed[i] /= scale
	}

	next, err := fromComputed(collapsed)
	if err != nil {
		return 0, nil, opErrorf("Measure", err, "")
	}

	logger.Debug("measured qubit", "target", target, "p0", zeroProb, "outcome", outcome)

	return outcome, next, nil
}

/*
MeasureAll measures every qubit at once using the process-wide generator.
See MeasureAllWith.
*/
func MeasureAll(psi *StateVector) (int, *StateVector, error) {
	return MeasureAllWith(DefaultSampler(), psi)
}

/*
MeasureAllWith samples a basis state from the Born-rule distribution of psi
and returns its index together with the collapsed state, which has amplitude 1
at that index and 0 everywhere else.
*/
func MeasureAllWith(sampler Sampler, psi *StateVector) (int, *StateVector, error) {
	// Probabilities are rescaled by their total so the cumulative sum
	// reaches 1 even for a state that is only normalized within epsilon.
	total := psi.norm()

	r := sampler.Float64()
	measured := -1

	var cumulative float64
	for i, a := range psi.amplitudes {
		p := a * a / total
		if p == 0 {
			continue
		}

		cumulative += p
		measured = i
		if r < cumulative {
			break
		}
	}

	if measured < 0 {
		return 0, nil, opErrorf("MeasureAll", ErrCollapse, "")
	}

	collapsed := make([]float64, psi.Len())
	collapsed[measured] = 1

	next, err := fromComputed(collapsed)
	if err != nil {
		return 0, nil, opErrorf("MeasureAll", err, "")
	}

	logger.Debug("measured register", "outcome", measured)

	return measured, next, nil
}
