/*
Package qsim simulates small quantum registers as state vectors with real
amplitudes.

A StateVector holds one amplitude per basis state. Qubit k of basis index i
is bit k of i, counting from the least significant bit. Gates (H, CNOT) and
measurement (Measure, MeasureAll) take a StateVector and return a new one,
leaving their input untouched. Register wraps the same operations for callers
that prefer to step one mutable handle forward and keep a ledger of what
happened.

	psi, _ := qsim.NewStateVector([]float64{1, 0, 0, 0})
	psi, _ = qsim.H(psi, 1)
	psi, _ = qsim.CNOT(psi, 1, 0)
	bit, psi, _ := qsim.Measure(psi, 1)
*/
package qsim
