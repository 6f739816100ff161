package qsim

/*
H applies a Hadamard gate to qubit target of psi and returns the new state.

The full N x N operator is built as I ⊗ ... ⊗ H ⊗ ... ⊗ I, folding from the
most significant qubit down to qubit 0 with H in the target position, then
multiplied against psi as a column vector. That costs O(N²) per call.
*/
func H(psi *StateVector, target int) (*StateVector, error) {
	n := psi.Qubits()
	if !Qubit(target).In(n) {
		return nil, opErrorf("H", ErrIndexOutOfRange, "target %d on %d qubits", target, n)
	}

	op, err := singleQubitOperator(Hadamard(), n, target)
	if err != nil {
		return nil, opErrorf("H", err, "")
	}

	column, err := DotProduct(op, Transpose(psi.ToRowMatrix()))
	if err != nil {
		return nil, opErrorf("H", err, "")
	}

	next, err := StateVectorFromRow(Transpose(column))
	if err != nil {
		return nil, opErrorf("H", err, "")
	}

	logger.Debug("applied hadamard", "target", target, "qubits", n)

	return next, nil
}

// singleQubitOperator expands gate to act on qubit target of an n-qubit
// register.
func singleQubitOperator(gate *Matrix, n, target int) (*Matrix, error) {
	identity, err := Identity(2)
	if err != nil {
		return nil, err
	}

	op := newMatrix([][]float64{{1}})
	for q := n - 1; q >= 0; q-- {
		if q == target {
			op = TensorProduct(op, gate)
		} else {
			op = TensorProduct(op, identity)
		}
	}

	return op, nil
}

/*
CNOT flips qubit target in every basis state where qubit control is 1, and
returns the new state. It permutes amplitudes directly instead of building
the operator matrix, so the result keeps the norm of psi.
*/
func CNOT(psi *StateVector, control, target int) (*StateVector, error) {
	n := psi.Qubits()
	if !Qubit(control).In(n) || !Qubit(target).In(n) {
		return nil, opErrorf("CNOT", ErrIndexOutOfRange, "control %d, target %d on %d qubits", control, target, n)
	}
	if control == target {
		return nil, opErrorf("CNOT", ErrQubitConflict, "qubit %d", control)
	}

	c, t := Qubit(control), Qubit(target)
	next := psi.clone()

	for i := 0; i < next.Len(); i++ {
		if c.Of(i) == 1 {
			if j := t.Flip(i); i < j {
				next.swapBasis(i, j)
			}
		}
	}

	if err := next.validate(); err != nil {
		return nil, opErrorf("CNOT", err, "")
	}

	logger.Debug("applied cnot", "control", control, "target", target, "qubits", n)

	return next, nil
}
