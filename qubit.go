package qsim

import "math/bits"

/*
Qubit is a little-endian qubit index into a register. Qubit k's value in basis
state i is bit k of i, so qubit 0 is the least significant bit of the basis
index and the rightmost character of its binary label.
*/
type Qubit int

// Of returns this qubit's value (0 or 1) in basis state index.
func (q Qubit) Of(index int) int {
	return (index >> uint(q)) & 1
}

// Flip returns index with this qubit's bit inverted.
func (q Qubit) Flip(index int) int {
	return index ^ (1 << uint(q))
}

// In reports whether the qubit exists in a register of n qubits.
func (q Qubit) In(n int) bool {
	return q >= 0 && int(q) < n
}

// qubitCount returns log2(length) for a power-of-two length.
func qubitCount(length int) int {
	return bits.TrailingZeros(uint(length))
}

// labelWidth is ceil(log2(length)), the width of a basis label.
func labelWidth(length int) int {
	if length <= 1 {
		return 0
	}
	return bits.Len(uint(length - 1))
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
