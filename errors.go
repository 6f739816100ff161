package qsim

import (
	"errors"
	"fmt"
)

/*
Every failure in qsim is a caller-input error. Functions return one of these
sentinels, usually wrapped with the name of the failing operation, and callers
match them with errors.Is. Nothing is retried and nothing degrades.
*/
var (
	// ErrInvalidShape is returned for an empty matrix, a matrix with an empty
	// row, or rows of unequal length.
	ErrInvalidShape = errors.New("qsim: invalid matrix shape")

	// ErrDimensionMismatch is returned by DotProduct when a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("qsim: dimension mismatch")

	// ErrInvalidState is returned when amplitudes are not normalized within
	// DefaultEpsilon, or the vector length is not a power of two.
	ErrInvalidState = errors.New("qsim: invalid quantum state vector")

	// ErrIndexOutOfRange is returned when a gate or measurement targets a
	// qubit the register does not have.
	ErrIndexOutOfRange = errors.New("qsim: qubit index out of range")

	// ErrQubitConflict is returned when a two-qubit gate names the same qubit
	// as control and target.
	ErrQubitConflict = errors.New("qsim: control and target qubit are the same")

	// ErrCollapse signals that the surviving branch of a measurement had no
	// probability mass left to renormalize.
	ErrCollapse = errors.New("qsim: collapse left no probability mass")
)

func opErrorf(op string, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
