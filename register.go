package qsim

import (
	"time"

	"github.com/theapemachine/errnie"
)

// OperationKind names what a ledger entry did to a Register.
type OperationKind string

const (
	OpHadamard   OperationKind = "H"
	OpCNOT       OperationKind = "CNOT"
	OpMeasure    OperationKind = "MEASURE"
	OpMeasureAll OperationKind = "MEASURE_ALL"
)

/*
Operation is an immutable record of one successful step applied to a
Register. Qubits lists the qubits involved, control first for CNOT.
Outcome holds the measured bit for OpMeasure, the basis index for
OpMeasureAll, and -1 for gates.
*/
type Operation struct {
	Sequence  uint64
	Kind      OperationKind
	Qubits    []int
	Outcome   int
	Timestamp time.Time
}

/*
Register owns a StateVector and moves it forward one gate or measurement at a
time, recording each step in a ledger. A step that fails leaves both the state
and the ledger as they were. A Register has a single owner and is not safe for
concurrent use.
*/
type Register struct {
	state   *StateVector
	sampler Sampler
	cfg     *Config
	ledger  []Operation
}

/*
NewRegister wraps psi, which must not be nil. A nil cfg uses NewConfig. The
config's log level is applied to the package logger.
*/
func NewRegister(psi *StateVector, cfg *Config) (*Register, error) {
	if psi == nil {
		return nil, opErrorf("NewRegister", ErrInvalidState, "nil state")
	}

	if cfg == nil {
		cfg = NewConfig()
	}

	if err := SetLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	errnie.Info(
		"NewRegister - qubits %v, seed %v, tolerance %v",
		psi.Qubits(),
		cfg.Seed,
		cfg.Tolerance,
	)

	return &Register{
		state:   psi,
		sampler: cfg.sampler(),
		cfg:     cfg,
		ledger:  make([]Operation, 0),
	}, nil
}

// NewZeroRegister returns a Register of the given width in state |0...0⟩.
func NewZeroRegister(qubits int, cfg *Config) (*Register, error) {
	if qubits < 0 || qubits > 30 {
		return nil, opErrorf("NewZeroRegister", ErrIndexOutOfRange, "%d qubits", qubits)
	}

	amplitudes := make([]float64, 1<<uint(qubits))
	amplitudes[0] = 1

	psi, err := fromComputed(amplitudes)
	if err != nil {
		return nil, err
	}

	return NewRegister(psi, cfg)
}

// State returns the register's current state.
func (r *Register) State() *StateVector {
	return r.state
}

// Equal compares the current state to other within the configured tolerance.
func (r *Register) Equal(other *StateVector) bool {
	return r.state.Equal(other, r.cfg.Tolerance)
}

// H applies a Hadamard gate to target.
func (r *Register) H(target int) error {
	next, err := H(r.state, target)
	if err != nil {
		return err
	}

	r.record(next, OpHadamard, -1, target)
	return nil
}

// CNOT applies a controlled-NOT gate.
func (r *Register) CNOT(control, target int) error {
	next, err := CNOT(r.state, control, target)
	if err != nil {
		return err
	}

	r.record(next, OpCNOT, -1, control, target)
	return nil
}

// Measure measures target with the register's sampler and collapses the state.
func (r *Register) Measure(target int) (uint8, error) {
	bit, next, err := MeasureWith(r.sampler, r.state, target)
	if err != nil {
		return 0, err
	}

	r.record(next, OpMeasure, int(bit), target)
	return bit, nil
}

// MeasureAll measures every qubit and returns the observed basis index.
func (r *Register) MeasureAll() (int, error) {
	index, next, err := MeasureAllWith(r.sampler, r.state)
	if err != nil {
		return 0, err
	}

	qubits := make([]int, r.state.Qubits())
	for i := range qubits {
		qubits[i] = i
	}

	r.record(next, OpMeasureAll, index, qubits...)
	return index, nil
}

func (r *Register) record(next *StateVector, kind OperationKind, outcome int, qubits ...int) {
	r.state = next
	r.ledger = append(r.ledger, Operation{
		Sequence:  uint64(len(r.ledger)),
		Kind:      kind,
		Qubits:    qubits,
		Outcome:   outcome,
		Timestamp: time.Now(),
	})
}

/*
History returns the operations recorded since sequence number since, in the
order they were applied. History(0) returns the whole ledger. The entries are
copies and may be modified freely.
*/
func (r *Register) History(since uint64) []Operation {
	if since >= uint64(len(r.ledger)) {
		return []Operation{}
	}

	out := make([]Operation, len(r.ledger)-int(since))
	copy(out, r.ledger[since:])

	for i := range out {
		out[i].Qubits = append([]int(nil), out[i].Qubits...)
	}

	return out
}
