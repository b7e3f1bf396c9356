package circuit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Structural build errors. Build errors are permanent for a given component
// sequence; the caller must fix the sequence and rebuild.
var (
	// ErrDisconnectedComponent is returned when a component declares no
	// inputs or no outputs.
	ErrDisconnectedComponent = errors.New("component has no inputs or no outputs")

	// ErrEmptyBuilder is returned by Build when no components were added.
	ErrEmptyBuilder = errors.New("builder has no components")
)

// TopologicalOrderError reports a component input wire that is neither a
// declared circuit input nor an output of a previously added component.
type TopologicalOrderError struct {
	Wire int
}

func (e TopologicalOrderError) Error() string {
	return fmt.Sprintf("wire %d is not a circuit input or an earlier component output", e.Wire)
}

// OutputIsCircuitInputError reports a component output wire that collides
// with a declared circuit input. Circuit inputs are never rebound.
type OutputIsCircuitInputError struct {
	Wire int
}

func (e OutputIsCircuitInputError) Error() string {
	return fmt.Sprintf("wire %d is a circuit input and cannot be driven by a component", e.Wire)
}

// OutputsConnectionError reports a wire already driven by an earlier
// component. No two components may drive the same wire.
type OutputsConnectionError struct {
	Wire int
}

func (e OutputsConnectionError) Error() string {
	return fmt.Sprintf("wire %d is already driven by an earlier component", e.Wire)
}

// UnusedInputsError lists declared circuit inputs never consumed by any
// component.
type UnusedInputsError struct {
	Wires []int
}

func (e UnusedInputsError) Error() string {
	s := make([]string, len(e.Wires))
	for i, w := range e.Wires {
		s[i] = strconv.Itoa(w)
	}
	return fmt.Sprintf("declared inputs never consumed: %s", strings.Join(s, ", "))
}

// Memory errors.

// OutOfBoundsError reports an access outside the memory's index space.
type OutOfBoundsError struct {
	Index int
	Size  int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d is out of bounds for memory of size %d", e.Index, e.Size)
}

// UninitializedError reports a read from a slot that was never written.
type UninitializedError struct {
	Index int
}

func (e UninitializedError) Error() string {
	return fmt.Sprintf("slot %d was never written", e.Index)
}

// AlreadyWrittenError reports a second write to a write-once slot.
type AlreadyWrittenError struct {
	Index int
}

func (e AlreadyWrittenError) Error() string {
	return fmt.Sprintf("slot %d was already written", e.Index)
}

// Execution errors.

// InputLengthMismatchError reports an input binding whose size differs from
// the circuit's declared input count.
type InputLengthMismatchError struct {
	Got  int
	Want int
}

func (e InputLengthMismatchError) Error() string {
	return fmt.Sprintf("input binding has %d entries, circuit declares %d inputs", e.Got, e.Want)
}

// InputNotFoundError reports a declared input wire absent from the binding.
type InputNotFoundError struct {
	Wire int
}

func (e InputNotFoundError) Error() string {
	return fmt.Sprintf("input wire %d is missing from the binding", e.Wire)
}

// MemoryMappingError reports a wire id with no assigned internal index.
type MemoryMappingError struct {
	Wire int
}

func (e MemoryMappingError) Error() string {
	return fmt.Sprintf("wire %d has no internal memory index", e.Wire)
}

// ComponentExecutionError wraps a failure of one component during a run.
// Index is the component's position in the circuit's evaluation order.
type ComponentExecutionError struct {
	Index int
	Err   error
}

func (e ComponentExecutionError) Error() string {
	return fmt.Sprintf("component %d failed: %v", e.Index, e.Err)
}

func (e ComponentExecutionError) Unwrap() error {
	return e.Err
}

// UndefinedOutputError reports an external output slot that was never
// written. Every component of a validly built circuit executes, so this
// indicates a defect in a gate implementation rather than caller misuse.
type UndefinedOutputError struct {
	Wire int
}

func (e UndefinedOutputError) Error() string {
	return fmt.Sprintf("output wire %d was never written", e.Wire)
}
