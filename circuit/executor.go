package circuit

import "errors"

// Executor owns one circuit and one freshly sized memory and orchestrates a
// single run: bind inputs, execute, collect outputs.
//
// Because memory is write-once, an executor supports exactly one successful
// Run; a second call fails on the first input write with AlreadyWrittenError.
// Construct a fresh executor per run.
type Executor[T any] struct {
	circuit *Circuit[T]
	memory  *CircuitMemory[T]
}

// NewExecutor returns an executor over c with a fresh memory of
// c.MemorySize() empty slots. c must be as built: embedding a circuit in an
// outer builder rewrites its wire lists, after which it can only run as a
// component of the outer circuit.
func NewExecutor[T any](c *Circuit[T]) *Executor[T] {
	return &Executor[T]{
		circuit: c,
		memory:  NewCircuitMemory[T](c.MemorySize()),
	}
}

// Run binds inputs, executes the circuit, and returns the output binding.
// Either all outputs are produced or the first error encountered in
// declaration order is returned with no partial output.
func (e *Executor[T]) Run(inputs map[int]T) (map[int]T, error) {
	declared := e.circuit.Inputs()
	if len(inputs) != len(declared) {
		return nil, InputLengthMismatchError{Got: len(inputs), Want: len(declared)}
	}
	for _, wire := range declared {
		v, ok := inputs[wire]
		if !ok {
			return nil, InputNotFoundError{Wire: wire}
		}
		idx, ok := e.circuit.WireIndex(wire)
		if !ok {
			return nil, MemoryMappingError{Wire: wire}
		}
		if err := e.memory.Write(idx, v); err != nil {
			return nil, err
		}
	}

	if err := e.circuit.run(e.memory); err != nil {
		return nil, err
	}

	outputs := make(map[int]T, len(e.circuit.Outputs()))
	for _, wire := range e.circuit.Outputs() {
		v, err := e.ReadWire(wire)
		if err != nil {
			return nil, err
		}
		outputs[wire] = v
	}
	return outputs, nil
}

// ReadWire returns the value a wire holds in the executor's memory. After a
// successful Run this works for any wire of the circuit, not only the
// external outputs. A slot that was never written reports
// UndefinedOutputError.
func (e *Executor[T]) ReadWire(wire int) (T, error) {
	var zero T
	idx, ok := e.circuit.WireIndex(wire)
	if !ok {
		return zero, MemoryMappingError{Wire: wire}
	}
	v, err := e.memory.Read(idx)
	if err != nil {
		var uninit UninitializedError
		if errors.As(err, &uninit) {
			return zero, UndefinedOutputError{Wire: wire}
		}
		return zero, err
	}
	return v, nil
}
