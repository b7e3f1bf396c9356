package circuit

import (
	"github.com/simcircuit/simcircuit/model"
)

// Circuit is the immutable product of a Builder: an ordered, validated
// component list whose insertion order is a valid topological order, the
// external input and output wire ids, and the wire-id-to-internal-index map.
//
// Circuit itself implements model.Component and model.Executable, so a built
// circuit can be fed to another builder as a component, enabling
// hierarchical composition.
type Circuit[T any] struct {
	components []model.Executable[T]

	// externally visible wire lists. When the circuit is nested inside an
	// outer builder these get rewritten to the outer memory's indices; the
	// internal index lists below stay fixed.
	inputs  []int
	outputs []int

	inputIndices  []int
	outputIndices []int

	wireIndex  map[int]int
	memorySize int
}

// Inputs returns the external input wire ids in declaration order.
func (c *Circuit[T]) Inputs() []int {
	return c.inputs
}

// Outputs returns the external output wire ids in discovery order.
func (c *Circuit[T]) Outputs() []int {
	return c.outputs
}

// SetInputs rewrites the externally visible input wire list. It is called by
// an outer builder when the circuit is used as a component.
func (c *Circuit[T]) SetInputs(inputs []int) {
	c.inputs = inputs
}

// SetOutputs rewrites the externally visible output wire list.
func (c *Circuit[T]) SetOutputs(outputs []int) {
	c.outputs = outputs
}

// MemorySize returns one plus the maximum internal index ever assigned,
// which is the exact allocation size an executor must provide.
func (c *Circuit[T]) MemorySize() int {
	return c.memorySize
}

// WireIndex returns the internal memory index of a wire id.
func (c *Circuit[T]) WireIndex(wire int) (int, bool) {
	idx, ok := c.wireIndex[wire]
	return idx, ok
}

// run executes every component in order against mem, which must be the
// circuit's own memory with all input slots already written. Component
// failures are wrapped in ComponentExecutionError.
func (c *Circuit[T]) run(mem model.Memory[T]) error {
	for i, comp := range c.components {
		if err := comp.Execute(mem); err != nil {
			return ComponentExecutionError{Index: i, Err: err}
		}
	}
	return nil
}

// Execute runs the circuit as a component of an enclosing circuit: it reads
// its declared inputs from mem, runs all components on a fresh inner memory,
// and writes its declared outputs back to mem.
func (c *Circuit[T]) Execute(mem model.Memory[T]) error {
	inner := NewCircuitMemory[T](c.memorySize)
	for i, pos := range c.inputs {
		v, err := mem.Read(pos)
		if err != nil {
			return err
		}
		if err := inner.Write(c.inputIndices[i], v); err != nil {
			return err
		}
	}
	if err := c.run(inner); err != nil {
		return err
	}
	for i, pos := range c.outputs {
		v, err := inner.Read(c.outputIndices[i])
		if err != nil {
			return err
		}
		if err := mem.Write(pos, v); err != nil {
			return err
		}
	}
	return nil
}
