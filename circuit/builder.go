package circuit

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/simcircuit/simcircuit/logger"
	"github.com/simcircuit/simcircuit/model"
)

// Builder incrementally assembles a circuit, validating legality as each
// component arrives. The checks are purely local and one-pass: a component
// may only read wires that are declared circuit inputs or outputs of earlier
// components, so insertion order is itself a valid evaluation order and no
// separate cycle search is needed.
//
// Wire ids may be sparse and arbitrarily ordered; the builder compacts them
// into dense internal indices in first-encounter order and rewrites each
// accepted component's wire lists to those indices.
//
// A Builder is single-use: Build consumes its state.
type Builder[T any] struct {
	components []model.Executable[T]

	// declared circuit input wire ids, in declaration order
	inputs []int

	// wire id <-> internal index, bijective for the builder's lifetime
	wireIndex   map[int]int
	wireByIndex []int

	// legality sets over internal indices
	isInput  *bitset.BitSet
	produced *bitset.BitSet
	consumed *bitset.BitSet
}

// NewBuilder returns an empty builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		wireIndex: make(map[int]int),
		isInput:   bitset.New(0),
		produced:  bitset.New(0),
		consumed:  bitset.New(0),
	}
}

// index returns the internal index of a wire id, assigning the next free
// index on first encounter.
func (b *Builder[T]) index(wire int) int {
	if idx, ok := b.wireIndex[wire]; ok {
		return idx
	}
	idx := len(b.wireByIndex)
	b.wireIndex[wire] = idx
	b.wireByIndex = append(b.wireByIndex, wire)
	return idx
}

// AddInputs registers wire ids as externally driven circuit inputs.
// Registration is cumulative and must precede any component that reads the
// ids, since legality checking is online rather than a post-hoc fixpoint.
// Re-registering a declared input is a no-op; registering a wire already
// driven by a component fails with OutputIsCircuitInputError. On failure no
// id is registered.
func (b *Builder[T]) AddInputs(wires ...int) error {
	b.checkUsable()
	for _, w := range wires {
		if idx, ok := b.wireIndex[w]; ok && b.produced.Test(uint(idx)) {
			return OutputIsCircuitInputError{Wire: w}
		}
	}
	for _, w := range wires {
		if _, ok := b.wireIndex[w]; ok {
			continue
		}
		b.isInput.Set(uint(b.index(w)))
		b.inputs = append(b.inputs, w)
	}
	return nil
}

// AddComponent validates c against the circuit built so far and appends it.
// On success every newly seen wire id receives the next internal index and
// c's wire lists are rewritten, via SetInputs and SetOutputs, to internal
// indices. On failure the builder is left untouched.
func (b *Builder[T]) AddComponent(c model.Executable[T]) error {
	b.checkUsable()
	ins := c.Inputs()
	outs := c.Outputs()
	if len(ins) == 0 || len(outs) == 0 {
		return ErrDisconnectedComponent
	}

	// validate before mutating anything
	for _, w := range ins {
		idx, ok := b.wireIndex[w]
		if !ok {
			return TopologicalOrderError{Wire: w}
		}
		if !b.isInput.Test(uint(idx)) && !b.produced.Test(uint(idx)) {
			return TopologicalOrderError{Wire: w}
		}
	}
	seen := make(map[int]bool, len(outs))
	for _, w := range outs {
		if seen[w] {
			return OutputsConnectionError{Wire: w}
		}
		seen[w] = true
		idx, ok := b.wireIndex[w]
		if !ok {
			continue
		}
		if b.isInput.Test(uint(idx)) {
			return OutputIsCircuitInputError{Wire: w}
		}
		if b.produced.Test(uint(idx)) {
			return OutputsConnectionError{Wire: w}
		}
	}

	// commit
	mappedIns := make([]int, len(ins))
	for i, w := range ins {
		mappedIns[i] = b.wireIndex[w]
		b.consumed.Set(uint(mappedIns[i]))
	}
	mappedOuts := make([]int, len(outs))
	for i, w := range outs {
		mappedOuts[i] = b.index(w)
		b.produced.Set(uint(mappedOuts[i]))
	}
	c.SetInputs(mappedIns)
	c.SetOutputs(mappedOuts)
	b.components = append(b.components, c)
	return nil
}

// Build validates the accumulated circuit as a whole and produces it,
// consuming the builder. Any further use of the builder panics.
//
// External outputs are the component outputs never consumed by another
// component, in wire discovery order.
func (b *Builder[T]) Build() (*Circuit[T], error) {
	b.checkUsable()
	if len(b.components) == 0 {
		return nil, ErrEmptyBuilder
	}

	var unused []int
	for _, w := range b.inputs {
		if !b.consumed.Test(uint(b.wireIndex[w])) {
			unused = append(unused, w)
		}
	}
	if len(unused) > 0 {
		return nil, UnusedInputsError{Wires: unused}
	}

	c := &Circuit[T]{
		components:    b.components,
		inputs:        b.inputs,
		wireIndex:     b.wireIndex,
		memorySize:    len(b.wireByIndex),
		inputIndices:  make([]int, len(b.inputs)),
		outputIndices: nil,
	}
	for i, w := range b.inputs {
		c.inputIndices[i] = b.wireIndex[w]
	}
	for idx, w := range b.wireByIndex {
		if b.produced.Test(uint(idx)) && !b.consumed.Test(uint(idx)) {
			c.outputs = append(c.outputs, w)
			c.outputIndices = append(c.outputIndices, idx)
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("nbComponents", len(c.components)).
		Int("nbWires", c.memorySize).
		Int("nbInputs", len(c.inputs)).
		Int("nbOutputs", len(c.outputs)).
		Msg("built circuit")

	// consume the builder
	b.components = nil
	b.inputs = nil
	b.wireIndex = nil
	b.wireByIndex = nil
	b.isInput = nil
	b.produced = nil
	b.consumed = nil

	return c, nil
}

func (b *Builder[T]) checkUsable() {
	if b.wireIndex == nil {
		panic("circuit: builder reused after Build")
	}
}
