package bristol

import (
	"fmt"
	"sort"

	"github.com/simcircuit/simcircuit/circuit"
	"github.com/simcircuit/simcircuit/model"
)

// GateFactory translates one parsed gate into an executable component for a
// chosen value type.
type GateFactory[T any] func(op string, lhs, rhs, output int) (model.Executable[T], error)

// MissingInputError reports a named input absent from a Run binding.
type MissingInputError struct {
	Name string
}

func (e MissingInputError) Error() string {
	return fmt.Sprintf("input %q is missing", e.Name)
}

// Compile feeds the parsed gates, in file order, through a builder and
// returns the validated circuit. Named inputs and constant wires are
// declared as externally driven circuit inputs.
func Compile[T any](c *Circuit, newGate GateFactory[T]) (*circuit.Circuit[T], error) {
	b := circuit.NewBuilder[T]()
	if err := b.AddInputs(c.externalWires()...); err != nil {
		return nil, err
	}
	for i, g := range c.Gates {
		comp, err := newGate(g.Op, g.LhIn, g.RhIn, g.Out)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		if err := b.AddComponent(comp); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return b.Build()
}

// Run compiles the circuit, binds named inputs and parsed constants, runs it
// on one fresh executor, and returns the name-keyed outputs.
func Run[T any](c *Circuit, inputs map[string]T, newGate GateFactory[T], parse func(string) (T, error)) (map[string]T, error) {
	built, err := Compile(c, newGate)
	if err != nil {
		return nil, err
	}
	return RunCompiled(c, built, inputs, parse)
}

// RunCompiled runs an already compiled circuit. Named outputs are read back
// by wire, so a named output may also feed later gates.
func RunCompiled[T any](c *Circuit, built *circuit.Circuit[T], inputs map[string]T, parse func(string) (T, error)) (map[string]T, error) {
	binding := make(map[int]T, len(c.Info.InputNameToWireIndex)+len(c.Info.Constants))
	for name, wire := range c.Info.InputNameToWireIndex {
		v, ok := inputs[name]
		if !ok {
			return nil, MissingInputError{Name: name}
		}
		binding[wire] = v
	}
	for name, cst := range c.Info.Constants {
		v, err := parse(cst.Value)
		if err != nil {
			return nil, fmt.Errorf("constant %q: %w", name, err)
		}
		binding[cst.WireIndex] = v
	}

	exec := circuit.NewExecutor(built)
	if _, err := exec.Run(binding); err != nil {
		return nil, err
	}

	outputs := make(map[string]T, len(c.Info.OutputNameToWireIndex))
	for name, wire := range c.Info.OutputNameToWireIndex {
		v, err := exec.ReadWire(wire)
		if err != nil {
			return nil, err
		}
		outputs[name] = v
	}
	return outputs, nil
}

// externalWires returns the named input and constant wires in ascending wire
// order, so builder index assignment does not depend on map iteration.
func (c *Circuit) externalWires() []int {
	wires := make([]int, 0, len(c.Info.InputNameToWireIndex)+len(c.Info.Constants))
	for _, w := range c.Info.InputNameToWireIndex {
		wires = append(wires, w)
	}
	for _, cst := range c.Info.Constants {
		wires = append(wires, cst.WireIndex)
	}
	sort.Ints(wires)
	return wires
}
