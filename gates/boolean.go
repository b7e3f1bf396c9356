package gates

import (
	"github.com/simcircuit/simcircuit/model"
)

// BoolOp enumerates the boolean logic operations.
type BoolOp int

const (
	_ BoolOp = iota
	BoolAnd
	BoolOr
	BoolXor
	BoolNand
	BoolNot
)

func (op BoolOp) String() string {
	switch op {
	case BoolAnd:
		return "AND"
	case BoolOr:
		return "OR"
	case BoolXor:
		return "XOR"
	case BoolNand:
		return "NAND"
	case BoolNot:
		return "NOT"
	}
	return "INVALID"
}

// Arity returns the number of input wires the operation consumes.
func (op BoolOp) Arity() int {
	if op == BoolNot {
		return 1
	}
	return 2
}

// BoolGate computes one boolean operation. NOT reads one input wire, all
// other operations read two; every gate drives one output wire.
type BoolGate struct {
	wiring
	Op BoolOp
}

// NewBoolGate returns a gate reading inputs and driving output.
func NewBoolGate(op BoolOp, inputs []int, output int) *BoolGate {
	return &BoolGate{
		wiring: wiring{inputs: inputs, outputs: []int{output}},
		Op:     op,
	}
}

// Execute reads the declared inputs and writes the result to the declared
// output.
func (g *BoolGate) Execute(mem model.Memory[bool]) error {
	if len(g.inputs) != g.Op.Arity() {
		return UnsupportedOpError{Op: g.Op.String()}
	}
	a, err := mem.Read(g.inputs[0])
	if err != nil {
		return err
	}
	var b bool
	if g.Op.Arity() == 2 {
		if b, err = mem.Read(g.inputs[1]); err != nil {
			return err
		}
	}

	var result bool
	switch g.Op {
	case BoolAnd:
		result = a && b
	case BoolOr:
		result = a || b
	case BoolXor:
		result = a != b
	case BoolNand:
		result = !(a && b)
	case BoolNot:
		result = !a
	default:
		return UnsupportedOpError{Op: g.Op.String()}
	}
	return mem.Write(g.outputs[0], result)
}
