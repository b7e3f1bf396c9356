package gates

import (
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/simcircuit/simcircuit/model"
)

// FieldOp enumerates the arithmetic operations over the BN254 scalar field.
type FieldOp int

const (
	_ FieldOp = iota
	FieldAdd
	FieldSub
	FieldMul
	FieldDiv
	FieldNeg
)

func (op FieldOp) String() string {
	switch op {
	case FieldAdd:
		return "FAdd"
	case FieldSub:
		return "FSub"
	case FieldMul:
		return "FMul"
	case FieldDiv:
		return "FDiv"
	case FieldNeg:
		return "FNeg"
	}
	return "INVALID"
}

// Arity returns the number of input wires the operation consumes.
func (op FieldOp) Arity() int {
	if op == FieldNeg {
		return 1
	}
	return 2
}

// FieldGate computes one operation over BN254 scalar-field elements.
// Negation reads one input wire, all other operations read two; every gate
// drives one output wire. Division is multiplication by the inverse and
// fails with ErrDivisionByZero for a zero right-hand input.
type FieldGate struct {
	wiring
	Op FieldOp
}

// NewFieldGate returns a gate reading lhs and rhs and driving output.
func NewFieldGate(op FieldOp, lhs, rhs, output int) *FieldGate {
	return &FieldGate{
		wiring: wiring{inputs: []int{lhs, rhs}, outputs: []int{output}},
		Op:     op,
	}
}

// NewFieldNeg returns a unary negation gate reading input and driving
// output.
func NewFieldNeg(input, output int) *FieldGate {
	return &FieldGate{
		wiring: wiring{inputs: []int{input}, outputs: []int{output}},
		Op:     FieldNeg,
	}
}

// Execute reads the declared inputs and writes the result to the declared
// output.
func (g *FieldGate) Execute(mem model.Memory[fr_bn254.Element]) error {
	if len(g.inputs) != g.Op.Arity() {
		return UnsupportedOpError{Op: g.Op.String()}
	}
	a, err := mem.Read(g.inputs[0])
	if err != nil {
		return err
	}
	var b fr_bn254.Element
	if g.Op.Arity() == 2 {
		if b, err = mem.Read(g.inputs[1]); err != nil {
			return err
		}
	}

	var result fr_bn254.Element
	switch g.Op {
	case FieldAdd:
		result.Add(&a, &b)
	case FieldSub:
		result.Sub(&a, &b)
	case FieldMul:
		result.Mul(&a, &b)
	case FieldDiv:
		if b.IsZero() {
			return ErrDivisionByZero
		}
		result.Div(&a, &b)
	case FieldNeg:
		result.Neg(&a)
	default:
		return UnsupportedOpError{Op: g.Op.String()}
	}
	return mem.Write(g.outputs[0], result)
}
