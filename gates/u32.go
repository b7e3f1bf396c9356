package gates

import (
	"github.com/simcircuit/simcircuit/model"
)

// U32Op enumerates the operations of the compiler interchange gate catalog,
// computed over unsigned 32-bit integers. Comparison and boolean operations
// yield 0 or 1. The opcode strings match the gate-list format emitted by the
// external toolchain.
type U32Op int

const (
	_ U32Op = iota
	U32Add
	U32Sub
	U32Mul
	U32Div
	U32IntDiv
	U32Mod
	U32Pow
	U32Eq
	U32Neq
	U32Lt
	U32LEq
	U32Gt
	U32GEq
	U32BoolAnd
	U32BoolOr
	U32Xor
	U32BitAnd
	U32BitOr
	U32ShiftL
	U32ShiftR
)

var u32OpNames = map[U32Op]string{
	U32Add:     "AAdd",
	U32Sub:     "ASub",
	U32Mul:     "AMul",
	U32Div:     "ADiv",
	U32IntDiv:  "AIntDiv",
	U32Mod:     "AMod",
	U32Pow:     "APow",
	U32Eq:      "AEq",
	U32Neq:     "ANeq",
	U32Lt:      "ALt",
	U32LEq:     "ALEq",
	U32Gt:      "AGt",
	U32GEq:     "AGEq",
	U32BoolAnd: "ABoolAnd",
	U32BoolOr:  "ABoolOr",
	U32Xor:     "AXor",
	U32BitAnd:  "ABitAnd",
	U32BitOr:   "ABitOr",
	U32ShiftL:  "AShiftL",
	U32ShiftR:  "AShiftR",
}

var u32OpByName = func() map[string]U32Op {
	m := make(map[string]U32Op, len(u32OpNames))
	for op, name := range u32OpNames {
		m[name] = op
	}
	return m
}()

func (op U32Op) String() string {
	if name, ok := u32OpNames[op]; ok {
		return name
	}
	return "INVALID"
}

// ParseU32Op resolves an opcode string from the gate-list format.
func ParseU32Op(name string) (U32Op, error) {
	op, ok := u32OpByName[name]
	if !ok {
		return 0, UnknownOpError{Op: name}
	}
	return op, nil
}

// U32Gate computes one binary operation over uint32 values: two input
// wires, one output wire.
type U32Gate struct {
	wiring
	Op U32Op
}

// NewU32Gate returns a gate reading lhs and rhs and driving output.
func NewU32Gate(op U32Op, lhs, rhs, output int) *U32Gate {
	return &U32Gate{
		wiring: wiring{inputs: []int{lhs, rhs}, outputs: []int{output}},
		Op:     op,
	}
}

// Execute reads both declared inputs and writes the result to the declared
// output. Exact (field-style) division is not defined over uint32 and fails
// with UnsupportedOpError; integer division and modulus by zero fail with
// ErrDivisionByZero.
func (g *U32Gate) Execute(mem model.Memory[uint32]) error {
	a, err := mem.Read(g.inputs[0])
	if err != nil {
		return err
	}
	b, err := mem.Read(g.inputs[1])
	if err != nil {
		return err
	}
	result, err := applyU32(g.Op, a, b)
	if err != nil {
		return err
	}
	return mem.Write(g.outputs[0], result)
}

func applyU32(op U32Op, a, b uint32) (uint32, error) {
	switch op {
	case U32Add:
		return a + b, nil
	case U32Sub:
		return a - b, nil
	case U32Mul:
		return a * b, nil
	case U32Div:
		return 0, UnsupportedOpError{Op: op.String()}
	case U32IntDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case U32Mod:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a % b, nil
	case U32Pow:
		return powU32(a, b), nil
	case U32Eq:
		return boolToU32(a == b), nil
	case U32Neq:
		return boolToU32(a != b), nil
	case U32Lt:
		return boolToU32(a < b), nil
	case U32LEq:
		return boolToU32(a <= b), nil
	case U32Gt:
		return boolToU32(a > b), nil
	case U32GEq:
		return boolToU32(a >= b), nil
	case U32BoolAnd:
		return boolToU32(a != 0 && b != 0), nil
	case U32BoolOr:
		return boolToU32(a != 0 || b != 0), nil
	case U32Xor:
		return a ^ b, nil
	case U32BitAnd:
		return a & b, nil
	case U32BitOr:
		return a | b, nil
	case U32ShiftL:
		if b >= 32 {
			return 0, nil
		}
		return a << b, nil
	case U32ShiftR:
		if b >= 32 {
			return 0, nil
		}
		return a >> b, nil
	}
	return 0, UnsupportedOpError{Op: op.String()}
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// square-and-multiply, wrapping on overflow like the other arithmetic ops
func powU32(base, exp uint32) uint32 {
	var result uint32 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
