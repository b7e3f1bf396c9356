// Package gates provides concrete gate catalogs for the circuit engine:
// boolean logic over bool, the arithmetic interchange catalog over uint32,
// and prime-field arithmetic over BN254 scalars.
package gates

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by division and modulus gates with a zero
// right-hand input.
var ErrDivisionByZero = errors.New("division by zero")

// UnsupportedOpError is returned when a catalog does not implement an
// operation for its value type.
type UnsupportedOpError struct {
	Op string
}

func (e UnsupportedOpError) Error() string {
	return fmt.Sprintf("operation %s is not supported", e.Op)
}

// UnknownOpError is returned when an opcode string names no operation.
type UnknownOpError struct {
	Op string
}

func (e UnknownOpError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Op)
}

// wiring carries a gate's declared wire lists and implements the
// model.Component accessors shared by all catalogs.
type wiring struct {
	inputs  []int
	outputs []int
}

func (w *wiring) Inputs() []int            { return w.inputs }
func (w *wiring) Outputs() []int           { return w.outputs }
func (w *wiring) SetInputs(inputs []int)   { w.inputs = inputs }
func (w *wiring) SetOutputs(outputs []int) { w.outputs = outputs }
