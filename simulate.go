// Package simcircuit is a golden-reference simulator for circuit
// descriptions compiled by an external toolchain. The circuit package holds
// the generic construction/execution engine, gates holds concrete gate
// catalogs, and bristol reads the gate-list interchange format; this package
// ties them together for the common case.
package simcircuit

import (
	"fmt"
	"strconv"

	"github.com/simcircuit/simcircuit/bristol"
	"github.com/simcircuit/simcircuit/gates"
	"github.com/simcircuit/simcircuit/model"
)

// U32GateFactory builds interchange-catalog gates over uint32 from parsed
// gate lines.
func U32GateFactory(op string, lhs, rhs, output int) (model.Executable[uint32], error) {
	parsed, err := gates.ParseU32Op(op)
	if err != nil {
		return nil, err
	}
	return gates.NewU32Gate(parsed, lhs, rhs, output), nil
}

// ParseU32Value parses a decimal constant or input value.
func ParseU32Value(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid uint32 value %q", s)
	}
	return uint32(n), nil
}

// Simulate runs a parsed gate-list circuit over the uint32 catalog with
// name-keyed inputs, returning name-keyed outputs.
func Simulate(c *bristol.Circuit, inputs map[string]uint32) (map[string]uint32, error) {
	return bristol.Run(c, inputs, U32GateFactory, ParseU32Value)
}
