// Package bristol reads text gate-list circuit descriptions together with
// their JSON metadata, and translates them into circuits for the engine. It
// is a producer sitting above the engine core: each gate line becomes one
// component fed to the builder in file order, which the format guarantees is
// already topologically sorted.
package bristol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CircuitInfo is the JSON metadata accompanying a gate list: named input and
// output wires plus constant wires with their values.
type CircuitInfo struct {
	InputNameToWireIndex  map[string]int          `json:"input_name_to_wire_index"`
	Constants             map[string]ConstantInfo `json:"constants"`
	OutputNameToWireIndex map[string]int          `json:"output_name_to_wire_index"`
}

// ConstantInfo is a constant value bound to a wire, kept as a decimal string
// so the value domain stays up to the caller.
type ConstantInfo struct {
	Value     string `json:"value"`
	WireIndex int    `json:"wire_index"`
}

// Gate is one parsed gate line: two input wires, one output wire, and the
// opcode naming the operation.
type Gate struct {
	Op   string
	LhIn int
	RhIn int
	Out  int
}

// Circuit is a parsed gate-list description.
type Circuit struct {
	WireCount int
	Info      CircuitInfo
	Gates     []Gate
}

// ParseCircuit reads a gate list from a string. See ReadCircuit.
func ParseCircuit(info CircuitInfo, input string) (*Circuit, error) {
	return ReadCircuit(info, strings.NewReader(input))
}

// ReadCircuit reads a gate list: a header line `<gate-count> <wire-count>`,
// one io-count line each for inputs and outputs, then one line per gate of
// the form `2 1 <lh> <rh> <out> <opcode>`. Blank lines are skipped; any
// non-blank line after the gates is an error. The io counts must match the
// names declared in info.
func ReadCircuit(info CircuitInfo, r io.Reader) (*Circuit, error) {
	lines := newLineReader(r)

	header, err := lines.next()
	if err != nil {
		return nil, err
	}
	gateCount, wireCount, err := header.circuitSizes()
	if err != nil {
		return nil, err
	}

	inputCount, err := readIOCount(lines)
	if err != nil {
		return nil, err
	}
	if inputCount != len(info.InputNameToWireIndex) {
		return nil, fmt.Errorf("input count mismatch: gate list declares %d, info names %d",
			inputCount, len(info.InputNameToWireIndex))
	}

	outputCount, err := readIOCount(lines)
	if err != nil {
		return nil, err
	}
	if outputCount != len(info.OutputNameToWireIndex) {
		return nil, fmt.Errorf("output count mismatch: gate list declares %d, info names %d",
			outputCount, len(info.OutputNameToWireIndex))
	}

	gates := make([]Gate, 0, gateCount)
	for i := 0; i < gateCount; i++ {
		line, err := lines.next()
		if err != nil {
			return nil, err
		}
		g, err := line.gate()
		if err != nil {
			return nil, err
		}
		gates = append(gates, g)
	}

	if line, err := lines.next(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected line after gates: %q", strings.Join(line.fields, " "))
	}

	return &Circuit{
		WireCount: wireCount,
		Info:      info,
		Gates:     gates,
	}, nil
}

func readIOCount(lines *lineReader) (int, error) {
	line, err := lines.next()
	if err != nil {
		return 0, err
	}
	return line.ioCount()
}

// line is one non-blank gate-list line split into whitespace fields.
type line struct {
	number int
	fields []string
}

type lineReader struct {
	scanner *bufio.Scanner
	number  int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the next non-blank line, or io.EOF.
func (lr *lineReader) next() (line, error) {
	for lr.scanner.Scan() {
		lr.number++
		fields := strings.Fields(lr.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		return line{number: lr.number, fields: fields}, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return line{}, err
	}
	return line{}, io.EOF
}

func (l line) circuitSizes() (gateCount, wireCount int, err error) {
	if len(l.fields) != 2 {
		return 0, 0, fmt.Errorf("line %d: expected `<gate-count> <wire-count>`", l.number)
	}
	if gateCount, err = l.int(0); err != nil {
		return 0, 0, err
	}
	if wireCount, err = l.int(1); err != nil {
		return 0, 0, err
	}
	return gateCount, wireCount, nil
}

// ioCount parses `<count> 1 1 ... 1` with count trailing ones; every
// input and output of these circuits is a single wire.
func (l line) ioCount() (int, error) {
	count, err := l.int(0)
	if err != nil {
		return 0, err
	}
	if len(l.fields) != count+1 {
		return 0, fmt.Errorf("line %d: expected %d fields", l.number, count+1)
	}
	for i := 1; i < len(l.fields); i++ {
		if l.fields[i] != "1" {
			return 0, fmt.Errorf("line %d: expected wire width 1 at field %d", l.number, i)
		}
	}
	return count, nil
}

func (l line) gate() (Gate, error) {
	if len(l.fields) != 6 {
		return Gate{}, fmt.Errorf("line %d: expected 6 fields", l.number)
	}
	inArity, err := l.int(0)
	if err != nil {
		return Gate{}, err
	}
	outArity, err := l.int(1)
	if err != nil {
		return Gate{}, err
	}
	if inArity != 2 || outArity != 1 {
		return Gate{}, fmt.Errorf("line %d: expected 2 inputs and 1 output", l.number)
	}
	g := Gate{Op: l.fields[5]}
	if g.LhIn, err = l.int(2); err != nil {
		return Gate{}, err
	}
	if g.RhIn, err = l.int(3); err != nil {
		return Gate{}, err
	}
	if g.Out, err = l.int(4); err != nil {
		return Gate{}, err
	}
	return g, nil
}

func (l line) int(i int) (int, error) {
	n, err := strconv.Atoi(l.fields[i])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: field %d is not a non-negative integer", l.number, i)
	}
	return n, nil
}
