package bristol_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simcircuit/simcircuit"
	"github.com/simcircuit/simcircuit/bristol"
)

func TestReadCircuit(t *testing.T) {
	info := bristol.CircuitInfo{
		InputNameToWireIndex:  map[string]int{"x": 0},
		OutputNameToWireIndex: map[string]int{"y": 1},
	}

	c, err := bristol.ParseCircuit(info, `
		1 2
		1 1
		1 1

		2 1 0 0 1 AMul
	`)
	require.NoError(t, err)

	require.Equal(t, 2, c.WireCount)
	require.Equal(t, []bristol.Gate{{Op: "AMul", LhIn: 0, RhIn: 0, Out: 1}}, c.Gates)
}

func TestReadCircuitRejectsMalformedInput(t *testing.T) {
	info := bristol.CircuitInfo{
		InputNameToWireIndex:  map[string]int{"x": 0},
		OutputNameToWireIndex: map[string]int{"y": 1},
	}

	testCases := []struct {
		name string
		text string
	}{
		{"bad header", "1\n1 1\n1 1\n2 1 0 0 1 AMul"},
		{"input count mismatch", "1 2\n2 1 1\n1 1\n2 1 0 0 1 AMul"},
		{"output count mismatch", "1 2\n1 1\n2 1 1\n2 1 0 0 1 AMul"},
		{"wide io wire", "1 2\n1 2\n1 1\n2 1 0 0 1 AMul"},
		{"bad gate arity", "1 2\n1 1\n1 1\n3 1 0 0 0 1 AMul"},
		{"short gate line", "1 2\n1 1\n1 1\n2 1 0 1 AMul"},
		{"negative wire", "1 2\n1 1\n1 1\n2 1 0 -1 1 AMul"},
		{"trailing garbage", "1 2\n1 1\n1 1\n2 1 0 0 1 AMul\nextra"},
		{"missing gate line", "2 2\n1 1\n1 1\n2 1 0 0 1 AMul"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bristol.ReadCircuit(info, strings.NewReader(tc.text))
			require.Error(t, err)
		})
	}
}

func TestCompileUnknownOpcode(t *testing.T) {
	info := bristol.CircuitInfo{
		InputNameToWireIndex:  map[string]int{"x": 0},
		OutputNameToWireIndex: map[string]int{"y": 1},
	}
	c, err := bristol.ParseCircuit(info, "1 2\n1 1\n1 1\n2 1 0 0 1 AFoo")
	require.NoError(t, err)

	_, err = bristol.Compile(c, simcircuit.U32GateFactory)
	require.ErrorContains(t, err, "AFoo")
}

func TestCompileStats(t *testing.T) {
	info := bristol.CircuitInfo{
		InputNameToWireIndex:  map[string]int{"x": 0, "y": 1},
		OutputNameToWireIndex: map[string]int{"z": 3},
	}
	c, err := bristol.ParseCircuit(info, "2 4\n2 1 1\n1 1\n2 1 0 1 2 AAdd\n2 1 2 1 3 AMul")
	require.NoError(t, err)

	built, err := bristol.Compile(c, simcircuit.U32GateFactory)
	require.NoError(t, err)

	stats := built.GetStats()
	require.Equal(t, 2, stats.ComponentCount)
	require.Equal(t, 4, stats.WireCount)
	require.Equal(t, 2, stats.InputCount)
	require.Equal(t, 1, stats.OutputCount)
}

func TestRunMissingInput(t *testing.T) {
	info := bristol.CircuitInfo{
		InputNameToWireIndex:  map[string]int{"x": 0, "y": 1},
		OutputNameToWireIndex: map[string]int{"z": 2},
	}
	c, err := bristol.ParseCircuit(info, "1 3\n2 1 1\n1 1\n2 1 0 1 2 AAdd")
	require.NoError(t, err)

	_, err = bristol.Run(c, map[string]uint32{"x": 1}, simcircuit.U32GateFactory, simcircuit.ParseU32Value)
	require.Equal(t, bristol.MissingInputError{Name: "y"}, err)
}

func TestRunWithConstants(t *testing.T) {
	info := bristol.CircuitInfo{
		InputNameToWireIndex: map[string]int{"x": 0},
		Constants: map[string]bristol.ConstantInfo{
			"five": {Value: "5", WireIndex: 1},
		},
		OutputNameToWireIndex: map[string]int{"y": 2},
	}
	c, err := bristol.ParseCircuit(info, "1 3\n1 1\n1 1\n2 1 0 1 2 AMul")
	require.NoError(t, err)

	out, err := bristol.Run(c, map[string]uint32{"x": 7}, simcircuit.U32GateFactory, simcircuit.ParseU32Value)
	require.NoError(t, err)
	require.Equal(t, map[string]uint32{"y": 35}, out)
}
