package simcircuit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simcircuit/simcircuit/bristol"
)

func TestSimulateXMulX(t *testing.T) {
	c, err := bristol.ParseCircuit(bristol.CircuitInfo{
		InputNameToWireIndex:  map[string]int{"x": 0},
		OutputNameToWireIndex: map[string]int{"y": 1},
	}, `
		1 2
		1 1
		1 1

		2 1 0 0 1 AMul
	`)
	require.NoError(t, err)

	out, err := Simulate(c, map[string]uint32{"x": 5})
	require.NoError(t, err)
	require.Equal(t, map[string]uint32{"y": 25}, out)
}

func TestSimulateNamedIntermediateOutput(t *testing.T) {
	// y is a named output and also feeds the gate computing z
	c, err := bristol.ParseCircuit(bristol.CircuitInfo{
		InputNameToWireIndex:  map[string]int{"x": 0},
		OutputNameToWireIndex: map[string]int{"y": 1, "z": 2},
	}, `
		2 3
		1 1
		2 1 1

		2 1 0 0 1 AMul
		2 1 1 1 2 AMul
	`)
	require.NoError(t, err)

	out, err := Simulate(c, map[string]uint32{"x": 5})
	require.NoError(t, err)
	require.Equal(t, map[string]uint32{"y": 25, "z": 625}, out)
}

func TestSimulateMatrixMultiplication(t *testing.T) {
	var info bristol.CircuitInfo
	require.NoError(t, json.Unmarshal([]byte(`
		{
			"input_name_to_wire_index": {
				"a11": 0, "a12": 1, "a21": 2, "a22": 3,
				"b11": 4, "b12": 5, "b21": 6, "b22": 7
			},
			"constants": {},
			"output_name_to_wire_index": {
				"c11": 10, "c12": 13, "c21": 16, "c22": 19
			}
		}
	`), &info))

	c, err := bristol.ParseCircuit(info, `
		12 20
		8 1 1 1 1 1 1 1 1
		4 1 1 1 1

		2 1 0 4 8 AMul
		2 1 1 6 9 AMul
		2 1 8 9 10 AAdd
		2 1 0 5 11 AMul
		2 1 1 7 12 AMul
		2 1 11 12 13 AAdd
		2 1 2 4 14 AMul
		2 1 3 6 15 AMul
		2 1 14 15 16 AAdd
		2 1 2 5 17 AMul
		2 1 3 7 18 AMul
		2 1 17 18 19 AAdd
	`)
	require.NoError(t, err)

	// [1 2]   [1 1]   [3 3]
	// [3 4] x [1 1] = [7 7]
	out, err := Simulate(c, map[string]uint32{
		"a11": 1, "a12": 2, "a21": 3, "a22": 4,
		"b11": 1, "b12": 1, "b21": 1, "b22": 1,
	})
	require.NoError(t, err)
	require.Equal(t, map[string]uint32{"c11": 3, "c12": 3, "c21": 7, "c22": 7}, out)
}

func TestParseU32Value(t *testing.T) {
	v, err := ParseU32Value("4294967295")
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFFFFFFF), v)

	_, err = ParseU32Value("4294967296")
	require.Error(t, err)
	_, err = ParseU32Value("-1")
	require.Error(t, err)
	_, err = ParseU32Value("abc")
	require.Error(t, err)
}
