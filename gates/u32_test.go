package gates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simcircuit/simcircuit/circuit"
)

func TestApplyU32(t *testing.T) {
	testCases := []struct {
		op   U32Op
		a    uint32
		b    uint32
		want uint32
	}{
		{U32Add, 3, 4, 7},
		{U32Add, 0xFFFFFFFF, 1, 0},
		{U32Sub, 10, 4, 6},
		{U32Sub, 0, 1, 0xFFFFFFFF},
		{U32Mul, 6, 7, 42},
		{U32IntDiv, 10, 3, 3},
		{U32Mod, 10, 3, 1},
		{U32Pow, 2, 10, 1024},
		{U32Pow, 5, 0, 1},
		{U32Eq, 5, 5, 1},
		{U32Eq, 5, 6, 0},
		{U32Neq, 5, 6, 1},
		{U32Lt, 2, 3, 1},
		{U32LEq, 3, 3, 1},
		{U32Gt, 3, 2, 1},
		{U32GEq, 2, 3, 0},
		{U32BoolAnd, 7, 0, 0},
		{U32BoolAnd, 7, 1, 1},
		{U32BoolOr, 0, 0, 0},
		{U32BoolOr, 0, 9, 1},
		{U32Xor, 0b1100, 0b1010, 0b0110},
		{U32BitAnd, 0b1100, 0b1010, 0b1000},
		{U32BitOr, 0b1100, 0b1010, 0b1110},
		{U32ShiftL, 1, 4, 16},
		{U32ShiftL, 1, 32, 0},
		{U32ShiftR, 16, 4, 1},
		{U32ShiftR, 16, 40, 0},
	}

	for _, tc := range testCases {
		got, err := applyU32(tc.op, tc.a, tc.b)
		require.NoError(t, err, "%s(%d, %d)", tc.op, tc.a, tc.b)
		require.Equal(t, tc.want, got, "%s(%d, %d)", tc.op, tc.a, tc.b)
	}
}

func TestApplyU32Errors(t *testing.T) {
	_, err := applyU32(U32IntDiv, 1, 0)
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = applyU32(U32Mod, 1, 0)
	require.ErrorIs(t, err, ErrDivisionByZero)

	// exact field division has no uint32 meaning
	_, err = applyU32(U32Div, 4, 2)
	require.Equal(t, UnsupportedOpError{Op: "ADiv"}, err)
}

func TestParseU32Op(t *testing.T) {
	for op, name := range u32OpNames {
		parsed, err := ParseU32Op(name)
		require.NoError(t, err)
		require.Equal(t, op, parsed)
		require.Equal(t, name, parsed.String())
	}

	_, err := ParseU32Op("AFoo")
	require.Equal(t, UnknownOpError{Op: "AFoo"}, err)
}

func TestU32GateExecute(t *testing.T) {
	mem := circuit.NewCircuitMemory[uint32](3)
	require.NoError(t, mem.Write(0, 9))
	require.NoError(t, mem.Write(1, 5))

	require.NoError(t, NewU32Gate(U32Sub, 0, 1, 2).Execute(mem))

	got, err := mem.Read(2)
	require.NoError(t, err)
	require.Equal(t, uint32(4), got)
}
