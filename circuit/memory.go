// Package circuit implements the generic circuit engine: write-once memory,
// the incremental validating builder, the immutable circuit it produces, and
// the single-run executor.
package circuit

import (
	"github.com/bits-and-blooms/bitset"
)

// CircuitMemory is bounds-checked, write-once indexed storage. A slot holds
// no value until written and never transitions back or gets overwritten; a
// bug that re-derives a wire's value surfaces as AlreadyWrittenError instead
// of being silently masked. There is deliberately no update or delete.
type CircuitMemory[T any] struct {
	values []T
	filled *bitset.BitSet
}

// NewCircuitMemory returns a memory of size empty slots.
func NewCircuitMemory[T any](size int) *CircuitMemory[T] {
	return &CircuitMemory[T]{
		values: make([]T, size),
		filled: bitset.New(uint(size)),
	}
}

// Size returns the number of slots.
func (m *CircuitMemory[T]) Size() int {
	return len(m.values)
}

// Read returns the value stored at index.
func (m *CircuitMemory[T]) Read(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(m.values) {
		return zero, OutOfBoundsError{Index: index, Size: len(m.values)}
	}
	if !m.filled.Test(uint(index)) {
		return zero, UninitializedError{Index: index}
	}
	return m.values[index], nil
}

// Write stores a value at index. A slot can be written at most once, even
// with an equal value.
func (m *CircuitMemory[T]) Write(index int, value T) error {
	if index < 0 || index >= len(m.values) {
		return OutOfBoundsError{Index: index, Size: len(m.values)}
	}
	if m.filled.Test(uint(index)) {
		return AlreadyWrittenError{Index: index}
	}
	m.values[index] = value
	m.filled.Set(uint(index))
	return nil
}
