// Package model declares the capability interfaces shared by the circuit
// engine and concrete gate catalogs: indexed value storage, components with
// declared wire lists, and executable components.
package model

// Memory is bounds-checked indexed storage for values of one type. Slots are
// write-once: a slot holds no value until written and can never be rewritten.
type Memory[T any] interface {
	// Read returns the value stored at index.
	Read(index int) (T, error)

	// Write stores a value at index. Writing an already-written slot fails.
	Write(index int, value T) error
}

// Component is any gate type exposing its ordered input and output wire ids.
// Input order is semantically significant (subtraction is not commutative).
//
// The setters allow the circuit builder to rewrite wire ids into the dense
// internal indices of the circuit's memory; gate implementations should store
// the given slices as-is.
type Component interface {
	Inputs() []int
	Outputs() []int
	SetInputs(inputs []int)
	SetOutputs(outputs []int)
}

// Executable is a component that can compute its outputs. Execute must read
// exactly the declared inputs from mem and write exactly the declared
// outputs, once each, with no other observable effect. The engine trusts
// this contract; it is the gate implementer's responsibility to honor it.
type Executable[T any] interface {
	Component
	Execute(mem Memory[T]) error
}
