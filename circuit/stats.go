package circuit

// Stats summarizes a built circuit.
type Stats struct {
	ComponentCount int
	WireCount      int
	InputCount     int
	OutputCount    int
}

// GetStats returns summary counts for the circuit.
func (c *Circuit[T]) GetStats() Stats {
	return Stats{
		ComponentCount: len(c.components),
		WireCount:      c.memorySize,
		InputCount:     len(c.inputs),
		OutputCount:    len(c.outputs),
	}
}
