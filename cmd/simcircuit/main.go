// Command simcircuit simulates a compiled gate-list circuit and prints the
// resulting outputs as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simcircuit/simcircuit"
	"github.com/simcircuit/simcircuit/bristol"
	"github.com/simcircuit/simcircuit/logger"
)

type options struct {
	circuitDir  string
	circuitPath string
	infoPath    string
	inputsPath  string
	outputPath  string
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "simcircuit",
		Short:        "Golden-reference simulator for compiled circuit descriptions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.circuitDir, "circuit-dir", "", "directory containing circuit.txt, circuit_info.json, circuit_inputs.json")
	cmd.Flags().StringVar(&opts.circuitPath, "circuit", "", "path to the gate-list file")
	cmd.Flags().StringVar(&opts.infoPath, "circuit-info", "", "path to the circuit info JSON")
	cmd.Flags().StringVar(&opts.inputsPath, "circuit-inputs", "", "path to the inputs JSON")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "path to write the outputs JSON (default: stdout)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	circuitPath, err := resolve(opts.circuitDir, opts.circuitPath, "circuit.txt")
	if err != nil {
		return err
	}
	infoPath, err := resolve(opts.circuitDir, opts.infoPath, "circuit_info.json")
	if err != nil {
		return err
	}
	inputsPath, err := resolve(opts.circuitDir, opts.inputsPath, "circuit_inputs.json")
	if err != nil {
		return err
	}

	var info bristol.CircuitInfo
	if err := readJSON(infoPath, &info); err != nil {
		return err
	}

	f, err := os.Open(circuitPath)
	if err != nil {
		return err
	}
	defer f.Close()
	parsed, err := bristol.ReadCircuit(info, f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", circuitPath, err)
	}

	var rawInputs map[string]string
	if err := readJSON(inputsPath, &rawInputs); err != nil {
		return err
	}
	inputs := make(map[string]uint32, len(rawInputs))
	for name, value := range rawInputs {
		v, err := simcircuit.ParseU32Value(value)
		if err != nil {
			return fmt.Errorf("input %q: %w", name, err)
		}
		inputs[name] = v
	}

	built, err := bristol.Compile(parsed, simcircuit.U32GateFactory)
	if err != nil {
		return err
	}

	stats := built.GetStats()
	log := logger.Logger()
	log.Info().
		Int("nbComponents", stats.ComponentCount).
		Int("nbWires", stats.WireCount).
		Int("nbInputs", stats.InputCount).
		Int("nbOutputs", stats.OutputCount).
		Msg("compiled circuit")

	outputs, err := bristol.RunCompiled(parsed, built, inputs, simcircuit.ParseU32Value)
	if err != nil {
		return err
	}

	rawOutputs := make(map[string]string, len(outputs))
	for name, value := range outputs {
		rawOutputs[name] = fmt.Sprintf("%d", value)
	}
	encoded, err := json.MarshalIndent(rawOutputs, "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')

	if opts.outputPath != "" {
		return os.WriteFile(opts.outputPath, encoded, 0o644)
	}
	_, err = os.Stdout.Write(encoded)
	return err
}

// resolve prefers the explicit path, falling back to the named file inside
// --circuit-dir.
func resolve(dir, explicit, name string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if dir != "" {
		return filepath.Join(dir, name), nil
	}
	return "", errors.New("required: either --circuit-dir or --" + flagFor(name))
}

func flagFor(name string) string {
	switch name {
	case "circuit.txt":
		return "circuit"
	case "circuit_info.json":
		return "circuit-info"
	default:
		return "circuit-inputs"
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
