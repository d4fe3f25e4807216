// Package eval provides the implementation for the application's non-interactive, programmable execution mode.
package eval

import (
	"encoding/json"
	"io"
)

// Output is the structured representation of an evaluated script.
type Output struct {
	// Script is the validated operation sequence.
	Script []Step `json:"script"`
	// Trace holds the per-step outcomes in execution order.
	Trace []StepResult `json:"trace"`
	// Final is the bottom-to-top stack state after the last step.
	Final []string `json:"final"`
}

func newOutput(steps []Step, results []StepResult) *Output {
	final := []string{}
	if len(results) > 0 {
		final = results[len(results)-1].Stack
	}

	return &Output{
		Script: steps,
		Trace:  results,
		Final:  final,
	}
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
